package main

import (
	"log"

	"github.com/NVIDIA/osgi-version/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
