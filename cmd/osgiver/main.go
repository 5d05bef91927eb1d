package main

import (
	"github.com/NVIDIA/osgi-version/pkg/cli"
)

func main() {
	cli.Execute()
}
