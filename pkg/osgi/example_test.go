package osgi_test

import (
	"errors"
	"fmt"

	"github.com/NVIDIA/osgi-version/pkg/osgi"
)

func ExampleCalculateVersion() {
	v, err := osgi.CalculateVersion("1.2.3-beta1-2")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 1.2.3.beta1-2
}

func ExampleCalculateDependenciesString() {
	s, err := osgi.CalculateDependenciesString([]osgi.Dependency{
		{GroupID: "foobar", ArtifactID: "barfoo", Version: "2.1.4.0"},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: foobar;filter:="(barfoo=2.1.4.0)"
}

func ExampleMalformedSegmentError() {
	_, err := osgi.CalculateVersion("1.asdf.3")
	var segErr *osgi.MalformedSegmentError
	if errors.As(err, &segErr) {
		fmt.Println(segErr.Position, segErr.Segment)
	}
	// Output: 1 asdf
}
