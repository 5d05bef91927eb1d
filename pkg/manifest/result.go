// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package manifest

import (
	"github.com/NVIDIA/osgi-version/pkg/header"
)

// Result is the document emitted by the CLI and the API for all three
// operations. Kind tells which property is the primary value.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// Input is the raw version for version results.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// Project is groupId:artifactId:version of the source project, if any.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`

	Properties map[string]string `json:"properties" yaml:"properties"`
}

func newResult(kind header.Kind, version string) *Result {
	r := &Result{Properties: make(map[string]string)}
	r.Init(kind, header.APIVersionV1, version)
	return r
}

// PrimaryProperty returns the property key that carries the result value.
func (r *Result) PrimaryProperty() string {
	switch r.Kind {
	case header.KindVersionResult:
		return PropertyVersionOSGi
	case header.KindCapabilityResult:
		return PropertyDependenciesOSGi
	default:
		return PropertyManifestOSGi
	}
}

// Text returns the primary value, used by the text output format.
func (r *Result) Text() string {
	return r.Properties[r.PrimaryProperty()]
}
