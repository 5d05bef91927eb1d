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

import "strings"

// Property keys written to the project property store.
const (
	PropertyVersionOSGi      = "version.osgi"
	PropertyDependenciesOSGi = "dependencies.osgi"
	PropertyManifestOSGi     = "manifest.osgi"
)

// Manifest holds the values of a rendered header block.
type Manifest struct {
	GroupID    string `json:"groupId" yaml:"groupId"`
	ArtifactID string `json:"artifactId" yaml:"artifactId"`
	// Version is the OSGi version of the bundle.
	Version string `json:"version" yaml:"version"`
	// RequireCapability is the comma-joined capability list, possibly empty.
	RequireCapability string `json:"requireCapability,omitempty" yaml:"requireCapability,omitempty"`
}

// SymbolicName returns groupId.artifactId.
func (m *Manifest) SymbolicName() string {
	return m.GroupID + "." + m.ArtifactID
}

// ProvideCapability returns the capability the bundle exports.
func (m *Manifest) ProvideCapability() string {
	return m.GroupID + ";" + m.ArtifactID + ":List<String>=" + m.Version
}

// String renders the header block.
func (m *Manifest) String() string {
	lines := []string{
		"Bundle-SymbolicName: " + m.SymbolicName(),
		"Bundle-Version:\t" + m.Version,
		"-resourceonly:true",
		`WebJars-Resource:\`,
		"/META-INF/resources/webjars/" + m.ArtifactID + "/" + m.Version + `,\`,
		"/webjars-requirejs.js",
		"Provide-Capability: " + m.ProvideCapability(),
	}
	if m.RequireCapability != "" {
		lines = append(lines, "Require-Capability: "+m.RequireCapability)
	}
	return strings.Join(lines, "\n")
}
