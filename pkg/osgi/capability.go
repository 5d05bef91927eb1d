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

package osgi

import (
	"fmt"
	"strings"
)

// Dependency is a (group, artifact, version) coordinate of a project dependency.
type Dependency struct {
	GroupID    string `json:"groupId" yaml:"groupId"`
	ArtifactID string `json:"artifactId" yaml:"artifactId"`
	Version    string `json:"version" yaml:"version"`
}

// String returns the dependency in groupId:artifactId:version notation.
func (d Dependency) String() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.Version
}

// ParseDependency parses groupId:artifactId:version notation.
// The version may itself contain ':' characters.
func ParseDependency(s string) (Dependency, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return Dependency{}, fmt.Errorf("invalid dependency %q: expected groupId:artifactId:version", s)
	}
	return Dependency{
		GroupID:    parts[0],
		ArtifactID: parts[1],
		Version:    parts[2],
	}, nil
}

// FormatCapability renders a single filter clause of the form
// groupId;filter:="(artifactId=osgiVersion)".
func FormatCapability(dep Dependency, osgiVersion string) string {
	return dep.GroupID + `;filter:="(` + dep.ArtifactID + "=" + osgiVersion + `)"`
}

// CalculateDependenciesString converts deps with the default Translator.
func CalculateDependenciesString(deps []Dependency) (string, error) {
	return defaultTranslator.CalculateDependenciesString(deps)
}

// CalculateDependenciesString translates the version of every dependency and
// joins the rendered clauses with ','. It returns an empty string for an empty
// list and aborts on the first version that cannot be translated; the returned
// error wraps the translation error.
func (t *Translator) CalculateDependenciesString(deps []Dependency) (string, error) {
	clauses := make([]string, 0, len(deps))
	for _, dep := range deps {
		v, err := t.CalculateVersion(dep.Version)
		if err != nil {
			return "", fmt.Errorf("dependency %s:%s: %w", dep.GroupID, dep.ArtifactID, err)
		}
		clauses = append(clauses, FormatCapability(dep, v))
	}
	return strings.Join(clauses, ","), nil
}
