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

package project

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/NVIDIA/osgi-version/pkg/osgi"
)

// maxInterpolationDepth bounds nested ${...} references such as a property
// whose value refers to another property.
const maxInterpolationDepth = 10

type pomCoordinates struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomModel struct {
	XMLName xml.Name `xml:"project"`
	pomCoordinates
	Description          string           `xml:"description"`
	Parent               *pomCoordinates  `xml:"parent"`
	Properties           pomProperties    `xml:"properties"`
	Dependencies         []pomCoordinates `xml:"dependencies>dependency"`
	DependencyManagement []pomCoordinates `xml:"dependencyManagement>dependencies>dependency"`
}

// pomProperties collects the free-form children of <properties>.
type pomProperties map[string]string

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	props := make(pomProperties)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			props[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			*p = props
			return nil
		}
	}
}

// parsePOM reads a Maven POM. groupId and version are inherited from <parent>
// when absent, ${...} references to project coordinates and <properties> are
// expanded, and dependency versions missing from <dependencies> are taken
// from <dependencyManagement> of the same POM.
func parsePOM(data []byte) (*Project, error) {
	var m pomModel
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("invalid POM: %w", err)
	}

	groupID := strings.TrimSpace(m.GroupID)
	version := strings.TrimSpace(m.Version)
	if m.Parent != nil {
		if groupID == "" {
			groupID = strings.TrimSpace(m.Parent.GroupID)
		}
		if version == "" {
			version = strings.TrimSpace(m.Parent.Version)
		}
	}

	vars := make(map[string]string, len(m.Properties)+8)
	for k, v := range m.Properties {
		vars[k] = v
	}
	artifactID := strings.TrimSpace(m.ArtifactID)
	for _, prefix := range []string{"project.", "pom.", ""} {
		vars[prefix+"groupId"] = groupID
		vars[prefix+"artifactId"] = artifactID
		vars[prefix+"version"] = version
	}
	if m.Parent != nil {
		vars["project.parent.groupId"] = strings.TrimSpace(m.Parent.GroupID)
		vars["project.parent.version"] = strings.TrimSpace(m.Parent.Version)
	}

	resolve := func(s string) string { return interpolate(strings.TrimSpace(s), vars) }

	managed := make(map[string]string, len(m.DependencyManagement))
	for _, d := range m.DependencyManagement {
		managed[resolve(d.GroupID)+":"+resolve(d.ArtifactID)] = resolve(d.Version)
	}

	p := &Project{
		GroupID:     resolve(groupID),
		ArtifactID:  resolve(artifactID),
		Version:     resolve(version),
		Description: strings.TrimSpace(m.Description),
	}

	for _, d := range m.Dependencies {
		dep := osgi.Dependency{
			GroupID:    resolve(d.GroupID),
			ArtifactID: resolve(d.ArtifactID),
			Version:    resolve(d.Version),
		}
		if dep.Version == "" {
			dep.Version = managed[dep.GroupID+":"+dep.ArtifactID]
		}
		p.Dependencies = append(p.Dependencies, dep)
	}

	return p, nil
}

// interpolate expands ${name} references from vars. Unknown references are
// left in place, as Maven does.
func interpolate(s string, vars map[string]string) string {
	for depth := 0; depth < maxInterpolationDepth && strings.Contains(s, "${"); depth++ {
		var b strings.Builder
		changed := false
		rest := s
		for {
			start := strings.Index(rest, "${")
			if start < 0 {
				b.WriteString(rest)
				break
			}
			end := strings.IndexByte(rest[start:], '}')
			if end < 0 {
				b.WriteString(rest)
				break
			}
			end += start
			name := rest[start+2 : end]
			b.WriteString(rest[:start])
			if v, ok := vars[name]; ok {
				b.WriteString(v)
				changed = true
			} else {
				b.WriteString(rest[start : end+1])
			}
			rest = rest[end+1:]
		}
		s = b.String()
		if !changed {
			break
		}
	}
	return s
}
