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
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/NVIDIA/osgi-version/pkg/osgi"
	"github.com/NVIDIA/osgi-version/pkg/serializer"
	"github.com/titanous/json5"
)

// Format identifies a project descriptor encoding.
type Format string

const (
	FormatPOM   Format = "pom"
	FormatJSON  Format = "json"
	FormatJSON5 Format = "json5"
	FormatYAML  Format = "yaml"
)

// Project is the metadata of the artifact being built.
type Project struct {
	GroupID      string            `json:"groupId" yaml:"groupId"`
	ArtifactID   string            `json:"artifactId" yaml:"artifactId"`
	Version      string            `json:"version" yaml:"version"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
	Dependencies []osgi.Dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Coordinates returns groupId:artifactId:version.
func (p *Project) Coordinates() string {
	return p.GroupID + ":" + p.ArtifactID + ":" + p.Version
}

// Validate checks that the coordinates needed for a manifest are present.
// The version itself is left to the translator so that its error reports the
// offending value.
func (p *Project) Validate() error {
	if p == nil {
		return fmt.Errorf("project is nil")
	}
	if strings.TrimSpace(p.GroupID) == "" {
		return fmt.Errorf("project groupId is required")
	}
	if strings.TrimSpace(p.ArtifactID) == "" {
		return fmt.Errorf("project artifactId is required")
	}
	for i, d := range p.Dependencies {
		if d.GroupID == "" || d.ArtifactID == "" {
			return fmt.Errorf("dependency %d: groupId and artifactId are required", i)
		}
	}
	return nil
}

// FormatFromPath picks the descriptor format from a file name or URL.
func FormatFromPath(p string) Format {
	// drop query strings from URLs
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	lower := strings.ToLower(path.Base(p))
	switch {
	case lower == "pom.xml", strings.HasSuffix(lower, ".pom"), strings.HasSuffix(lower, ".xml"):
		return FormatPOM
	case strings.HasSuffix(lower, ".json5"):
		return FormatJSON5
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a project descriptor from a local path or HTTP(S) URL.
func Load(ctx context.Context, source string) (*Project, error) {
	data, err := serializer.ReadSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	format := FormatFromPath(source)
	slog.Debug("loading project descriptor", "source", source, "format", format)

	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project %s: %w", source, err)
	}
	return p, nil
}

// Parse decodes a project descriptor in the given format.
func Parse(data []byte, format Format) (*Project, error) {
	var (
		p   *Project
		err error
	)

	switch format {
	case FormatPOM:
		p, err = parsePOM(data)
	case FormatJSON5:
		p = &Project{}
		err = json5.Unmarshal(data, p)
	case FormatJSON, FormatYAML:
		sf := serializer.FormatJSON
		if format == FormatYAML {
			sf = serializer.FormatYAML
		}
		var r *serializer.Reader
		r, err = serializer.NewReader(sf, bytes.NewReader(data))
		if err == nil {
			p = &Project{}
			err = r.Deserialize(p)
		}
	default:
		return nil, fmt.Errorf("unsupported project format: %s", format)
	}

	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
