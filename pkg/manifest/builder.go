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
	"fmt"
	"time"

	cnserrors "github.com/NVIDIA/osgi-version/pkg/errors"
	"github.com/NVIDIA/osgi-version/pkg/header"
	"github.com/NVIDIA/osgi-version/pkg/osgi"
	"github.com/NVIDIA/osgi-version/pkg/project"
)

const (
	opVersion      = "version"
	opCapabilities = "capabilities"
	opManifest     = "manifest"
)

// Option configures a Builder.
type Option func(*Builder)

// WithVersion sets the tool version stamped into result metadata.
func WithVersion(version string) Option {
	return func(b *Builder) {
		b.version = version
	}
}

// WithTranslatorOptions configures the version translator.
func WithTranslatorOptions(opts ...osgi.Option) Option {
	return func(b *Builder) {
		b.translatorOpts = append(b.translatorOpts, opts...)
	}
}

// Builder produces OSGi version, capability and manifest results.
// It is safe for concurrent use.
type Builder struct {
	version        string
	translatorOpts []osgi.Option
	translator     *osgi.Translator
}

// NewBuilder returns a Builder with the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	b.translator = osgi.NewTranslator(b.translatorOpts...)
	return b
}

// Translator returns the translator used by the builder.
func (b *Builder) Translator() *osgi.Translator {
	return b.translator
}

// WithQualifierPolicy returns a copy of b that uses policy for qualifier
// defaults. Other translator options are kept.
func (b *Builder) WithQualifierPolicy(policy osgi.QualifierPolicy) *Builder {
	opts := make([]osgi.Option, 0, len(b.translatorOpts)+1)
	opts = append(opts, b.translatorOpts...)
	opts = append(opts, osgi.WithQualifierPolicy(policy))
	return &Builder{
		version:        b.version,
		translatorOpts: opts,
		translator:     osgi.NewTranslator(opts...),
	}
}

// Manifest translates the project and its dependencies into a Manifest.
func (b *Builder) Manifest(p *project.Project) (*Manifest, error) {
	if err := p.Validate(); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid project", err)
	}

	v, err := b.translator.CalculateVersion(p.Version)
	if err != nil {
		return nil, err
	}

	caps, err := b.translator.CalculateDependenciesString(p.Dependencies)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		GroupID:           p.GroupID,
		ArtifactID:        p.ArtifactID,
		Version:           v,
		RequireCapability: caps,
	}, nil
}

// BuildVersion translates a single version string.
func (b *Builder) BuildVersion(raw string) (res *Result, err error) {
	defer func(start time.Time) { observe(opVersion, start, err) }(time.Now())

	v, err := b.translator.CalculateVersion(raw)
	if err != nil {
		return nil, err
	}

	res = newResult(header.KindVersionResult, b.version)
	res.Input = raw
	res.Properties[PropertyVersionOSGi] = v
	return res, nil
}

// BuildCapabilities renders the Require-Capability list for deps.
func (b *Builder) BuildCapabilities(deps []osgi.Dependency) (res *Result, err error) {
	defer func(start time.Time) { observe(opCapabilities, start, err) }(time.Now())

	for i, d := range deps {
		if d.GroupID == "" || d.ArtifactID == "" {
			return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
				fmt.Sprintf("dependency %d: groupId and artifactId are required", i),
				map[string]any{"dependency": d.String()})
		}
	}

	caps, err := b.translator.CalculateDependenciesString(deps)
	if err != nil {
		return nil, err
	}

	res = newResult(header.KindCapabilityResult, b.version)
	res.Properties[PropertyDependenciesOSGi] = caps
	return res, nil
}

// BuildManifest renders all three properties for a project.
func (b *Builder) BuildManifest(p *project.Project) (res *Result, err error) {
	defer func(start time.Time) { observe(opManifest, start, err) }(time.Now())

	m, err := b.Manifest(p)
	if err != nil {
		return nil, err
	}

	res = newResult(header.KindManifestResult, b.version)
	res.Project = p.Coordinates()
	res.Properties[PropertyVersionOSGi] = m.Version
	res.Properties[PropertyDependenciesOSGi] = m.RequireCapability
	res.Properties[PropertyManifestOSGi] = m.String()
	return res, nil
}
