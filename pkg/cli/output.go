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


package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	cnserrors "github.com/NVIDIA/osgi-version/pkg/errors"
	"github.com/NVIDIA/osgi-version/pkg/manifest"
	"github.com/NVIDIA/osgi-version/pkg/osgi"
	"github.com/NVIDIA/osgi-version/pkg/project"
	"github.com/NVIDIA/osgi-version/pkg/properties"
	"github.com/NVIDIA/osgi-version/pkg/serializer"
)

// parseOutputFormat returns the validated --format value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v",
			f, serializer.SupportedFormats())
	}
	return f, nil
}

// newBuilderFromCmd creates a manifest builder from the translation flags.
func newBuilderFromCmd(cmd *cli.Command) (*manifest.Builder, error) {
	policy := osgi.QualifierPolicy(cmd.String("qualifier-default"))
	if !policy.IsValid() {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("qualifier-default: %q, supported values: %v", policy, osgi.SupportedQualifierPolicies()))
	}

	return manifest.NewBuilder(
		manifest.WithVersion(version),
		manifest.WithTranslatorOptions(
			osgi.WithQualifierPolicy(policy),
			osgi.WithLeadingDashStrip(!cmd.Bool("keep-leading-dash")),
		),
	), nil
}

// loadProject reads the project named by --project.
func loadProject(ctx context.Context, cmd *cli.Command) (*project.Project, error) {
	source := cmd.String("project")
	if source == "" {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "--project is required")
	}

	p, err := project.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load project from %q: %w", source, err)
	}

	slog.Debug("project loaded",
		"source", source,
		"project", p.Coordinates(),
		"dependencies", len(p.Dependencies))

	return p, nil
}

// wrapTranslationError adds CLI context to translation failures. Other
// errors are returned unchanged.
func wrapTranslationError(err error, input string) error {
	var (
		mv *osgi.MalformedVersionError
		ms *osgi.MalformedSegmentError
		mq *osgi.MalformedQualifierError
	)

	ctx := map[string]any{}
	if input != "" {
		ctx["input"] = input
	}
	switch {
	case errors.As(err, &ms):
		ctx["version"] = ms.Version
		ctx["position"] = ms.Position
		ctx["segment"] = ms.Segment
	case errors.As(err, &mv):
		ctx["version"] = mv.Version
	case errors.As(err, &mq):
		ctx["qualifier"] = mq.Qualifier
	default:
		return err
	}

	return cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
		"could not convert version to OSGi version", err, ctx)
}

// emit stores the result properties when --properties is set and then
// writes the result in the requested format.
func emit(ctx context.Context, cmd *cli.Command, outFormat serializer.Format, res *manifest.Result) error {
	if uri := cmd.String("properties"); uri != "" {
		store, err := properties.NewStore(uri, cmd.String("kubeconfig"))
		if err != nil {
			return fmt.Errorf("failed to open property store %q: %w", uri, err)
		}
		if err := store.Set(ctx, res.Properties); err != nil {
			return fmt.Errorf("failed to write properties to %q: %w", uri, err)
		}
		slog.Debug("properties stored", "store", uri, "count", len(res.Properties))
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, res)
}
