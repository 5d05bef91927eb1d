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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/osgi-version/pkg/defaults"
	cnserrors "github.com/NVIDIA/osgi-version/pkg/errors"
	"github.com/NVIDIA/osgi-version/pkg/osgi"
)

func capabilitiesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "capabilities",
		EnableShellCompletion: true,
		Usage:                 "Render the Require-Capability list for a set of dependencies",
		Description: `Render one capability clause per dependency, joined by commas:

  <groupId>;filter:="(<artifactId>=<osgiVersion>)"

Dependencies come from the project descriptor (--project) or from repeated
--dependency groupId:artifactId:version flags. The result is stored as
dependencies.osgi. An empty dependency list renders an empty value.`,
		Flags: append([]cli.Flag{
			projectFlag(),
			&cli.StringSliceFlag{
				Name:    "dependency",
				Aliases: []string{"d"},
				Usage:   "Dependency coordinates as groupId:artifactId:version (repeatable)",
			},
		}, translationFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			builder, err := newBuilderFromCmd(cmd)
			if err != nil {
				return err
			}

			deps, coordinates, err := dependenciesFromCmd(ctx, cmd)
			if err != nil {
				return err
			}

			res, err := builder.BuildCapabilities(deps)
			if err != nil {
				return wrapTranslationError(err, "")
			}
			res.Project = coordinates

			return emit(ctx, cmd, outFormat, res)
		},
	}
}

// dependenciesFromCmd collects dependencies from --project or --dependency.
// The project coordinates are returned when a project was loaded.
func dependenciesFromCmd(ctx context.Context, cmd *cli.Command) ([]osgi.Dependency, string, error) {
	flagDeps := cmd.StringSlice("dependency")

	if cmd.String("project") != "" {
		if len(flagDeps) > 0 {
			return nil, "", cnserrors.New(cnserrors.ErrCodeInvalidRequest,
				"--project and --dependency are mutually exclusive")
		}
		p, err := loadProject(ctx, cmd)
		if err != nil {
			return nil, "", err
		}
		return p.Dependencies, p.Coordinates(), nil
	}

	if len(flagDeps) > defaults.MaxDependencies {
		return nil, "", cnserrors.New(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("too many dependencies: %d, maximum is %d", len(flagDeps), defaults.MaxDependencies))
	}

	deps := make([]osgi.Dependency, 0, len(flagDeps))
	for _, s := range flagDeps {
		d, err := osgi.ParseDependency(s)
		if err != nil {
			return nil, "", cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest,
				"could not parse --dependency", err)
		}
		deps = append(deps, d)
	}
	return deps, "", nil
}
