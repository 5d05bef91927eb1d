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

	cnserrors "github.com/NVIDIA/osgi-version/pkg/errors"
)

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:                  "convert",
		EnableShellCompletion: true,
		Usage:                 "Translate a Maven version into an OSGi version",
		ArgsUsage:             "<version>",
		Description: `Translate a Maven version into the major.minor.micro.qualifier form
required by OSGi. Missing minor and micro segments become 0 and the qualifier
is taken from the text after the first dash or the fourth dot-separated segment.

The version is read from the first argument or, with --project, from the
project descriptor. The result is stored as version.osgi.`,
		Flags: append([]cli.Flag{projectFlag()}, translationFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			builder, err := newBuilderFromCmd(cmd)
			if err != nil {
				return err
			}

			var raw, coordinates string
			switch {
			case cmd.String("project") != "":
				p, err := loadProject(ctx, cmd)
				if err != nil {
					return err
				}
				raw, coordinates = p.Version, p.Coordinates()
			case cmd.Args().Len() > 1:
				return cnserrors.New(cnserrors.ErrCodeInvalidRequest,
					fmt.Sprintf("expected one version argument or --project, got %d arguments", cmd.Args().Len()))
			default:
				// a missing or empty argument is an empty version
				raw = cmd.Args().First()
			}

			res, err := builder.BuildVersion(raw)
			if err != nil {
				return wrapTranslationError(err, raw)
			}
			res.Project = coordinates

			return emit(ctx, cmd, outFormat, res)
		},
	}
}
