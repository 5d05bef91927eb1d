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

	"github.com/urfave/cli/v3"
)

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "manifest",
		EnableShellCompletion: true,
		Usage:                 "Render the OSGi bundle manifest for a project",
		Description: `Render the bundle manifest for a project descriptor. The project
version is translated into an OSGi version, every dependency becomes a
Require-Capability clause and the project itself is published as a
Provide-Capability.

Three properties are produced: version.osgi, dependencies.osgi and
manifest.osgi. Use --format text to print only the manifest block.`,
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

			p, err := loadProject(ctx, cmd)
			if err != nil {
				return err
			}

			res, err := builder.BuildManifest(p)
			if err != nil {
				return wrapTranslationError(err, p.Coordinates())
			}

			return emit(ctx, cmd, outFormat, res)
		},
	}
}
