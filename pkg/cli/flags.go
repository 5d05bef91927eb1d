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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/osgi-version/pkg/osgi"
	"github.com/NVIDIA/osgi-version/pkg/serializer"
)

const (
	// EnvQualifierDefault selects the qualifier policy when --qualifier-default is not set.
	EnvQualifierDefault = "OSGIVER_QUALIFIER_DEFAULT"
	// EnvKeepLeadingDash disables stripping of the leading dash of qualifiers.
	EnvKeepLeadingDash = "OSGIVER_KEEP_LEADING_DASH"
	// EnvProperties names the default property store.
	EnvProperties = "OSGIVER_PROPERTIES"
)

// Flags are built per command so parsed state never leaks between commands.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func qualifierFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "qualifier-default",
		Value:   osgi.QualifierZero.String(),
		Sources: cli.EnvVars(EnvQualifierDefault),
		Usage: fmt.Sprintf("Qualifier used when the version has none (supported values: %s)",
			strings.Join(osgi.SupportedQualifierPolicies(), ", ")),
	}
}

func keepLeadingDashFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "keep-leading-dash",
		Sources: cli.EnvVars(EnvKeepLeadingDash),
		Usage:   "Keep the leading dash of qualifiers (1.2.3-beta becomes 1.2.3.-beta)",
	}
}

func projectFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"f"},
		Usage: `Path/URI of the project descriptor.
	Supports: pom.xml, JSON, JSON5 or YAML files and HTTP/HTTPS URLs.`,
	}
}

func propertiesFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "properties",
		Aliases: []string{"p"},
		Sources: cli.EnvVars(EnvProperties),
		Usage: `Property store receiving the results.
	Supports: .properties file paths or ConfigMap URIs (cm://namespace/name).`,
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "kubeconfig",
		Usage: "Path to kubeconfig used for ConfigMap property stores (default: $KUBECONFIG or ~/.kube/config)",
	}
}

// translationFlags are shared by all commands that translate versions.
func translationFlags() []cli.Flag {
	return []cli.Flag{
		qualifierFlag(),
		keepLeadingDashFlag(),
		propertiesFlag(),
		kubeconfigFlag(),
		outputFlag(),
		formatFlag(),
	}
}
