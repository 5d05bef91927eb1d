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


// Package cli implements the osgiver command-line interface.
//
// # Commands
//
// convert - Translate a Maven version:
//
//	osgiver convert 1.2.3-beta1-2 --format text
//	osgiver convert --project pom.xml
//
// Produces version.osgi. Missing segments are filled with 0 and the qualifier
// defaults to 0, or to the build time with --qualifier-default timestamp.
//
// capabilities - Render the Require-Capability list:
//
//	osgiver capabilities -d foobar:barfoo:2.1.4.0 -d org.webjars:jquery:3.7.1
//	osgiver capabilities --project project.yaml
//
// Produces dependencies.osgi.
//
// manifest - Render the bundle manifest:
//
//	osgiver manifest --project pom.xml --properties target/osgi.properties
//
// Produces version.osgi, dependencies.osgi and manifest.osgi.
//
// # Shared Flags
//
//	--project, -f          Project descriptor (pom.xml, JSON, JSON5, YAML or URL)
//	--qualifier-default    Qualifier policy: zero, timestamp (default: zero)
//	--keep-leading-dash    Keep the dash in 1.2.3-beta qualifiers
//	--properties, -p       Property store: FILE.properties or cm://namespace/name
//	--kubeconfig           Kubeconfig for ConfigMap property stores
//	--output, -o           Output file path (default: stdout)
//	--format, -t           Output format: json, yaml, table, text (default: json)
//
// # Environment Variables
//
//	LOG_LEVEL                   Logging verbosity (debug, info, warn, error)
//	OSGIVER_QUALIFIER_DEFAULT   Default for --qualifier-default
//	OSGIVER_KEEP_LEADING_DASH   Default for --keep-leading-dash
//	OSGIVER_PROPERTIES          Default for --properties
//
// # Exit Codes
//
//	0  Success
//	1  Any error, including versions that cannot be translated
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/osgi-version/pkg/cli.version=1.0.0'"
package cli
