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

// Package project loads the build metadata that feeds OSGi version translation.
//
// A Project carries the coordinates of the artifact being built and its
// declared dependencies. Descriptors are read from local paths or HTTP(S) URLs
// in one of the following formats, chosen by file name:
//
//   - pom.xml or *.xml: Maven POM, with parent inheritance and ${...} interpolation
//   - *.json5: JSON5 (comments, trailing commas, unquoted keys)
//   - *.yaml, *.yml: YAML
//   - anything else: JSON
//
// Example YAML descriptor:
//
//	groupId: foo
//	artifactId: bar
//	version: 1.2.3-alpha-1
//	dependencies:
//	  - groupId: foobar
//	    artifactId: barfoo
//	    version: 2.1.4.0
//
// Loading:
//
//	p, err := project.Load(ctx, "pom.xml")
//	if err != nil {
//		return err
//	}
//	fmt.Println(p.Coordinates())
//
// The package performs no dependency resolution. Dependencies are reported
// exactly as declared, in declaration order.
package project
