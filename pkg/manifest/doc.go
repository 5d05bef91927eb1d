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

// Package manifest renders OSGi bundle manifest headers for webjar-style
// artifacts and the property sets derived from them.
//
// A Builder turns project metadata into three property values:
//
//	version.osgi       the translated OSGi version of the project
//	dependencies.osgi  the Require-Capability clause list for its dependencies
//	manifest.osgi      the complete manifest header block
//
// The header block has this shape (no trailing newline, Require-Capability
// omitted when the project has no dependencies):
//
//	Bundle-SymbolicName: <groupId>.<artifactId>
//	Bundle-Version:	<osgiVersion>
//	-resourceonly:true
//	WebJars-Resource:\
//	/META-INF/resources/webjars/<artifactId>/<osgiVersion>,\
//	/webjars-requirejs.js
//	Provide-Capability: <groupId>;<artifactId>:List<String>=<osgiVersion>
//	Require-Capability: <capabilityList>
//
// Usage:
//
//	b := manifest.NewBuilder(manifest.WithVersion(version))
//	res, err := b.BuildManifest(p)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Properties[manifest.PropertyManifestOSGi])
//
// The Builder also serves the /v1/version, /v1/capabilities and /v1/manifest
// API endpoints.
package manifest
