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

// Package header provides the envelope shared by every document osgiver emits.
//
// A Header carries Kind, APIVersion and a flat Metadata map:
//
//	h := header.New(
//	    header.WithKind(header.KindVersionResult),
//	    header.WithAPIVersion(header.APIVersionV1),
//	)
//	h.Init(header.KindManifestResult, header.APIVersionV1, version)
//
// Init stamps "timestamp" (RFC 3339, UTC) and "version" (tool version) into
// Metadata. Documents embed Header inline so the fields appear at the top
// level of their JSON and YAML forms.
package header
