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

// Package defaults centralizes timeouts and limits shared by the CLI, the API
// server and the property stores.
//
// Import and use the constants directly:
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
//	defer cancel()
//
// Handler timeouts are shorter than ServerWriteTimeout so handlers can still
// write a structured error before the server drops the connection.
package defaults
