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

// Package api wires the osgiverd HTTP API.
//
// Serve configures structured logging, builds the manifest handlers and runs
// pkg/server until SIGINT or SIGTERM.
//
//	func main() {
//		if err := api.Serve(); err != nil {
//			log.Fatalf("server error: %v", err)
//		}
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /v1/version?version=1.2-SNAPSHOT[&qualifier=zero|timestamp]
//   - POST /v1/capabilities  body {"dependencies":[{"groupId":..,"artifactId":..,"version":..}]}
//   - POST /v1/manifest      body: project descriptor (JSON or YAML)
//
// System endpoints:
//   - GET /health, /ready, /metrics, /
//
// Example:
//
//	curl "http://localhost:8080/v1/version?version=1.2.3-beta1-2"
//
//	curl -X POST http://localhost:8080/v1/manifest \
//	  -H "Content-Type: application/yaml" \
//	  --data-binary @project.yaml
//
// # Configuration
//
// Environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - OSGIVER_QUALIFIER_DEFAULT: zero or timestamp (default: zero)
//   - SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT: see pkg/server
//
// Version information is set at build time:
//
//	go build -ldflags="-X 'github.com/NVIDIA/osgi-version/pkg/api.version=1.0.0'"
package api
