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

// Package server provides the HTTP server shared by osgiverd endpoints.
//
// The server is stateless. Domain packages register handlers and the server
// wraps them with middleware:
//
//   - Prometheus request metrics
//   - API version negotiation (Accept: application/vnd.osgiver.v1+json)
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Structured request logging
//
// # Usage
//
//	s := server.New(
//		server.WithName("osgiverd"),
//		server.WithVersion(version),
//		server.WithHandler(map[string]http.HandlerFunc{
//			"/v1/version": b.HandleVersion,
//		}),
//	)
//	if err := s.Run(ctx); err != nil {
//		return err
//	}
//
// Run blocks until ctx is cancelled or SIGINT/SIGTERM is received and then
// shuts down gracefully within Config.ShutdownTimeout.
//
// # System Endpoints
//
// These are registered without rate limiting:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 while starting or shutting down
//	GET /metrics  Prometheus metrics
//	GET /         service name, version and routes
//
// # Errors
//
// All errors share one JSON shape:
//
//	{
//	  "code": "MALFORMED_SEGMENT",
//	  "message": "Malformed segment for version '1.asdf.3' at segment 'asdf'",
//	  "details": {"version": "1.asdf.3", "position": 1, "segment": "asdf"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-10-16T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives the HTTP status from the error code; the three
// MALFORMED_* translation codes map to 400.
//
// # Configuration
//
// Environment variables:
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget (default 30)
//   - RATE_LIMIT: requests per second (default 100, burst is twice the rate)
package server
