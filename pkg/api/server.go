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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/NVIDIA/osgi-version/pkg/defaults"
	"github.com/NVIDIA/osgi-version/pkg/logging"
	"github.com/NVIDIA/osgi-version/pkg/manifest"
	"github.com/NVIDIA/osgi-version/pkg/osgi"
	"github.com/NVIDIA/osgi-version/pkg/server"
)

const (
	name           = "osgiverd"
	versionDefault = "dev"

	// EnvQualifierDefault selects the server-wide qualifier policy.
	EnvQualifierDefault = "OSGIVER_QUALIFIER_DEFAULT"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	policy := osgi.QualifierZero
	if p := osgi.QualifierPolicy(os.Getenv(EnvQualifierDefault)); p.IsValid() {
		policy = p
	}

	b := manifest.NewBuilder(
		manifest.WithVersion(version),
		manifest.WithTranslatorOptions(osgi.WithQualifierPolicy(policy)),
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes(b)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func routes(b *manifest.Builder) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/version":      withTimeout(b.HandleVersion, defaults.TranslateHandlerTimeout),
		"/v1/capabilities": withTimeout(b.HandleCapabilities, defaults.TranslateHandlerTimeout),
		"/v1/manifest":     withTimeout(b.HandleManifest, defaults.ManifestHandlerTimeout),
	}
}

func withTimeout(h http.HandlerFunc, d time.Duration) http.HandlerFunc {
	return http.TimeoutHandler(h, d, `{"code":"TIMEOUT","message":"request timed out","retryable":true}`).ServeHTTP
}
