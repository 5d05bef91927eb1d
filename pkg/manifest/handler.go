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

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NVIDIA/osgi-version/pkg/defaults"
	cnserrors "github.com/NVIDIA/osgi-version/pkg/errors"
	"github.com/NVIDIA/osgi-version/pkg/osgi"
	"github.com/NVIDIA/osgi-version/pkg/project"
	"github.com/NVIDIA/osgi-version/pkg/serializer"
	"github.com/NVIDIA/osgi-version/pkg/server"
	"gopkg.in/yaml.v3"
)

// CapabilitiesRequest is the body of POST /v1/capabilities.
type CapabilitiesRequest struct {
	Dependencies []osgi.Dependency `json:"dependencies" yaml:"dependencies"`
}

// HandleVersion serves GET /v1/version?version=...&qualifier=zero|timestamp.
func (b *Builder) HandleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	q := r.URL.Query()
	vb, ok := b.forRequest(w, r, q.Get("qualifier"))
	if !ok {
		return
	}

	raw := q.Get("version")
	slog.Debug("translating version", "version", raw, "policy", vb.translator.Policy())

	res, err := vb.BuildVersion(raw)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to translate version", translationDetails(err))
		return
	}

	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleCapabilities serves POST /v1/capabilities with a JSON or YAML
// CapabilitiesRequest body.
func (b *Builder) HandleCapabilities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r, http.MethodPost)
		return
	}
	defer r.Body.Close()

	vb, ok := b.forRequest(w, r, r.URL.Query().Get("qualifier"))
	if !ok {
		return
	}

	var req CapabilitiesRequest
	if err := decodeBody(r.Body, r.Header.Get("Content-Type"), &req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"Invalid capabilities request", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if len(req.Dependencies) > defaults.MaxDependencies {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"Too many dependencies", false, map[string]any{
				"count": len(req.Dependencies),
				"max":   defaults.MaxDependencies,
			})
		return
	}

	res, err := vb.BuildCapabilities(req.Dependencies)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to render capabilities", translationDetails(err))
		return
	}

	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleManifest serves POST /v1/manifest with a JSON or YAML project body.
func (b *Builder) HandleManifest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r, http.MethodPost)
		return
	}
	defer r.Body.Close()

	vb, ok := b.forRequest(w, r, r.URL.Query().Get("qualifier"))
	if !ok {
		return
	}

	var p project.Project
	if err := decodeBody(r.Body, r.Header.Get("Content-Type"), &p); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"Invalid project", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if len(p.Dependencies) > defaults.MaxDependencies {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"Too many dependencies", false, map[string]any{
				"count": len(p.Dependencies),
				"max":   defaults.MaxDependencies,
			})
		return
	}

	res, err := vb.BuildManifest(&p)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to render manifest", translationDetails(err))
		return
	}

	serializer.RespondJSON(w, http.StatusOK, res)
}

// forRequest applies the optional qualifier policy of a request. It writes a
// 400 response and returns false when the policy is unknown.
func (b *Builder) forRequest(w http.ResponseWriter, r *http.Request, qualifier string) (*Builder, bool) {
	if qualifier == "" {
		return b, true
	}
	policy := osgi.QualifierPolicy(qualifier)
	if !policy.IsValid() {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"Invalid qualifier policy", false, map[string]any{
				"qualifier": qualifier,
				"allowed":   osgi.SupportedQualifierPolicies(),
			})
		return nil, false
	}
	return b.WithQualifierPolicy(policy), true
}

func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{allowed},
		})
}

// decodeBody reads a JSON or YAML body according to contentType. Unknown
// content types are parsed as JSON.
func decodeBody(body io.Reader, contentType string, v any) error {
	if body == nil {
		return fmt.Errorf("request body cannot be nil")
	}

	data, err := io.ReadAll(io.LimitReader(body, defaults.MaxRequestBodyBytes+1))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("request body is empty")
	}
	if len(data) > defaults.MaxRequestBodyBytes {
		return fmt.Errorf("request body exceeds %d bytes", defaults.MaxRequestBodyBytes)
	}

	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML body: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON body: %w", err)
		}
	}
	return nil
}

// translationDetails exposes the offending value of a translation error.
func translationDetails(err error) map[string]any {
	var (
		mv *osgi.MalformedVersionError
		ms *osgi.MalformedSegmentError
		mq *osgi.MalformedQualifierError
	)
	switch {
	case errors.As(err, &ms):
		return map[string]any{
			"version":  ms.Version,
			"position": ms.Position,
			"segment":  ms.Segment,
		}
	case errors.As(err, &mq):
		return map[string]any{"qualifier": mq.Qualifier}
	case errors.As(err, &mv):
		return map[string]any{"version": mv.Version}
	default:
		return nil
	}
}
