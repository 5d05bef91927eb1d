package manifest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/NVIDIA/osgi-version/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) Result {
	t.Helper()
	var res Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var res server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestHandleVersion(t *testing.T) {
	b := NewBuilder(WithVersion("test"))

	tests := []struct {
		name       string
		query      url.Values
		wantStatus int
		wantValue  string
		wantCode   string
	}{
		{
			name:       "translates",
			query:      url.Values{"version": {"1.2.3-beta1-2"}},
			wantStatus: http.StatusOK,
			wantValue:  "1.2.3.beta1-2",
		},
		{
			name:       "zero policy",
			query:      url.Values{"version": {"4.5"}, "qualifier": {"zero"}},
			wantStatus: http.StatusOK,
			wantValue:  "4.5.0.0",
		},
		{
			name:       "missing version",
			query:      url.Values{},
			wantStatus: http.StatusBadRequest,
			wantCode:   "MALFORMED_VERSION",
		},
		{
			name:       "bad segment",
			query:      url.Values{"version": {"1.asdf.3.asd.asdf.sdf"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "MALFORMED_SEGMENT",
		},
		{
			name:       "bad qualifier",
			query:      url.Values{"version": {"1.2.3.4-_asdfasdf&/"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "MALFORMED_QUALIFIER",
		},
		{
			name:       "unknown policy",
			query:      url.Values{"version": {"1"}, "qualifier": {"latest"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/version?"+tt.query.Encode(), nil)
			w := httptest.NewRecorder()

			b.HandleVersion(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
				return
			}
			res := decodeResult(t, w)
			assert.Equal(t, tt.wantValue, res.Properties[PropertyVersionOSGi])
		})
	}
}

func TestHandleVersion_SegmentDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/version?version=1.asdf.3", nil)
	w := httptest.NewRecorder()

	NewBuilder().HandleVersion(w, req)

	resp := decodeError(t, w)
	assert.Equal(t, "Malformed segment for version '1.asdf.3' at segment 'asdf'", resp.Message)
	assert.Equal(t, "asdf", resp.Details["segment"])
	assert.Equal(t, "1.asdf.3", resp.Details["version"])
	assert.EqualValues(t, 1, resp.Details["position"])
}

func TestHandlers_MethodNotAllowed(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		name    string
		method  string
		handler http.HandlerFunc
		allow   string
	}{
		{"version", http.MethodPost, b.HandleVersion, http.MethodGet},
		{"capabilities", http.MethodGet, b.HandleCapabilities, http.MethodPost},
		{"manifest", http.MethodDelete, b.HandleManifest, http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, httptest.NewRequest(tt.method, "/", nil))
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("Allow"))
		})
	}
}

func TestHandleCapabilities(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		name        string
		body        string
		contentType string
		wantStatus  int
		wantValue   string
		wantCode    string
	}{
		{
			name:        "json",
			body:        `{"dependencies":[{"groupId":"foobar","artifactId":"barfoo","version":"2.1.4.0"}]}`,
			contentType: "application/json",
			wantStatus:  http.StatusOK,
			wantValue:   `foobar;filter:="(barfoo=2.1.4.0)"`,
		},
		{
			name:        "yaml",
			body:        "dependencies:\n  - groupId: a\n    artifactId: b\n    version: 1.2-test\n",
			contentType: "application/x-yaml; charset=utf-8",
			wantStatus:  http.StatusOK,
			wantValue:   `a;filter:="(b=1.2.0.test)"`,
		},
		{
			name:        "empty list",
			body:        `{"dependencies":[]}`,
			contentType: "application/json",
			wantStatus:  http.StatusOK,
			wantValue:   "",
		},
		{
			name:        "empty body",
			body:        "",
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_REQUEST",
		},
		{
			name:        "invalid json",
			body:        `{invalid}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_REQUEST",
		},
		{
			name:        "bad dependency version",
			body:        `{"dependencies":[{"groupId":"g","artifactId":"a","version":""}]}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "MALFORMED_VERSION",
		},
		{
			name:        "missing coordinates",
			body:        `{"dependencies":[{"artifactId":"a","version":"1"}]}`,
			contentType: "application/json",
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/capabilities", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()

			b.HandleCapabilities(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
				return
			}
			res := decodeResult(t, w)
			assert.Equal(t, tt.wantValue, res.Text())
		})
	}
}

func TestHandleCapabilities_TooMany(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"dependencies":[`)
	for i := 0; i <= 1000; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"groupId":"g","artifactId":"a","version":"1"}`)
	}
	sb.WriteString("]}")

	req := httptest.NewRequest(http.MethodPost, "/v1/capabilities", strings.NewReader(sb.String()))
	w := httptest.NewRecorder()
	NewBuilder().HandleCapabilities(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Too many dependencies", decodeError(t, w).Message)
}

func TestHandleManifest(t *testing.T) {
	b := NewBuilder()

	body := `groupId: foo
artifactId: bar
version: 1.2.3-alpha-1
dependencies:
  - groupId: foobar
    artifactId: barfoo
    version: 2.1.4.0
`
	req := httptest.NewRequest(http.MethodPost, "/v1/manifest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/yaml")
	w := httptest.NewRecorder()

	b.HandleManifest(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decodeResult(t, w)
	assert.Equal(t, expectedManifest, res.Properties[PropertyManifestOSGi])
	assert.Equal(t, "1.2.3.alpha-1", res.Properties[PropertyVersionOSGi])
	assert.Equal(t, "foo:bar:1.2.3-alpha-1", res.Project)
}

func TestHandleManifest_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"missing artifact", `{"groupId":"foo","version":"1"}`, "INVALID_REQUEST"},
		{"bad version", `{"groupId":"foo","artifactId":"bar","version":"x.1"}`, "MALFORMED_SEGMENT"},
		{"not json", `<project/>`, "INVALID_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/manifest", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			NewBuilder().HandleManifest(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
		})
	}
}
