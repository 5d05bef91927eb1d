package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"project.json", FormatJSON},
		{"project.YAML", FormatYAML},
		{"project.yml", FormatYAML},
		{"out.table", FormatTable},
		{"out.txt", FormatText},
		{"project", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader_WriteOnlyFormats(t *testing.T) {
	for _, f := range []Format{FormatTable, FormatText, Format("xml")} {
		if _, err := NewReader(f, strings.NewReader("")); err == nil {
			t.Errorf("expected error for format %s", f)
		}
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"name":"x","value":5}`},
		{"yaml", FormatYAML, "name: x\nvalue: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			defer reader.Close()

			var got testConfig
			if err := reader.Deserialize(&got); err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}
			if got.Name != "x" || got.Value != 5 {
				t.Errorf("unexpected result: %+v", got)
			}
		})
	}
}

func TestReader_DeserializeInvalid(t *testing.T) {
	reader, err := NewReader(FormatJSON, strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	var got testConfig
	if err := reader.Deserialize(&got); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestFromFile_Local(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("name: local\nvalue: 9\n"), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile[testConfig](path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Name != "local" || got.Value != 9 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile[testConfig](filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := FromFile[testConfig](""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestFromSource_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != HttpReaderUserAgent {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"name":"remote","value":3}`))
	}))
	defer srv.Close()

	got, err := FromSource[testConfig](context.Background(), srv.URL+"/cfg.json")
	if err != nil {
		t.Fatalf("FromSource failed: %v", err)
	}
	if got.Name != "remote" {
		t.Errorf("unexpected result: %+v", got)
	}
}
