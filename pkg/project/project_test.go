package project

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/NVIDIA/osgi-version/pkg/osgi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPOM = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <parent>
    <groupId>foo</groupId>
    <artifactId>parent</artifactId>
    <version>1.2.3-alpha-1</version>
  </parent>
  <artifactId>bar</artifactId>
  <description>a webjar</description>
  <properties>
    <barfoo.version>2.1.4.0</barfoo.version>
    <alias.version>${barfoo.version}</alias.version>
  </properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>managed</groupId>
        <artifactId>lib</artifactId>
        <version>3.0</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency>
      <groupId>foobar</groupId>
      <artifactId>barfoo</artifactId>
      <version>${alias.version}</version>
    </dependency>
    <dependency>
      <groupId>${project.groupId}</groupId>
      <artifactId>sibling</artifactId>
      <version>${project.version}</version>
    </dependency>
    <dependency>
      <groupId>managed</groupId>
      <artifactId>lib</artifactId>
    </dependency>
  </dependencies>
  <build>
    <plugins>
      <plugin>
        <dependencies>
          <dependency>
            <groupId>ignored</groupId>
            <artifactId>plugin-dep</artifactId>
            <version>9</version>
          </dependency>
        </dependencies>
      </plugin>
    </plugins>
  </build>
</project>`

func TestParse_POM(t *testing.T) {
	p, err := Parse([]byte(testPOM), FormatPOM)
	require.NoError(t, err)

	assert.Equal(t, "foo", p.GroupID)
	assert.Equal(t, "bar", p.ArtifactID)
	assert.Equal(t, "1.2.3-alpha-1", p.Version)
	assert.Equal(t, "a webjar", p.Description)
	assert.Equal(t, []osgi.Dependency{
		{GroupID: "foobar", ArtifactID: "barfoo", Version: "2.1.4.0"},
		{GroupID: "foo", ArtifactID: "sibling", Version: "1.2.3-alpha-1"},
		{GroupID: "managed", ArtifactID: "lib", Version: "3.0"},
	}, p.Dependencies)
}

func TestParse_POMOwnCoordinatesWin(t *testing.T) {
	pom := `<project>
  <parent><groupId>p</groupId><artifactId>pa</artifactId><version>9</version></parent>
  <groupId>own</groupId><artifactId>a</artifactId><version>1.0</version>
</project>`
	p, err := Parse([]byte(pom), FormatPOM)
	require.NoError(t, err)
	assert.Equal(t, "own:a:1.0", p.Coordinates())
	assert.Empty(t, p.Dependencies)
}

func TestParse_POMInvalid(t *testing.T) {
	_, err := Parse([]byte("<project><groupId>x"), FormatPOM)
	assert.Error(t, err)

	_, err = Parse([]byte("<project><version>1</version></project>"), FormatPOM)
	assert.ErrorContains(t, err, "groupId is required")
}

func TestInterpolate(t *testing.T) {
	vars := map[string]string{"a": "${b}", "b": "B", "loop": "${loop}"}

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"${a}-x", "B-x"},
		{"${missing}", "${missing}"},
		{"${b}${b}", "BB"},
		{"${unterminated", "${unterminated"},
		{"${loop}", "${loop}"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, interpolate(tt.in, vars))
		})
	}
}

func TestParse_Formats(t *testing.T) {
	want := &Project{
		GroupID:    "foo",
		ArtifactID: "bar",
		Version:    "1.2-SNAPSHOT",
		Dependencies: []osgi.Dependency{
			{GroupID: "foobar", ArtifactID: "barfoo", Version: "2.1.4.0"},
		},
	}

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{
			name:   "json",
			format: FormatJSON,
			data:   `{"groupId":"foo","artifactId":"bar","version":"1.2-SNAPSHOT","dependencies":[{"groupId":"foobar","artifactId":"barfoo","version":"2.1.4.0"}]}`,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			data: `groupId: foo
artifactId: bar
version: 1.2-SNAPSHOT
dependencies:
  - groupId: foobar
    artifactId: barfoo
    version: 2.1.4.0
`,
		},
		{
			name:   "json5",
			format: FormatJSON5,
			data: `{
  // webjar coordinates
  groupId: "foo",
  artifactId: "bar",
  version: "1.2-SNAPSHOT",
  dependencies: [
    {groupId: "foobar", artifactId: "barfoo", version: "2.1.4.0",},
  ],
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), Format("gradle"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		project *Project
		wantErr bool
	}{
		{"nil", nil, true},
		{"missing group", &Project{ArtifactID: "a"}, true},
		{"missing artifact", &Project{GroupID: "g"}, true},
		{"bad dependency", &Project{GroupID: "g", ArtifactID: "a", Dependencies: []osgi.Dependency{{GroupID: "x"}}}, true},
		{"empty version allowed", &Project{GroupID: "g", ArtifactID: "a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"pom.xml":                           FormatPOM,
		"/src/POM.XML":                      FormatPOM,
		"bar-1.0.pom":                       FormatPOM,
		"project.json5":                     FormatJSON5,
		"project.yml":                       FormatYAML,
		"project.json":                      FormatJSON,
		"https://example.com/pom.xml?ref=1": FormatPOM,
		"descriptor":                        FormatJSON,
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatFromPath(in), in)
	}
}

func TestLoad_LocalAndRemote(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(local, []byte(testPOM), 0600))

	p, err := Load(context.Background(), local)
	require.NoError(t, err)
	assert.Equal(t, "foo:bar:1.2.3-alpha-1", p.Coordinates())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("groupId: remote\nartifactId: r\nversion: '1'\n"))
	}))
	defer srv.Close()

	p, err = Load(context.Background(), srv.URL+"/project.yaml")
	require.NoError(t, err)
	assert.Equal(t, "remote:r:1", p.Coordinates())

	_, err = Load(context.Background(), filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
