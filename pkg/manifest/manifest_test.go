package manifest

import (
	"errors"
	"testing"
	"time"

	cnserrors "github.com/NVIDIA/osgi-version/pkg/errors"
	"github.com/NVIDIA/osgi-version/pkg/header"
	"github.com/NVIDIA/osgi-version/pkg/osgi"
	"github.com/NVIDIA/osgi-version/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedManifest = "Bundle-SymbolicName: foo.bar\n" +
	"Bundle-Version:\t1.2.3.alpha-1\n" +
	"-resourceonly:true\n" +
	"WebJars-Resource:\\\n" +
	"/META-INF/resources/webjars/bar/1.2.3.alpha-1,\\\n" +
	"/webjars-requirejs.js\n" +
	"Provide-Capability: foo;bar:List<String>=1.2.3.alpha-1\n" +
	"Require-Capability: foobar;filter:=\"(barfoo=2.1.4.0)\""

func testProject() *project.Project {
	return &project.Project{
		GroupID:    "foo",
		ArtifactID: "bar",
		Version:    "1.2.3-alpha-1",
		Dependencies: []osgi.Dependency{
			{GroupID: "foobar", ArtifactID: "barfoo", Version: "2.1.4.0"},
		},
	}
}

func TestManifest_String(t *testing.T) {
	m, err := NewBuilder().Manifest(testProject())
	require.NoError(t, err)
	assert.Equal(t, expectedManifest, m.String())
	assert.Equal(t, "foo.bar", m.SymbolicName())
}

func TestManifest_NoDependencies(t *testing.T) {
	p := testProject()
	p.Dependencies = nil

	m, err := NewBuilder().Manifest(p)
	require.NoError(t, err)
	assert.NotContains(t, m.String(), "Require-Capability")
	assert.NotContains(t, m.String(), "\n\n")
	assert.Equal(t, "Provide-Capability: foo;bar:List<String>=1.2.3.alpha-1",
		m.String()[len(m.String())-len("Provide-Capability: foo;bar:List<String>=1.2.3.alpha-1"):])
}

func TestManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *project.Project)
		code    cnserrors.ErrorCode
		wantMsg string
	}{
		{
			name:   "project version",
			mutate: func(p *project.Project) { p.Version = "1.asdf.3" },
			code:   cnserrors.ErrCodeMalformedSegment,
		},
		{
			name:   "empty project version",
			mutate: func(p *project.Project) { p.Version = "" },
			code:   cnserrors.ErrCodeMalformedVersion,
		},
		{
			name:    "dependency qualifier",
			mutate:  func(p *project.Project) { p.Dependencies[0].Version = "1.2.3.4-_asdfasdf&/" },
			code:    cnserrors.ErrCodeMalformedQualifier,
			wantMsg: "Malformed qualifier '4-_asdfasdf&/'",
		},
		{
			name:   "missing group",
			mutate: func(p *project.Project) { p.GroupID = "" },
			code:   cnserrors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProject()
			tt.mutate(p)

			_, err := NewBuilder().Manifest(p)
			require.Error(t, err)
			assert.Equal(t, tt.code, cnserrors.CodeOf(err))
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestBuilder_BuildVersion(t *testing.T) {
	b := NewBuilder(WithVersion("v1.0.0"))

	res, err := b.BuildVersion("1.2-SNAPSHOT")
	require.NoError(t, err)
	assert.Equal(t, header.KindVersionResult, res.Kind)
	assert.Equal(t, header.APIVersionV1, res.APIVersion)
	assert.Equal(t, "v1.0.0", res.Metadata["version"])
	assert.NotEmpty(t, res.Metadata["timestamp"])
	assert.Equal(t, "1.2-SNAPSHOT", res.Input)
	assert.Equal(t, "1.2.0.SNAPSHOT", res.Text())

	_, err = b.BuildVersion(".asdf..33öjkhadsf")
	var segErr *osgi.MalformedSegmentError
	assert.True(t, errors.As(err, &segErr))
}

func TestBuilder_BuildCapabilities(t *testing.T) {
	b := NewBuilder()

	res, err := b.BuildCapabilities(nil)
	require.NoError(t, err)
	assert.Equal(t, "", res.Text())
	assert.Contains(t, res.Properties, PropertyDependenciesOSGi)

	res, err = b.BuildCapabilities([]osgi.Dependency{
		{GroupID: "a", ArtifactID: "b", Version: "1"},
		{GroupID: "c", ArtifactID: "d", Version: "2.0-rc1"},
	})
	require.NoError(t, err)
	assert.Equal(t, header.KindCapabilityResult, res.Kind)
	assert.Equal(t, `a;filter:="(b=1.0.0.0)",c;filter:="(d=2.0.0.rc1)"`, res.Text())

	_, err = b.BuildCapabilities([]osgi.Dependency{{ArtifactID: "b", Version: "1"}})
	assert.Equal(t, cnserrors.ErrCodeInvalidRequest, cnserrors.CodeOf(err))
}

func TestBuilder_BuildManifest(t *testing.T) {
	res, err := NewBuilder().BuildManifest(testProject())
	require.NoError(t, err)

	assert.Equal(t, header.KindManifestResult, res.Kind)
	assert.Equal(t, "foo:bar:1.2.3-alpha-1", res.Project)
	assert.Equal(t, map[string]string{
		PropertyVersionOSGi:      "1.2.3.alpha-1",
		PropertyDependenciesOSGi: `foobar;filter:="(barfoo=2.1.4.0)"`,
		PropertyManifestOSGi:     expectedManifest,
	}, res.Properties)
	assert.Equal(t, expectedManifest, res.Text())
}

func TestBuilder_TranslatorOptions(t *testing.T) {
	b := NewBuilder(WithTranslatorOptions(osgi.WithLeadingDashStrip(false)))
	res, err := b.BuildVersion("1.2.3-beta1-2")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3.-beta1-2", res.Text())

	fixed := time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)
	tb := b.WithQualifierPolicy(osgi.QualifierTimestamp)
	assert.Equal(t, osgi.QualifierTimestamp, tb.Translator().Policy())
	assert.Equal(t, osgi.QualifierZero, b.Translator().Policy())

	cb := NewBuilder(WithTranslatorOptions(osgi.WithClock(func() time.Time { return fixed }))).
		WithQualifierPolicy(osgi.QualifierTimestamp)
	res, err = cb.BuildVersion("1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3.20261016-1230", res.Text())
}
