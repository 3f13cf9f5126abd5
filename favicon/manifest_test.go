package favicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	t.Parallel()

	m := DefaultManifest()
	require.NoError(t, m.Validate())
	assert.Equal(t, FilterLanczos, m.Filter)
	assert.Equal(t, FitStretch, m.Fit)
	require.Len(t, m.Artifacts, 4)
	assert.Equal(t, "favicon.ico (ico 32x32)", m.Artifacts[3].String())
}

func TestParseManifest(t *testing.T) {
	t.Parallel()

	m, err := ParseManifest([]byte(`
fit: pad
artifacts:
  - name: favicon.ico
    sizes: [16, 32, 48]
    format: ico
  - name: icon-192.png
    sizes: [192]
    format: png
    rel: icon
`))
	require.NoError(t, err)
	assert.Equal(t, FilterLanczos, m.Filter)
	assert.Equal(t, FitPad, m.Fit)
	require.Len(t, m.Artifacts, 2)
	assert.Equal(t, []int{16, 32, 48}, m.Artifacts[0].Sizes)
	assert.Equal(t, FormatPNG, m.Artifacts[1].Format)
}

func TestParseManifestErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseManifest([]byte("artifacts:\n  - name: a.png\n    size: 32\n"))
	require.Error(t, err, "unknown fields are rejected")

	_, err = ParseManifest(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no artifacts defined")
}

func TestValidateCollectsAll(t *testing.T) {
	t.Parallel()

	m := &Manifest{
		Filter: "sharp",
		Fit:    FitStretch,
		Artifacts: []Artifact{
			{Name: "", Sizes: []int{32}, Format: FormatPNG},
			{Name: "../escape.png", Sizes: []int{32}, Format: FormatPNG},
			{Name: "two.png", Sizes: []int{16, 32}, Format: FormatPNG},
			{Name: "big.ico", Sizes: []int{512}, Format: FormatICO},
			{Name: "big.ico", Sizes: []int{-1, 16, 16}, Format: "gif"},
		},
	}

	err := m.Validate()
	require.Error(t, err)
	merr, ok := err.(*multierror.Error) //nolint:errorlint
	require.True(t, ok)

	// filter, missing name, path name, two png sizes, ico size,
	// duplicate name, unknown format, invalid size, duplicate size.
	assert.Len(t, merr.Errors, 9)
	assert.Contains(t, err.Error(), `unknown filter "sharp"`)
	assert.Contains(t, err.Error(), `duplicate name "big.ico"`)
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "favicons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("filter: bilinear\nartifacts:\n  - {name: a.png, sizes: [64], format: png}\n"), 0o600))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, FilterBilinear, m.Filter)

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
