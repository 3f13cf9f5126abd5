//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package renameio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avantgarde/favicongen/base/utils"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	d := t.TempDir()
	filename := filepath.Join(d, "apple-icon.png")

	wantData := []byte("\x89PNG\r\n\x1a\n")
	require.NoError(t, WriteFile(filename, wantData, utils.PublicReadPermission))

	gotData, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, wantData, gotData)

	fi, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), fi.Mode()&os.ModePerm)
}

func TestWriteWithFailureKeepsPrevious(t *testing.T) {
	t.Parallel()

	d := t.TempDir()
	filename := filepath.Join(d, "favicon.ico")
	require.NoError(t, WriteFile(filename, []byte("old"), utils.PublicReadPermission))

	errEncode := errors.New("encode failed")
	err := WriteWith(filename, utils.PublicReadPermission, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errEncode
	})
	require.ErrorIs(t, err, errEncode)

	gotData, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), gotData)

	// No temporary files are left behind.
	entries, err := os.ReadDir(d)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileMissingDir(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "missing", "favicon.ico")
	require.Error(t, WriteFile(filename, []byte("x"), utils.PublicReadPermission))
}
