package favicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLSnippet(t *testing.T) {
	t.Parallel()

	snippet, err := HTMLSnippet(DefaultManifest(), HTMLOptions{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(snippet), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `<link rel="icon" type="image/png" sizes="32x32" media="(prefers-color-scheme: dark)" href="/icon-dark-32x32.png">`, lines[0])
	assert.Equal(t, `<link rel="icon" type="image/png" sizes="32x32" media="(prefers-color-scheme: light)" href="/icon-light-32x32.png">`, lines[1])
	assert.Equal(t, `<link rel="apple-touch-icon" type="image/png" sizes="180x180" href="/apple-icon.png">`, lines[2])
	assert.Equal(t, `<link rel="icon" sizes="any" href="/favicon.ico">`, lines[3])

	snippet, err = HTMLSnippet(DefaultManifest(), HTMLOptions{Prefix: "/static/icons"})
	require.NoError(t, err)
	assert.Contains(t, snippet, `href="/static/icons/apple-icon.png"`)
}

func TestHTMLSnippetInline(t *testing.T) {
	t.Parallel()

	source := writeSource(t, t.TempDir(), 64, 64)
	outDir := t.TempDir()
	_, err := NewGenerator(nil).Generate(source, outDir)
	require.NoError(t, err)

	snippet, err := HTMLSnippet(DefaultManifest(), HTMLOptions{Inline: true, Dir: outDir})
	require.NoError(t, err)
	assert.Contains(t, snippet, `href="data:image/png`)
	assert.Contains(t, snippet, `href="data:image/x-icon`)
	assert.Contains(t, snippet, "base64,")
	assert.NotContains(t, snippet, `href="/`)

	_, err = HTMLSnippet(DefaultManifest(), HTMLOptions{Inline: true})
	require.Error(t, err)

	_, err = HTMLSnippet(DefaultManifest(), HTMLOptions{Inline: true, Dir: t.TempDir()})
	require.Error(t, err)
}
