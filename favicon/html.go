package favicon

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vincent-petithory/dataurl"

	"github.com/avantgarde/favicongen/base/utils"
)

// HTMLOptions configures HTMLSnippet.
type HTMLOptions struct {
	// Prefix is the URL path the artifacts are served from. Defaults to "/".
	Prefix string
	// Inline embeds the artifact contents as data URLs instead of linking
	// to them. Requires Dir.
	Inline bool
	// Dir is the directory the artifacts were written to.
	Dir string
}

// HTMLSnippet returns the <link> tags that reference the manifest's
// artifacts, one per line, for the head of a page.
func HTMLSnippet(manifest *Manifest, opts HTMLOptions) (string, error) {
	if opts.Prefix == "" {
		opts.Prefix = "/"
	}
	if opts.Inline && opts.Dir == "" {
		return "", errors.New("inlining artifacts requires their directory")
	}

	builder := new(strings.Builder)
	for _, artifact := range manifest.Artifacts {
		mimeType, _ := utils.MimeTypeByExtension(filepath.Ext(artifact.Name))

		href := path.Join(opts.Prefix, artifact.Name)
		if opts.Inline {
			data, err := os.ReadFile(filepath.Join(opts.Dir, artifact.Name))
			if err != nil {
				return "", fmt.Errorf("failed to inline %s: %w", artifact.Name, err)
			}
			href = dataurl.New(data, mimeType).String()
		}

		rel := artifact.Rel
		if rel == "" {
			rel = "icon"
		}

		builder.WriteString(`<link rel="`)
		builder.WriteString(html.EscapeString(rel))
		builder.WriteString(`"`)
		if artifact.Format == FormatPNG {
			fmt.Fprintf(builder, ` type="%s" sizes="%dx%d"`, mimeType, artifact.Sizes[0], artifact.Sizes[0])
		} else {
			builder.WriteString(` sizes="any"`)
		}
		if artifact.Media != "" {
			builder.WriteString(` media="`)
			builder.WriteString(html.EscapeString(artifact.Media))
			builder.WriteString(`"`)
		}
		builder.WriteString(` href="`)
		builder.WriteString(html.EscapeString(href))
		builder.WriteString("\">\n")
	}

	return builder.String(), nil
}
