package favicon

import (
	"fmt"
	"strings"
)

// Format is the encoding of an output artifact.
type Format string

// Supported artifact formats.
const (
	FormatPNG Format = "png"
	FormatICO Format = "ico"
)

// Valid returns whether the format is supported.
func (f Format) Valid() bool {
	switch f {
	case FormatPNG, FormatICO:
		return true
	default:
		return false
	}
}

// maxICOSize is the largest frame an ICO directory entry can describe.
const maxICOSize = 256

// Artifact describes a single output file.
type Artifact struct {
	// Name is the file name inside the output directory.
	Name string `yaml:"name"`
	// Sizes holds the square pixel dimensions to render. PNG artifacts have
	// exactly one, ICO artifacts may bundle several.
	Sizes  []int  `yaml:"sizes"`
	Format Format `yaml:"format"`

	// Rel and Media are only used for the HTML link tags.
	Rel   string `yaml:"rel,omitempty"`
	Media string `yaml:"media,omitempty"`
}

// String returns a short description, eg. "apple-icon.png (png 180x180)".
func (a Artifact) String() string {
	dims := make([]string, 0, len(a.Sizes))
	for _, size := range a.Sizes {
		dims = append(dims, fmt.Sprintf("%dx%d", size, size))
	}
	return fmt.Sprintf("%s (%s %s)", a.Name, a.Format, strings.Join(dims, ","))
}

// DefaultArtifacts returns the favicon set of a website: a dark and a light
// 32px browser tab icon, the 180px apple touch icon and a 32px favicon.ico.
func DefaultArtifacts() []Artifact {
	return []Artifact{
		{
			Name:   "icon-dark-32x32.png",
			Sizes:  []int{32},
			Format: FormatPNG,
			Rel:    "icon",
			Media:  "(prefers-color-scheme: dark)",
		},
		{
			Name:   "icon-light-32x32.png",
			Sizes:  []int{32},
			Format: FormatPNG,
			Rel:    "icon",
			Media:  "(prefers-color-scheme: light)",
		},
		{
			Name:   "apple-icon.png",
			Sizes:  []int{180},
			Format: FormatPNG,
			Rel:    "apple-touch-icon",
		},
		{
			Name:   "favicon.ico",
			Sizes:  []int{32},
			Format: FormatICO,
			Rel:    "icon",
		},
	}
}
