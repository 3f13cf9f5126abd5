package favicon

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Manifest is the ordered set of artifacts a run produces, together with the
// resampling settings shared by all of them.
type Manifest struct {
	Filter    Filter     `yaml:"filter,omitempty"`
	Fit       Fit        `yaml:"fit,omitempty"`
	Artifacts []Artifact `yaml:"artifacts"`
}

// DefaultManifest returns the default favicon set, resized with Lanczos and
// without squaring the source first.
func DefaultManifest() *Manifest {
	return &Manifest{
		Filter:    FilterLanczos,
		Fit:       FitStretch,
		Artifacts: DefaultArtifacts(),
	}
}

// LoadManifest reads a YAML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses and validates a YAML manifest.
// An omitted filter or fit falls back to the defaults.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document leaves m empty and fails validation below.
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if m.Filter == "" {
		m.Filter = FilterLanczos
	}
	if m.Fit == "" {
		m.Fit = FitStretch
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the manifest and reports every problem found at once.
func (m *Manifest) Validate() error {
	errs := new(multierror.Error)

	if !m.Filter.Valid() {
		errs.Errors = append(errs.Errors, fmt.Errorf("unknown filter %q", m.Filter))
	}
	if !m.Fit.Valid() {
		errs.Errors = append(errs.Errors, fmt.Errorf("unknown fit %q", m.Fit))
	}
	if len(m.Artifacts) == 0 {
		errs.Errors = append(errs.Errors, errors.New("no artifacts defined"))
	}

	names := make(map[string]struct{}, len(m.Artifacts))
	for idx, artifact := range m.Artifacts {
		for _, err := range validateArtifact(artifact) {
			errs.Errors = append(errs.Errors, fmt.Errorf("artifact %d (%q): %w", idx, artifact.Name, err))
		}

		if _, ok := names[artifact.Name]; ok && artifact.Name != "" {
			errs.Errors = append(errs.Errors, fmt.Errorf("artifact %d: duplicate name %q", idx, artifact.Name))
		}
		names[artifact.Name] = struct{}{}
	}

	return errs.ErrorOrNil()
}

func validateArtifact(artifact Artifact) (errs []error) {
	switch {
	case artifact.Name == "":
		errs = append(errs, errors.New("missing name"))
	case artifact.Name == "." || artifact.Name == "..",
		strings.ContainsAny(artifact.Name, `/\`),
		filepath.Base(artifact.Name) != artifact.Name:
		errs = append(errs, errors.New("name must be a plain file name"))
	}

	if !artifact.Format.Valid() {
		errs = append(errs, fmt.Errorf("unknown format %q", artifact.Format))
	}

	switch {
	case len(artifact.Sizes) == 0:
		errs = append(errs, errors.New("no sizes defined"))
	case artifact.Format == FormatPNG && len(artifact.Sizes) > 1:
		errs = append(errs, errors.New("png artifacts hold exactly one size"))
	}

	seen := make(map[int]struct{}, len(artifact.Sizes))
	for _, size := range artifact.Sizes {
		switch {
		case size <= 0:
			errs = append(errs, fmt.Errorf("invalid size %d", size))
		case artifact.Format == FormatICO && size > maxICOSize:
			errs = append(errs, fmt.Errorf("ico frames are limited to %dpx, got %d", maxICOSize, size))
		}

		if _, ok := seen[size]; ok {
			errs = append(errs, fmt.Errorf("duplicate size %d", size))
		}
		seen[size] = struct{}{}
	}

	return errs
}
