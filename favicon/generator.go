package favicon

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/avantgarde/favicongen/base/log"
	"github.com/avantgarde/favicongen/base/utils"
	"github.com/avantgarde/favicongen/base/utils/renameio"
)

// Result describes a written artifact.
type Result struct {
	Artifact Artifact
	Path     string
	Bytes    int
}

// Generator writes the artifacts of a manifest.
type Generator struct {
	manifest *Manifest

	// OnSaved, if set, is called after each artifact has been written.
	OnSaved func(Result)
}

// NewGenerator returns a generator for the given manifest.
// A nil manifest means DefaultManifest.
func NewGenerator(manifest *Manifest) *Generator {
	if manifest == nil {
		manifest = DefaultManifest()
	}
	return &Generator{manifest: manifest}
}

// Manifest returns the manifest the generator works on.
func (g *Generator) Manifest() *Manifest {
	return g.manifest
}

// Generate decodes the image at sourcePath and writes every artifact into
// outDir, in manifest order. The output directory must exist.
//
// If the source does not exist, ErrSourceNotFound is returned and nothing is
// written. Any other failure is returned as a *ProcessingError and stops the
// run: artifacts written so far are kept and the remaining ones are skipped.
// The returned results always list the artifacts written before returning.
func (g *Generator) Generate(sourcePath, outDir string) ([]Result, error) {
	if err := g.manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	src, err := LoadSource(sourcePath)
	if err != nil {
		return nil, err
	}
	src = applyFit(src, g.manifest.Fit)

	results := make([]Result, 0, len(g.manifest.Artifacts))
	// Artifacts of equal size share one resize of the source.
	resized := make(map[int]image.Image)

	for _, artifact := range g.manifest.Artifacts {
		frames := make([]image.Image, 0, len(artifact.Sizes))
		for _, size := range artifact.Sizes {
			frame, ok := resized[size]
			if ok {
				log.Tracef("favicon: reusing %dx%d resize for %s", size, size, artifact.Name)
			} else {
				frame, err = Resize(src, size, g.manifest.Filter)
				if err != nil {
					return results, &ProcessingError{Stage: StageResize, Artifact: artifact.Name, Err: err}
				}
				resized[size] = frame
			}
			frames = append(frames, frame)
		}

		buf := new(bytes.Buffer)
		if err := encode(buf, artifact.Format, frames); err != nil {
			return results, &ProcessingError{Stage: StageEncode, Artifact: artifact.Name, Err: err}
		}

		path := filepath.Join(outDir, artifact.Name)
		if err := renameio.WriteFile(path, buf.Bytes(), utils.PublicReadPermission); err != nil {
			return results, &ProcessingError{Stage: StageWrite, Artifact: artifact.Name, Err: err}
		}

		result := Result{
			Artifact: artifact,
			Path:     path,
			Bytes:    buf.Len(),
		}
		results = append(results, result)
		log.Debugf("favicon: wrote %s to %s", artifact, path)
		if g.OnSaved != nil {
			g.OnSaved(result)
		}
	}

	return results, nil
}
