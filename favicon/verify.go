package favicon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-multierror"
	ico "github.com/sergeymakinen/go-ico"
)

// Verify decodes every artifact of the manifest from outDir and checks that
// it holds exactly its configured dimensions. PNG artifacts of equal size
// must also be pixel-identical, as they are rendered from the same resize.
// All problems are reported together.
func Verify(outDir string, manifest *Manifest) error {
	errs := new(multierror.Error)
	rendered := make(map[int]Artifact)
	renderedFrames := make(map[int]image.Image)

	for _, artifact := range manifest.Artifacts {
		frames, err := decodeArtifact(filepath.Join(outDir, artifact.Name), artifact.Format)
		if err != nil {
			errs.Errors = append(errs.Errors, fmt.Errorf("%s: %w", artifact.Name, err))
			continue
		}

		if err := checkSizes(artifact, frames); err != nil {
			errs.Errors = append(errs.Errors, fmt.Errorf("%s: %w", artifact.Name, err))
			continue
		}

		if artifact.Format != FormatPNG {
			continue
		}
		size := artifact.Sizes[0]
		if other, ok := rendered[size]; ok {
			if !samePixels(renderedFrames[size], frames[0]) {
				errs.Errors = append(errs.Errors, fmt.Errorf("%s: pixels differ from %s", artifact.Name, other.Name))
			}
			continue
		}
		rendered[size] = artifact
		renderedFrames[size] = frames[0]
	}

	return errs.ErrorOrNil()
}

func decodeArtifact(path string, format Format) ([]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	switch format {
	case FormatPNG:
		img, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode PNG: %w", err)
		}
		return []image.Image{img}, nil
	case FormatICO:
		frames, err := ico.DecodeAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode ICO: %w", err)
		}
		return frames, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func checkSizes(artifact Artifact, frames []image.Image) error {
	got := make([]int, 0, len(frames))
	for _, frame := range frames {
		bounds := frame.Bounds()
		if bounds.Dx() != bounds.Dy() {
			return fmt.Errorf("frame is not square (%dx%d)", bounds.Dx(), bounds.Dy())
		}
		got = append(got, bounds.Dx())
	}

	want := slices.Clone(artifact.Sizes)
	slices.Sort(want)
	slices.Sort(got)
	if !slices.Equal(want, got) {
		return fmt.Errorf("expected sizes %v, got %v", want, got)
	}
	return nil
}

func samePixels(a, b image.Image) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Size() != bb.Size() {
		return false
	}

	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ac := color.NRGBA64Model.Convert(a.At(ab.Min.X+x, ab.Min.Y+y))
			bc := color.NRGBA64Model.Convert(b.At(bb.Min.X+x, bb.Min.Y+y))
			if ac != bc {
				return false
			}
		}
	}
	return true
}
