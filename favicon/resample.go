package favicon

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Filter is a resampling filter used to scale the source.
type Filter string

// Supported resampling filters.
const (
	FilterLanczos    Filter = "lanczos"
	FilterCatmullRom Filter = "catmullrom"
	FilterBilinear   Filter = "bilinear"
)

// Valid returns whether the filter is supported.
func (f Filter) Valid() bool {
	switch f {
	case FilterLanczos, FilterCatmullRom, FilterBilinear:
		return true
	default:
		return false
	}
}

// Fit defines how a non-square source is made square.
type Fit string

// Supported fit modes.
const (
	// FitStretch scales the source to the target square, ignoring its
	// aspect ratio.
	FitStretch Fit = "stretch"
	// FitPad centers the source on a transparent square canvas first.
	FitPad Fit = "pad"
)

// Valid returns whether the fit mode is supported.
func (f Fit) Valid() bool {
	switch f {
	case FitStretch, FitPad:
		return true
	default:
		return false
	}
}

// Resize scales img to a size x size square with the given filter.
func Resize(img image.Image, size int, filter Filter) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid target size %d", size)
	}
	if img.Bounds().Empty() {
		return nil, errors.New("source image is empty")
	}

	switch filter {
	case FilterLanczos:
		return resize.Resize(uint(size), uint(size), img, resize.Lanczos3), nil
	case FilterCatmullRom:
		return scaleWith(draw.CatmullRom, img, size), nil
	case FilterBilinear:
		return scaleWith(draw.BiLinear, img, size), nil
	default:
		return nil, fmt.Errorf("unknown filter %q", filter)
	}
}

func scaleWith(scaler draw.Scaler, img image.Image, size int) image.Image {
	rectangle := image.Rect(0, 0, size, size)
	scaledImage := image.NewRGBA(rectangle)
	scaler.Scale(scaledImage, rectangle, img, img.Bounds(), draw.Src, nil)
	return scaledImage
}

// applyFit returns the image that all artifacts are resized from.
func applyFit(img image.Image, fit Fit) image.Image {
	if fit != FitPad {
		return img
	}

	bounds := img.Bounds()
	if bounds.Dx() == bounds.Dy() {
		return img
	}

	side := max(bounds.Dx(), bounds.Dy())
	dc := gg.NewContext(side, side)
	dc.DrawImageAnchored(img, side/2, side/2, 0.5, 0.5)
	return dc.Image()
}
