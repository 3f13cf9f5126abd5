package favicon

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	ico "github.com/sergeymakinen/go-ico"
)

var pngEncoder = &png.Encoder{CompressionLevel: png.BestCompression}

// encode writes frames to w in the given format.
// PNG takes exactly one frame, ICO bundles all of them.
func encode(w io.Writer, format Format, frames []image.Image) error {
	if len(frames) == 0 {
		return errors.New("nothing to encode")
	}

	switch format {
	case FormatPNG:
		if len(frames) != 1 {
			return fmt.Errorf("png holds one image, got %d", len(frames))
		}
		return pngEncoder.Encode(w, frames[0])
	case FormatICO:
		if len(frames) == 1 {
			return ico.Encode(w, frames[0])
		}
		return ico.EncodeAll(w, frames)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
