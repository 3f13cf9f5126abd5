package favicon

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	_ "image/png"  // Register PNG decoder.
	"os"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"  // Register BMP decoder.
	_ "golang.org/x/image/webp" // Register WebP decoder.

	"github.com/avantgarde/favicongen/base/log"
	"github.com/avantgarde/favicongen/base/utils"
)

// LoadSource decodes the image at path. The format is detected from the
// file contents; ICO files are decoded by their dedicated decoder and yield
// their largest frame.
func LoadSource(path string) (image.Image, error) {
	if !utils.IsRegularFile(path) {
		return nil, fmt.Errorf("%w at %s", ErrSourceNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ProcessingError{Stage: StageDecode, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	var (
		img    image.Image
		format string
	)
	if strings.EqualFold(filepath.Ext(path), ".ico") {
		// image.Decode sniffs the header before handing over the stream,
		// which trips up some ICO files.
		img, err = ico.Decode(f)
		format = "ico"
	} else {
		img, format, err = image.Decode(f)
	}
	if err != nil {
		return nil, &ProcessingError{Stage: StageDecode, Err: err}
	}

	bounds := img.Bounds()
	log.Debugf("favicon: decoded source %s (%s %dx%d)", path, format, bounds.Dx(), bounds.Dy())
	if bounds.Dx() != bounds.Dy() {
		log.Warningf("favicon: source %s is not square (%dx%d)", path, bounds.Dx(), bounds.Dy())
	}

	return img, nil
}
