package capture

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"

	// Extra formats beyond what imaging registers through the standard library.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// StdinPath makes FileSource read the image from standard input.
const StdinPath = "-"

// FileSource decodes user-supplied image files, applying EXIF orientation.
type FileSource struct {
	Stdin io.Reader // read for StdinPath; defaults to os.Stdin
}

// Open decodes the image at path.
func (f FileSource) Open(path string) (image.Image, error) {
	if path == StdinPath {
		r := f.Stdin
		if r == nil {
			r = os.Stdin
		}
		return Decode(r)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", path, err)
	}
	return img, nil
}

// Decode reads an already opened image stream.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("capture: decode: %w", err)
	}
	return img, nil
}
