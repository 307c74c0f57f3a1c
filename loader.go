package goframediff

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/lmittmann/ppm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func init() {
	// Renderer screenshots are binary (P6) PPM, which the stdlib does not
	// decode on its own.
	image.RegisterFormat("ppm", "P6", ppm.Decode, ppm.DecodeConfig)
}

// LoadImage reads a raster image from path and converts it to a PixelBuffer.
// Any registered format decodes; the file handle is closed before the
// function returns. Open and decode failures are returned wrapped and are
// treated as fatal by the pipeline.
func LoadImage(path string) (*PixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return FromImage(img), nil
}
