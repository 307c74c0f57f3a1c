package goframediff

import (
	"fmt"
	"image/png"
	"math"
	"os"
)

// DiffImage returns the amplified absolute difference of two same-shape
// buffers: clamp(|a-b| * amplify, 0, 255) per sample, cast to 8 bits.
// Identical inputs produce an all-zero buffer at any amplification.
func DiffImage(a, b *PixelBuffer, amplify float64) *PixelBuffer {
	out := NewPixelBuffer(a.Width, a.Height, a.Channels)
	for i := range a.Pix {
		d := math.Abs(float64(a.Pix[i])-float64(b.Pix[i])) * amplify
		if d > 255 {
			d = 255
		}
		out.Pix[i] = uint8(d)
	}
	return out
}

// WritePNG encodes the buffer as a PNG file at path, grayscale for
// single-channel buffers and opaque RGB otherwise.
func (b *PixelBuffer) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := png.Encode(f, b.toImage()); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
