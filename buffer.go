package goframediff

import (
	"fmt"
	"image"
)

// PixelBuffer is a dense row-major array of 8-bit samples with shape
// height x width x channels. Channels is 1 for grayscale images and 3 for
// RGB; alpha is dropped on load since rendered screenshots are opaque.
type PixelBuffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewPixelBuffer allocates a zeroed buffer of the given shape.
func NewPixelBuffer(width, height, channels int) *PixelBuffer {
	return &PixelBuffer{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// SameShape reports whether two buffers have identical dimensions and
// channel counts. Metric functions require it; the pipeline skips pairs
// where it does not hold.
func (b *PixelBuffer) SameShape(o *PixelBuffer) bool {
	return b.Width == o.Width && b.Height == o.Height &&
		b.Channels == o.Channels
}

// ShapeString formats the buffer shape for diagnostics, e.g. "1920x1080x3".
func (b *PixelBuffer) ShapeString() string {
	return fmt.Sprintf("%dx%dx%d", b.Width, b.Height, b.Channels)
}

// At returns the sample at pixel (x, y), channel c.
func (b *PixelBuffer) At(x, y, c int) uint8 {
	return b.Pix[(y*b.Width+x)*b.Channels+c]
}

// FromImage converts a decoded image into a PixelBuffer. Grayscale images
// keep a single channel; every other color model is flattened to 3-channel
// RGB.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		buf := NewPixelBuffer(w, h, 1)
		for y := 0; y < h; y++ {
			src := gray.Pix[y*gray.Stride : y*gray.Stride+w]
			copy(buf.Pix[y*w:(y+1)*w], src)
		}
		return buf
	}

	buf := NewPixelBuffer(w, h, 3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			buf.Pix[i] = uint8(r >> 8)
			buf.Pix[i+1] = uint8(g >> 8)
			buf.Pix[i+2] = uint8(bl >> 8)
			i += 3
		}
	}
	return buf
}

// toImage converts the buffer back into a stdlib image for encoding.
func (b *PixelBuffer) toImage() image.Image {
	if b.Channels == 1 {
		img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
		for y := 0; y < b.Height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+b.Width],
				b.Pix[y*b.Width:(y+1)*b.Width])
		}
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	i := 0
	for p := 0; p < len(b.Pix); p += b.Channels {
		img.Pix[i] = b.Pix[p]
		img.Pix[i+1] = b.Pix[p+1]
		img.Pix[i+2] = b.Pix[p+2]
		img.Pix[i+3] = 0xff
		i += 4
	}
	return img
}
