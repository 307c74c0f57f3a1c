package goframediff_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/GreatValueCreamSoda/goframediff"
)

func Test_DiffImage_IdenticalInputs(t *testing.T) {
	a := grayBuffer(4, 4, 123)
	b := grayBuffer(4, 4, 123)

	for _, amplify := range []float64{1, 10, 1000} {
		diff := goframediff.DiffImage(a, b, amplify)
		for i, v := range diff.Pix {
			if v != 0 {
				t.Fatalf("amplify %v: Pix[%d] = %d, want 0", amplify, i, v)
			}
		}
	}
}

func Test_DiffImage_AmplifyAndClamp(t *testing.T) {
	a := grayBuffer(2, 2, 100)
	b := grayBuffer(2, 2, 90)

	diff := goframediff.DiffImage(a, b, 10)
	if diff.Pix[0] != 100 {
		t.Errorf("|100-90|*10 = %d, want 100", diff.Pix[0])
	}

	c := grayBuffer(2, 2, 60)
	diff = goframediff.DiffImage(a, c, 10)
	if diff.Pix[0] != 255 {
		t.Errorf("|100-60|*10 clamped = %d, want 255", diff.Pix[0])
	}

	// Absolute difference is symmetric.
	rev := goframediff.DiffImage(c, a, 10)
	if rev.Pix[0] != diff.Pix[0] {
		t.Errorf("diff not symmetric: %d vs %d", rev.Pix[0], diff.Pix[0])
	}
}

func Test_WritePNG_RoundTrip(t *testing.T) {
	buf := goframediff.NewPixelBuffer(3, 2, 3)
	for i := range buf.Pix {
		buf.Pix[i] = uint8(i * 11)
	}

	path := filepath.Join(t.TempDir(), "diff_frame0.png")
	if err := buf.WritePNG(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	base := (1*3 + 1) * 3
	if uint8(r>>8) != buf.Pix[base] || uint8(g>>8) != buf.Pix[base+1] ||
		uint8(b>>8) != buf.Pix[base+2] {
		t.Errorf("pixel (1,1) mismatch after round trip")
	}
}

func Test_WritePNG_Gray(t *testing.T) {
	buf := grayBuffer(2, 2, 200)
	path := filepath.Join(t.TempDir(), "gray.png")
	if err := buf.WritePNG(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := img.(*image.Gray); !ok {
		t.Errorf("expected grayscale PNG, got %T", img)
	}
}
