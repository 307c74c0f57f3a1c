package goframediff

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// SSIM constants matching the common implementation defaults: a 7x7 uniform
// window with stabilizers K1=0.01 and K2=0.03 over a data range of 255.
const (
	ssimWindow = 7
	ssimC1     = (0.01 * peak) * (0.01 * peak)
	ssimC2     = (0.03 * peak) * (0.03 * peak)
)

// SSIM returns the mean structural similarity index between two same-shape
// buffers. Multi-channel buffers are scored per channel along the last axis
// and the channel scores averaged. The result is 1.0 for identical inputs
// and typically falls within [-1, 1].
//
// For images smaller than the default window the window shrinks to the
// largest odd size that fits, down to a single sample.
func SSIM(a, b *PixelBuffer) (float64, error) {
	if !a.SameShape(b) {
		return 0, fmt.Errorf("ssim: shape mismatch: %s vs %s",
			a.ShapeString(), b.ShapeString())
	}
	if a.Width < 1 || a.Height < 1 {
		return 0, fmt.Errorf("ssim: empty image %s", a.ShapeString())
	}

	win := ssimWindow
	if m := min(a.Width, a.Height); m < win {
		win = m
		if win%2 == 0 {
			win--
		}
	}

	var total float64
	for c := 0; c < a.Channels; c++ {
		total += ssimChannel(a, b, c, win)
	}
	return total / float64(a.Channels), nil
}

// ssimChannel computes SSIM for one channel with a uniform win x win window.
// Local statistics use sample (n-1) normalization, and the score is the mean
// of the local SSIM map over centers whose window lies fully inside the
// image. A single-sample window has zero variance by definition.
func ssimChannel(a, b *PixelBuffer, c, win int) float64 {
	pad := win / 2
	np := float64(win * win)
	covNorm := 0.0
	if np > 1 {
		covNorm = np / (np - 1)
	}

	scores := make([]float64, 0, (a.Height-2*pad)*(a.Width-2*pad))
	for cy := pad; cy < a.Height-pad; cy++ {
		for cx := pad; cx < a.Width-pad; cx++ {
			var sx, sy, sxx, syy, sxy float64
			for wy := cy - pad; wy <= cy+pad; wy++ {
				for wx := cx - pad; wx <= cx+pad; wx++ {
					x := float64(a.At(wx, wy, c))
					y := float64(b.At(wx, wy, c))
					sx += x
					sy += y
					sxx += x * x
					syy += y * y
					sxy += x * y
				}
			}
			ux := sx / np
			uy := sy / np
			vx := covNorm * (sxx/np - ux*ux)
			vy := covNorm * (syy/np - uy*uy)
			vxy := covNorm * (sxy/np - ux*uy)

			s := ((2*ux*uy + ssimC1) * (2*vxy + ssimC2)) /
				((ux*ux + uy*uy + ssimC1) * (vx + vy + ssimC2))
			scores = append(scores, s)
		}
	}
	return stat.Mean(scores, nil)
}
