// Package goframediff quantifies visual fidelity loss between rendered
// frame sequences. It pairs reference and comparison screenshots by frame
// number, computes MSE, PSNR and SSIM per frame, and aggregates the scores
// into a report.
package goframediff

import "math"

// peak is the maximum sample value for 8-bit images. All metrics use a
// fixed data range of 255.
const peak = 255.0

// PSNRInfSubstitute stands in for an infinite PSNR when averaging across
// frames so the aggregate stays finite. Downstream tooling depends on this
// exact value; do not change it.
const PSNRInfSubstitute = 100.0

// MSE returns the mean squared error between two same-shape buffers,
// accumulated in float64. It is 0 only when the buffers are bit-identical.
func MSE(a, b *PixelBuffer) float64 {
	var sum float64
	for i := range a.Pix {
		d := float64(a.Pix[i]) - float64(b.Pix[i])
		sum += d * d
	}
	return sum / float64(len(a.Pix))
}

// PSNR returns the peak signal-to-noise ratio between two same-shape
// buffers, in decibels. Identical buffers yield +Inf.
func PSNR(a, b *PixelBuffer) float64 {
	mse := MSE(a, b)
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(peak*peak/mse)
}
