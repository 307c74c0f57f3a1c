package goframediff

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// Result holds the fidelity metrics for one compared frame. PSNR may be
// +Inf when the pair is bit-identical; the per-frame record keeps the
// infinity, only aggregation substitutes it.
type Result struct {
	Frame int
	MSE   float64
	PSNR  float64
	SSIM  float64
}

// Summary aggregates per-frame results. AvgPSNR substitutes
// PSNRInfSubstitute for infinite per-frame values before taking the mean.
type Summary struct {
	Count   int
	AvgMSE  float64
	AvgPSNR float64
	AvgSSIM float64
}

// Summarize computes arithmetic means across results. An empty input yields
// a zero Summary.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	mse := make([]float64, len(results))
	psnr := make([]float64, len(results))
	ssim := make([]float64, len(results))
	for i, r := range results {
		mse[i] = r.MSE
		psnr[i] = finitePSNR(r.PSNR)
		ssim[i] = r.SSIM
	}

	return Summary{
		Count:   len(results),
		AvgMSE:  stat.Mean(mse, nil),
		AvgPSNR: stat.Mean(psnr, nil),
		AvgSSIM: stat.Mean(ssim, nil),
	}
}

func finitePSNR(v float64) float64 {
	if math.IsInf(v, 1) {
		return PSNRInfSubstitute
	}
	return v
}

// PSNRQuality maps an average PSNR in dB to a qualitative assessment.
// Thresholds are checked in descending order with inclusive lower bounds.
func PSNRQuality(avg float64) string {
	switch {
	case avg >= 40:
		return "Excellent - virtually indistinguishable"
	case avg >= 30:
		return "Good - minor differences, acceptable quality"
	case avg >= 20:
		return "Fair - noticeable differences"
	default:
		return "Poor - significant visual degradation"
	}
}

// SSIMQuality maps an average SSIM to a qualitative assessment.
func SSIMQuality(avg float64) string {
	switch {
	case avg >= 0.99:
		return "Excellent structural similarity"
	case avg >= 0.95:
		return "Good structural similarity"
	case avg >= 0.90:
		return "Acceptable structural similarity"
	default:
		return "Poor structural similarity"
	}
}

// WriteCSV serializes results to path with the header frame,mse,psnr,ssim,
// one row per result in input order, and a trailing AVERAGE row when at
// least one frame was compared. The file is written even for an empty
// result set (header only). Infinite per-frame PSNR values are written as
// the literal "inf"; the AVERAGE row always carries the substituted finite
// mean.
func WriteCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	w := csv.NewWriter(f)
	records := [][]string{{"frame", "mse", "psnr", "ssim"}}
	for _, r := range results {
		records = append(records, []string{
			strconv.Itoa(r.Frame),
			formatFloat(r.MSE),
			formatFloat(r.PSNR),
			formatFloat(r.SSIM),
		})
	}
	if len(results) > 0 {
		s := Summarize(results)
		records = append(records, []string{
			"AVERAGE",
			formatFloat(s.AvgMSE),
			formatFloat(s.AvgPSNR),
			formatFloat(s.AvgSSIM),
		})
	}

	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}

// formatFloat renders values the shortest way that round-trips, spelling
// positive infinity as "inf" per the report convention.
func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
