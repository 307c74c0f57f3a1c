package goframediff

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// PrintStats writes a distribution summary of every metric to w: min, max,
// average, median and standard deviation, followed by pairwise absolute
// Pearson correlations between the metrics. Infinite PSNR values are made
// finite with PSNRInfSubstitute first so the figures stay meaningful.
//
// This goes to stderr in the CLI, keeping stdout for the tabular frame
// output.
func PrintStats(w io.Writer, results []Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No scores to report")
		return
	}

	scores := map[string][]float64{
		"mse":  make([]float64, len(results)),
		"psnr": make([]float64, len(results)),
		"ssim": make([]float64, len(results)),
	}
	for i, r := range results {
		scores["mse"][i] = r.MSE
		scores["psnr"][i] = finitePSNR(r.PSNR)
		scores["ssim"][i] = r.SSIM
	}

	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Metric summary")
	fmt.Fprintln(w, "==============")

	for _, name := range names {
		printMetricStats(w, name, scores[name])
	}

	printCorrelations(w, scores, names)
}

// printMetricStats prints the distribution of a single metric.
func printMetricStats(w io.Writer, name string, values []float64) {
	n := len(values)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2.0
	}

	avg := stat.Mean(values, nil)

	// Population standard deviation.
	var variance float64
	for _, v := range values {
		d := v - avg
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(n))

	fmt.Fprintln(w)
	fmt.Fprintln(w, name)
	fmt.Fprintln(w, strings.Repeat("-", len(name)))

	fmt.Fprintf(w, "  min     : %.6f\n", sorted[0])
	fmt.Fprintf(w, "  max     : %.6f\n", sorted[n-1])
	fmt.Fprintf(w, "  average : %.6f\n", avg)
	fmt.Fprintf(w, "  median  : %.6f\n", median)
	fmt.Fprintf(w, "  stddev  : %.6f\n", stddev)
}

// printCorrelations prints pairwise absolute Pearson correlations between
// metrics. With a single frame every correlation is degenerate, so the
// block is skipped.
func printCorrelations(w io.Writer, scores map[string][]float64, names []string) {
	if len(scores[names[0]]) < 2 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Metric correlations")
	fmt.Fprintln(w, "===================")

	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := names[i], names[j]
			r := stat.Correlation(scores[a], scores[b], nil)
			if math.IsNaN(r) {
				// Constant series have no defined correlation.
				r = 0
			}
			fmt.Fprintf(w, "  %-4s <-> %-4s : %.6f\n", a, b, math.Abs(r))
		}
	}
}
