// Command goframediff compares two sets of rendered screenshots frame by
// frame and reports MSE, PSNR and SSIM per frame plus aggregates.
//
// Screenshots are matched by filename convention: every file named
// <prefix>...frame<N>.ppm under the reference prefix is paired with the
// file carrying the same frame number under the comparison prefix.
//
// Usage:
//
//	goframediff -r baseline_fp32 -c position_fp16
//	goframediff -r baseline_fp32 -c position_fp16 -o results.csv --diff
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"github.com/GreatValueCreamSoda/goframediff"
)

func main() {
	cfg, level := parseFlags()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))

	if err := run(cfg, logger); err != nil {
		logger.Error("comparison failed", "err", err)
		os.Exit(1)
	}
}

// parseFlags builds the immutable run configuration from the command line.
// Invalid or missing required flags print usage and exit.
func parseFlags() (Config, slog.Level) {
	var cfg Config
	var levelStr string

	pflag.StringVarP(&cfg.RefPrefix, "reference", "r", "",
		"reference image prefix (e.g. baseline_fp32)")
	pflag.StringVarP(&cfg.CmpPrefix, "compare", "c", "",
		"comparison image prefix (e.g. position_fp16)")
	pflag.StringVarP(&cfg.Directory, "directory", "d", "screenshots",
		"screenshots directory")
	pflag.StringVarP(&cfg.OutputPath, "output", "o", "comparison_results.csv",
		"output CSV filename")
	pflag.BoolVar(&cfg.GenerateDiff, "diff", false,
		"generate amplified difference images")
	pflag.Float64Var(&cfg.DiffAmplify, "diff-amplify", 10.0,
		"amplification factor for difference images")
	pflag.BoolVar(&cfg.ShowStats, "stats", false,
		"print extended per-metric statistics to stderr")
	pflag.StringVar(&levelStr, "log-level", "info",
		"log level: error, warn, info or debug")
	pflag.Parse()

	level, err := parseLogLevel(levelStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		pflag.Usage()
		os.Exit(1)
	}
	if cfg.RefPrefix == "" || cfg.CmpPrefix == "" {
		fmt.Fprintln(os.Stderr, "both --reference and --compare are required")
		pflag.Usage()
		os.Exit(1)
	}
	return cfg, level
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "error":
		return slog.LevelError, nil
	case "warn":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("invalid log level: %q", s)
	}
}

// run executes the whole pipeline: discovery, per-frame comparison,
// console summary and CSV report. Per-frame shape mismatches are skipped
// with a warning; everything else that fails aborts the run.
func run(cfg Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	pairs, err := goframediff.FindMatchingFrames(
		cfg.Directory, cfg.RefPrefix, cfg.CmpPrefix)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no matching frames found for prefixes %q and %q",
			cfg.RefPrefix, cfg.CmpPrefix)
	}

	fmt.Printf("Found %d matching frame pairs\n", len(pairs))
	fmt.Printf("Reference: %s\n", cfg.RefPrefix)
	fmt.Printf("Compare:   %s\n", cfg.CmpPrefix)
	fmt.Println(strings.Repeat("-", 70))

	diffDir := filepath.Join(cfg.Directory, "diff")
	if cfg.GenerateDiff {
		if err := os.MkdirAll(diffDir, 0o755); err != nil {
			return fmt.Errorf("creating diff directory: %w", err)
		}
	}

	results := make([]goframediff.Result, 0, len(pairs))
	for _, pair := range pairs {
		logger.Debug("comparing frame",
			"frame", pair.Frame, "ref", pair.RefName, "cmp", pair.CmpName)

		refImg, err := goframediff.LoadImage(
			filepath.Join(cfg.Directory, pair.RefName))
		if err != nil {
			return err
		}
		cmpImg, err := goframediff.LoadImage(
			filepath.Join(cfg.Directory, pair.CmpName))
		if err != nil {
			return err
		}

		if !refImg.SameShape(cmpImg) {
			logger.Warn("dimension mismatch, skipping frame",
				"frame", pair.Frame,
				"reference", refImg.ShapeString(),
				"comparison", cmpImg.ShapeString())
			continue
		}

		mse := goframediff.MSE(refImg, cmpImg)
		psnr := goframediff.PSNR(refImg, cmpImg)
		ssim, err := goframediff.SSIM(refImg, cmpImg)
		if err != nil {
			return fmt.Errorf("frame %d: %w", pair.Frame, err)
		}

		results = append(results, goframediff.Result{
			Frame: pair.Frame, MSE: mse, PSNR: psnr, SSIM: ssim})

		fmt.Printf("Frame %5d: MSE=%10.4f  PSNR=%8s dB  SSIM=%.6f\n",
			pair.Frame, mse, formatPSNR(psnr), ssim)

		if cfg.GenerateDiff {
			diff := goframediff.DiffImage(refImg, cmpImg, cfg.DiffAmplify)
			diffPath := filepath.Join(diffDir,
				fmt.Sprintf("diff_frame%d.png", pair.Frame))
			if err := diff.WritePNG(diffPath); err != nil {
				return err
			}
		}
	}

	if len(results) > 0 {
		summary := goframediff.Summarize(results)
		fmt.Println(strings.Repeat("-", 70))
		fmt.Printf("AVERAGE:       MSE=%10.4f  PSNR=%8.2f dB  SSIM=%.6f\n",
			summary.AvgMSE, summary.AvgPSNR, summary.AvgSSIM)
		fmt.Println()
		fmt.Println("Quality Assessment:")
		fmt.Printf("  PSNR %.1f dB: %s\n",
			summary.AvgPSNR, goframediff.PSNRQuality(summary.AvgPSNR))
		fmt.Printf("  SSIM %.4f: %s\n",
			summary.AvgSSIM, goframediff.SSIMQuality(summary.AvgSSIM))
	}

	if err := goframediff.WriteCSV(cfg.OutputPath, results); err != nil {
		return err
	}
	fmt.Printf("\nResults saved to: %s\n", cfg.OutputPath)

	if cfg.GenerateDiff {
		fmt.Printf("Difference images saved to: %s\n", diffDir)
	}

	if cfg.ShowStats {
		goframediff.PrintStats(os.Stderr, results)
	}
	return nil
}

// formatPSNR renders a PSNR value for the per-frame line, spelling infinity
// as "inf" like the CSV report does.
func formatPSNR(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", v)
}
