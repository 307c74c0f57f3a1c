package goframediff_test

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/GreatValueCreamSoda/goframediff"
)

func Test_Summarize_InfPSNRSubstitution(t *testing.T) {
	results := []goframediff.Result{
		{Frame: 0, MSE: 0, PSNR: math.Inf(1), SSIM: 1.0},
		{Frame: 1, MSE: 50, PSNR: 20.0, SSIM: 0.9},
	}

	s := goframediff.Summarize(results)
	if s.Count != 2 {
		t.Fatalf("Count = %d, want 2", s.Count)
	}
	// (100.0 + 20.0) / 2, exactly.
	if s.AvgPSNR != 60.0 {
		t.Errorf("AvgPSNR = %v, want exactly 60.0", s.AvgPSNR)
	}
	if s.AvgMSE != 25.0 {
		t.Errorf("AvgMSE = %v, want 25.0", s.AvgMSE)
	}
	if math.Abs(s.AvgSSIM-0.95) > 1e-12 {
		t.Errorf("AvgSSIM = %v, want 0.95", s.AvgSSIM)
	}
}

func Test_Summarize_Empty(t *testing.T) {
	s := goframediff.Summarize(nil)
	if s.Count != 0 || s.AvgMSE != 0 || s.AvgPSNR != 0 || s.AvgSSIM != 0 {
		t.Errorf("empty summary not zero: %+v", s)
	}
}

func Test_PSNRQuality_Buckets(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{45, "Excellent - virtually indistinguishable"},
		{40, "Excellent - virtually indistinguishable"},
		{39.99, "Good - minor differences, acceptable quality"},
		{30, "Good - minor differences, acceptable quality"},
		{29.99, "Fair - noticeable differences"},
		{20, "Fair - noticeable differences"},
		{19.99, "Poor - significant visual degradation"},
	}
	for _, c := range cases {
		if got := goframediff.PSNRQuality(c.avg); got != c.want {
			t.Errorf("PSNRQuality(%v) = %q, want %q", c.avg, got, c.want)
		}
	}
}

func Test_SSIMQuality_Buckets(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{1.0, "Excellent structural similarity"},
		{0.99, "Excellent structural similarity"},
		{0.98, "Good structural similarity"},
		{0.95, "Good structural similarity"},
		{0.94, "Acceptable structural similarity"},
		{0.90, "Acceptable structural similarity"},
		{0.89, "Poor structural similarity"},
	}
	for _, c := range cases {
		if got := goframediff.SSIMQuality(c.avg); got != c.want {
			t.Errorf("SSIMQuality(%v) = %q, want %q", c.avg, got, c.want)
		}
	}
}

func Test_WriteCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := goframediff.WriteCSV(path, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "frame,mse,psnr,ssim\n" {
		t.Errorf("empty CSV = %q, want header only", string(data))
	}
}

func Test_WriteCSV_RowsAndAverage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	results := []goframediff.Result{
		{Frame: 0, MSE: 0, PSNR: math.Inf(1), SSIM: 1.0},
	}
	if err := goframediff.WriteCSV(path, results); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + frame + AVERAGE", len(rows))
	}

	frame := rows[1]
	if frame[0] != "0" || frame[1] != "0" || frame[2] != "inf" || frame[3] != "1" {
		t.Errorf("frame row = %v", frame)
	}

	// The AVERAGE row carries the substituted finite PSNR mean.
	avg := rows[2]
	if avg[0] != "AVERAGE" || avg[1] != "0" || avg[2] != "100" || avg[3] != "1" {
		t.Errorf("average row = %v", avg)
	}
}
