package diag

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSummarizeEmptySamples(t *testing.T) {
	got := Summarize(nil)
	if diff := cmp.Diff(PacingSummary{}, got); diff != "" {
		t.Fatalf("Summarize(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeComputesMeanMinMax(t *testing.T) {
	samples := []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
	}
	got := Summarize(samples)
	want := PacingSummary{
		Mean:   20 * time.Millisecond,
		StdDev: got.StdDev, // computed by gonum/stat; not re-derived here
		Min:    10 * time.Millisecond,
		Max:    30 * time.Millisecond,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteHistogramRejectsEmptySamples(t *testing.T) {
	if err := WriteHistogram(nil, filepath.Join(t.TempDir(), "out.png")); err == nil {
		t.Fatal("expected an error for no samples")
	}
}

func TestWriteHistogramWritesFile(t *testing.T) {
	samples := make([]time.Duration, 50)
	for i := range samples {
		samples[i] = time.Duration(30+i%5) * time.Millisecond
	}
	path := filepath.Join(t.TempDir(), "jitter.png")
	if err := WriteHistogram(samples, path); err != nil {
		t.Fatalf("WriteHistogram: %v", err)
	}
}
