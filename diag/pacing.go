/*
NAME
  pacing.go

DESCRIPTION
  pacing.go implements Summarize and WriteHistogram, summarizing the
  PacingClock's observed frame intervals over a playback session and
  rendering a jitter histogram, grounded on cmd/rv/probe.go's use of
  gonum.org/v1/gonum/stat for scalar statistics, extended to
  gonum.org/v1/plot for the histogram image.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package diag

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PacingSummary reports scalar statistics over a set of observed
// frame intervals.
type PacingSummary struct {
	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Summarize computes mean, standard deviation, and extrema of
// samples, as collected by player.PacingClock.
func Summarize(samples []time.Duration) PacingSummary {
	if len(samples) == 0 {
		return PacingSummary{}
	}
	ms := make([]float64, len(samples))
	min, max := samples[0], samples[0]
	for i, d := range samples {
		ms[i] = float64(d.Milliseconds())
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	mean, std := stat.MeanStdDev(ms, nil)
	return PacingSummary{
		Mean:   time.Duration(mean) * time.Millisecond,
		StdDev: time.Duration(std) * time.Millisecond,
		Min:    min,
		Max:    max,
	}
}

// WriteHistogram renders a jitter histogram of samples (in
// milliseconds) to a PNG at path.
func WriteHistogram(samples []time.Duration, path string) error {
	if len(samples) == 0 {
		return fmt.Errorf("diag: no samples to plot")
	}

	values := make(plotter.Values, len(samples))
	for i, d := range samples {
		values[i] = float64(d.Milliseconds())
	}

	p := plot.New()
	p.Title.Text = "frame interval jitter"
	p.X.Label.Text = "interval (ms)"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(values, 30)
	if err != nil {
		return fmt.Errorf("diag: building histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("diag: saving histogram: %w", err)
	}
	return nil
}
