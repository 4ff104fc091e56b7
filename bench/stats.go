package bench

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/arloliu/olsbench/errs"
)

// Summary holds the distribution statistics of one measurement.
type Summary struct {
	// Name identifies the measured operation.
	Name string
	// Min is the fastest observed run.
	Min time.Duration
	// LQ is the lower quartile (25th percentile).
	LQ time.Duration
	// Median is the 50th percentile.
	Median time.Duration
	// Mean is the arithmetic mean.
	Mean time.Duration
	// UQ is the upper quartile (75th percentile).
	UQ time.Duration
	// Max is the slowest observed run.
	Max time.Duration
	// StdDev is the sample standard deviation.
	StdDev time.Duration
	// N is the number of timed repetitions.
	N int
}

// String returns a compact single-line rendering of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("%s: min=%v lq=%v median=%v mean=%v uq=%v max=%v n=%d",
		s.Name, s.Min, s.LQ, s.Median, s.Mean, s.UQ, s.Max, s.N)
}

// Stats computes the summary statistics of the measurement's samples.
// Quartiles use linear interpolation between order statistics.
func (m Measurement) Stats() Summary {
	n := len(m.Samples)
	if n == 0 {
		return Summary{Name: m.Name}
	}

	sorted := slices.Clone(m.Samples)
	slices.Sort(sorted)

	var sum float64
	for _, d := range sorted {
		sum += float64(d)
	}
	mean := sum / float64(n)

	var sumSq float64
	for _, d := range sorted {
		diff := float64(d) - mean
		sumSq += diff * diff
	}
	stddev := 0.0
	if n > 1 {
		stddev = math.Sqrt(sumSq / float64(n-1))
	}

	return Summary{
		Name:   m.Name,
		Min:    sorted[0],
		LQ:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.50),
		Mean:   time.Duration(mean),
		UQ:     quantile(sorted, 0.75),
		Max:    sorted[n-1],
		StdDev: time.Duration(stddev),
		N:      n,
	}
}

// quantile computes the q-th quantile of sorted samples with linear
// interpolation between adjacent order statistics.
func quantile(sorted []time.Duration, q float64) time.Duration {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)

	return sorted[lo] + time.Duration(frac*float64(sorted[hi]-sorted[lo]))
}

// Ranked is a summary extended with its speed relative to the fastest
// measurement in the same ranking.
type Ranked struct {
	Summary
	// Relative is this measurement's median divided by the fastest
	// median in the set; the fastest entry has Relative 1.
	Relative float64
}

// Rank computes summaries for all measurements and orders them fastest
// first by median. Relative speed is reported against the fastest entry.
func Rank(measurements []Measurement) ([]Ranked, error) {
	if len(measurements) == 0 {
		return nil, errs.ErrNoMeasurements
	}

	ranked := make([]Ranked, len(measurements))
	for i, m := range measurements {
		ranked[i] = Ranked{Summary: m.Stats()}
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		switch {
		case a.Median < b.Median:
			return -1
		case a.Median > b.Median:
			return 1
		default:
			return 0
		}
	})

	fastest := float64(ranked[0].Median)
	for i := range ranked {
		if fastest > 0 {
			ranked[i].Relative = float64(ranked[i].Median) / fastest
		} else {
			ranked[i].Relative = 1
		}
	}

	return ranked, nil
}
