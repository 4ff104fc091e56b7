package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arloliu/olsbench/bench"
	"github.com/arloliu/olsbench/errs"
	"github.com/arloliu/olsbench/simdata"
	"github.com/arloliu/olsbench/solver"
)

// StrategyResult holds the fit quality of one strategy.
type StrategyResult struct {
	// Name is the short strategy key.
	Name string
	// Description is the one-line description of the computation route.
	Description string
	// Coefficients are the fitted intercept and slope.
	Coefficients solver.Coefficients
	// RSquared is the coefficient of determination against the dataset.
	RSquared float64
	// RMSE is the root mean square error against the dataset.
	RMSE float64
}

// Report is the full result set of one benchmark run, ready for rendering.
type Report struct {
	// Title is the page heading. Defaults to "OLS Strategy Benchmark"
	// when empty.
	Title string
	// Config is the dataset generation configuration.
	Config simdata.Config
	// Fingerprint is the xxHash64 of the dataset the run measured.
	Fingerprint uint64
	// Strategies are the per-strategy fit results, in presentation order.
	Strategies []StrategyResult
	// Rankings are the timing summaries, fastest first.
	Rankings []bench.Ranked
	// GeneratedAt stamps the run. Defaults to time.Now when zero.
	GeneratedAt time.Time
}

func (r *Report) title() string {
	if r.Title == "" {
		return "OLS Strategy Benchmark"
	}

	return r.Title
}

func (r *Report) generatedAt() time.Time {
	if r.GeneratedAt.IsZero() {
		return time.Now()
	}

	return r.GeneratedAt
}

func (r *Report) validate() error {
	if len(r.Rankings) == 0 {
		return errs.ErrNoMeasurements
	}

	return nil
}

// WriteText writes the configuration, fit, and timing tables to w in the
// same plain-text layout the command-line tool prints.
func (r *Report) WriteText(w io.Writer) error {
	if err := r.validate(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n\n", r.title())

	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintf(w, "  Samples:      %d\n", r.Config.N)
	fmt.Fprintf(w, "  True line:    y = %g + %g*x\n", r.Config.Intercept, r.Config.Slope)
	fmt.Fprintf(w, "  Noise sigma:  %g\n", r.Config.NoiseSigma)
	fmt.Fprintf(w, "  Seed:         %d\n", r.Config.Seed)
	fmt.Fprintf(w, "  Fingerprint:  %016x\n", r.Fingerprint)
	fmt.Fprintln(w)

	if len(r.Strategies) > 0 {
		fmt.Fprintln(w, "=== Fitted Coefficients ===")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-15s | %-14s | %-14s | %-9s | %-10s\n",
			"Strategy", "Intercept", "Slope", "R²", "RMSE")
		fmt.Fprintln(w, strings.Repeat("-", 74))
		for _, s := range r.Strategies {
			fmt.Fprintf(w, "%-15s | %-14.9f | %-14.9f | %-9.6f | %-10.6f\n",
				s.Name, s.Coefficients.Intercept, s.Coefficients.Slope, s.RSquared, s.RMSE)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "=== Timing Results ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-15s | %-10s | %-10s | %-10s | %-10s | %-10s | %-8s\n",
		"Strategy", "Median", "Mean", "Min", "Max", "StdDev", "Relative")
	fmt.Fprintln(w, strings.Repeat("-", 92))
	for _, rk := range r.Rankings {
		fmt.Fprintf(w, "%-15s | %-10s | %-10s | %-10s | %-10s | %-10s | %-8s\n",
			rk.Name,
			formatDuration(rk.Median),
			formatDuration(rk.Mean),
			formatDuration(rk.Min),
			formatDuration(rk.Max),
			formatDuration(rk.StdDev),
			fmt.Sprintf("%.2fx", rk.Relative))
	}
	fmt.Fprintln(w)

	return nil
}

// formatDuration renders a duration with three significant decimals in the
// largest unit that keeps the value above one.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.3fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.3fµs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
