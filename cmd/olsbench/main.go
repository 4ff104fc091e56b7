// Command olsbench generates a simulated linear-regression dataset, verifies
// that every solver strategy reproduces the reference coefficients, times
// each strategy under a fixed-repetition harness, and prints the ranked
// results. Optionally it writes an HTML report and a binary artifact of the
// raw timing samples.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/arloliu/olsbench"
	"github.com/arloliu/olsbench/artifact"
	"github.com/arloliu/olsbench/bench"
	"github.com/arloliu/olsbench/errs"
	"github.com/arloliu/olsbench/format"
	"github.com/arloliu/olsbench/simdata"
	"github.com/arloliu/olsbench/solver"
)

func main() {
	samples := flag.Int("n", simdata.DefaultSampleSize, "Number of samples to generate")
	intercept := flag.Float64("intercept", simdata.DefaultIntercept, "True intercept of the generating line")
	slope := flag.Float64("slope", simdata.DefaultSlope, "True slope of the generating line")
	sigma := flag.Float64("sigma", simdata.DefaultNoiseSigma, "Standard deviation of the additive noise")
	seed := flag.Uint64("seed", simdata.DefaultSeed, "Random seed")
	reps := flag.Int("reps", bench.DefaultRepetitions, "Timed repetitions per strategy")
	warmup := flag.Int("warmup", bench.DefaultWarmup, "Untimed warmup runs per strategy")
	tol := flag.Float64("tol", solver.DefaultTolerance, "Absolute coefficient agreement tolerance")
	reportPath := flag.String("out", "", "Optional HTML report output file")
	artifactPath := flag.String("artifact", "", "Optional binary artifact output file")
	compression := flag.String("compress", "zstd", "Artifact compression: none, zstd, s2, or lz4")
	verbose := flag.Bool("verbose", false, "Enable verbose output")

	flag.Parse()

	if *samples < 2 {
		fmt.Fprintf(os.Stderr, "Error: -n must be at least 2\n")
		os.Exit(1)
	}
	if *reps <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -reps must be positive\n")
		os.Exit(1)
	}
	if *warmup < 0 {
		fmt.Fprintf(os.Stderr, "Error: -warmup cannot be negative\n")
		os.Exit(1)
	}
	if *sigma < 0 {
		fmt.Fprintf(os.Stderr, "Error: -sigma cannot be negative\n")
		os.Exit(1)
	}

	compressionType, ok := format.ParseCompressionType(*compression)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown -compress value %q (want none, zstd, s2, or lz4)\n", *compression)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Generating %d samples...\n", *samples)
	}

	result, err := olsbench.Run(
		olsbench.WithDatasetOptions(
			simdata.WithSampleSize(*samples),
			simdata.WithCoefficients(*intercept, *slope),
			simdata.WithNoiseSigma(*sigma),
			simdata.WithSeed(*seed),
		),
		olsbench.WithBenchOptions(
			bench.WithRepetitions(*reps),
			bench.WithWarmup(*warmup),
		),
		olsbench.WithTolerance(*tol),
	)
	if err != nil {
		if errors.Is(err, errs.ErrAgreementFailed) {
			fmt.Fprintf(os.Stderr, "Error: strategy disagreement: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := result.WriteText(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *reportPath != "" {
		if err := result.WriteReport(*reportPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("HTML report written to: %s\n", *reportPath)
	}

	if *artifactPath != "" {
		if err := result.SaveArtifact(*artifactPath, artifact.WithCompression(compressionType)); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing artifact: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Artifact written to: %s\n", *artifactPath)
	}
}
