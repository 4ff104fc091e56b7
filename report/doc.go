// Package report renders benchmark results as plain text tables or as a
// standalone HTML page.
//
// A Report collects everything one run produced: the dataset configuration
// and fingerprint, the fitted coefficients and goodness-of-fit per strategy,
// and the ranked timing summaries. WriteText prints the same tables the
// command-line tool shows; Render produces a self-contained HTML document
// with an inline SVG chart of the timing distributions, suitable for
// archiving next to the artifact file.
package report
