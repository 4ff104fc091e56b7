package report

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"os"
	"time"

	"github.com/arloliu/olsbench/internal/pool"
)

// Chart geometry. Rows are laid out horizontally: one bar per strategy,
// bar length proportional to the median, a whisker spanning min to max.
const (
	chartLabelWidth = 150
	chartPlotWidth  = 560
	chartRowHeight  = 34
	chartBarHeight  = 16
	chartPadTop     = 10
	chartPadBottom  = 24
)

type chartRow struct {
	Name        string
	LabelY      float64
	BarY        float64
	BarWidth    float64
	CenterY     float64
	TickTopY    float64
	TickBottomY float64
	MinX        float64
	MaxX        float64
	Median      string
}

type chartData struct {
	Width  int
	Height int
	Rows   []chartRow
	Axis   string
}

type rankingRow struct {
	Name     string
	Median   string
	Mean     string
	Min      string
	Max      string
	StdDev   string
	N        int
	Relative string
}

type strategyRow struct {
	Name        string
	Description string
	Intercept   string
	Slope       string
	RSquared    string
	RMSE        string
}

type htmlData struct {
	Title       string
	GeneratedAt string
	Samples     int
	TrueLine    string
	NoiseSigma  float64
	Seed        uint64
	Fingerprint string
	Strategies  []strategyRow
	Rankings    []rankingRow
	Chart       chartData
}

func (r *Report) buildChart() chartData {
	rows := make([]chartRow, 0, len(r.Rankings))

	// Log10 scale: medians span orders of magnitude, so a linear axis
	// would collapse the fast strategies into invisibility. The left edge
	// is the fastest observed sample, the right edge the slowest.
	minDur := r.Rankings[0].Min
	maxDur := r.Rankings[0].Max
	for _, rk := range r.Rankings {
		if rk.Min < minDur {
			minDur = rk.Min
		}
		if rk.Max > maxDur {
			maxDur = rk.Max
		}
	}
	if minDur < 1 {
		minDur = 1
	}

	logLo := math.Log10(float64(minDur))
	span := math.Log10(float64(maxDur)) - logLo
	pos := func(d time.Duration) float64 {
		if d < 1 {
			d = 1
		}
		if span == 0 {
			return chartPlotWidth
		}

		return (math.Log10(float64(d)) - logLo) / span * chartPlotWidth
	}

	for i, rk := range r.Rankings {
		top := float64(chartPadTop + i*chartRowHeight)
		center := top + float64(chartRowHeight)/2
		rows = append(rows, chartRow{
			Name:        rk.Name,
			LabelY:      center + 4,
			BarY:        top + (float64(chartRowHeight)-chartBarHeight)/2,
			BarWidth:    pos(rk.Median),
			CenterY:     center,
			TickTopY:    center - 5,
			TickBottomY: center + 5,
			MinX:        pos(rk.Min),
			MaxX:        pos(rk.Max),
			Median:      formatDuration(rk.Median),
		})
	}

	return chartData{
		Width:  chartLabelWidth + chartPlotWidth + 90,
		Height: chartPadTop + len(rows)*chartRowHeight + chartPadBottom,
		Rows:   rows,
		Axis: fmt.Sprintf("log scale, %s .. %s (median bar, min-max whisker)",
			formatDuration(minDur), formatDuration(maxDur)),
	}
}

func (r *Report) buildHTMLData() htmlData {
	data := htmlData{
		Title:       r.title(),
		GeneratedAt: r.generatedAt().Format(time.RFC3339),
		Samples:     r.Config.N,
		TrueLine:    fmt.Sprintf("y = %g + %g*x", r.Config.Intercept, r.Config.Slope),
		NoiseSigma:  r.Config.NoiseSigma,
		Seed:        r.Config.Seed,
		Fingerprint: fmt.Sprintf("%016x", r.Fingerprint),
		Chart:       r.buildChart(),
	}

	for _, s := range r.Strategies {
		data.Strategies = append(data.Strategies, strategyRow{
			Name:        s.Name,
			Description: s.Description,
			Intercept:   fmt.Sprintf("%.9f", s.Coefficients.Intercept),
			Slope:       fmt.Sprintf("%.9f", s.Coefficients.Slope),
			RSquared:    fmt.Sprintf("%.6f", s.RSquared),
			RMSE:        fmt.Sprintf("%.6f", s.RMSE),
		})
	}

	for _, rk := range r.Rankings {
		data.Rankings = append(data.Rankings, rankingRow{
			Name:     rk.Name,
			Median:   formatDuration(rk.Median),
			Mean:     formatDuration(rk.Mean),
			Min:      formatDuration(rk.Min),
			Max:      formatDuration(rk.Max),
			StdDev:   formatDuration(rk.StdDev),
			N:        rk.N,
			Relative: fmt.Sprintf("%.2fx", rk.Relative),
		})
	}

	return data
}

// Render writes the report as a self-contained HTML document.
func (r *Report) Render(w io.Writer) error {
	if err := r.validate(); err != nil {
		return err
	}

	buf := pool.GetReportBuffer()
	defer pool.PutReportBuffer(buf)

	if err := htmlTemplate.Execute(buf, r.buildHTMLData()); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// RenderFile renders the report and writes it to path.
func (r *Report) RenderFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := r.Render(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; margin: 2rem auto; max-width: 60rem; color: #1c1e21; }
h1 { font-size: 1.5rem; }
h2 { font-size: 1.15rem; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; font-size: 0.9rem; }
th, td { border: 1px solid #d0d4d9; padding: 0.35rem 0.6rem; text-align: right; }
th:first-child, td:first-child { text-align: left; }
th { background: #f2f4f6; }
tbody tr:nth-child(odd) { background: #fafbfc; }
dl { display: grid; grid-template-columns: max-content 1fr; gap: 0.2rem 1rem; font-size: 0.9rem; }
dt { font-weight: 600; }
dd { margin: 0; font-family: ui-monospace, Menlo, Consolas, monospace; }
.meta { color: #657081; font-size: 0.8rem; }
svg text { font-size: 12px; fill: #1c1e21; }
svg .axis { font-size: 11px; fill: #657081; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Generated {{.GeneratedAt}}</p>

<h2>Dataset</h2>
<dl>
<dt>Samples</dt><dd>{{.Samples}}</dd>
<dt>True line</dt><dd>{{.TrueLine}}</dd>
<dt>Noise sigma</dt><dd>{{.NoiseSigma}}</dd>
<dt>Seed</dt><dd>{{.Seed}}</dd>
<dt>Fingerprint</dt><dd>{{.Fingerprint}}</dd>
</dl>

{{if .Strategies}}
<h2>Fitted Coefficients</h2>
<table>
<thead><tr><th>Strategy</th><th>Intercept</th><th>Slope</th><th>R&sup2;</th><th>RMSE</th></tr></thead>
<tbody>
{{range .Strategies}}<tr title="{{.Description}}"><td>{{.Name}}</td><td>{{.Intercept}}</td><td>{{.Slope}}</td><td>{{.RSquared}}</td><td>{{.RMSE}}</td></tr>
{{end}}</tbody>
</table>
{{end}}

<h2>Timing</h2>
<table>
<thead><tr><th>Strategy</th><th>Median</th><th>Mean</th><th>Min</th><th>Max</th><th>StdDev</th><th>N</th><th>Relative</th></tr></thead>
<tbody>
{{range .Rankings}}<tr><td>{{.Name}}</td><td>{{.Median}}</td><td>{{.Mean}}</td><td>{{.Min}}</td><td>{{.Max}}</td><td>{{.StdDev}}</td><td>{{.N}}</td><td>{{.Relative}}</td></tr>
{{end}}</tbody>
</table>

<h2>Median Timing Chart</h2>
<svg width="{{.Chart.Width}}" height="{{.Chart.Height}}" role="img" aria-label="median timing per strategy">
{{range .Chart.Rows}}<g transform="translate(150,0)">
<text x="-8" y="{{.LabelY}}" text-anchor="end">{{.Name}}</text>
<rect x="0" y="{{.BarY}}" width="{{.BarWidth}}" height="16" fill="#4c78a8"></rect>
<line x1="{{.MinX}}" y1="{{.CenterY}}" x2="{{.MaxX}}" y2="{{.CenterY}}" stroke="#1c1e21" stroke-width="1"></line>
<line x1="{{.MinX}}" y1="{{.TickTopY}}" x2="{{.MinX}}" y2="{{.TickBottomY}}" stroke="#1c1e21" stroke-width="1"></line>
<line x1="{{.MaxX}}" y1="{{.TickTopY}}" x2="{{.MaxX}}" y2="{{.TickBottomY}}" stroke="#1c1e21" stroke-width="1"></line>
<text x="{{.MaxX}}" y="{{.LabelY}}" dx="6">{{.Median}}</text>
</g>
{{end}}<text class="axis" x="150" y="{{.Chart.Height}}" dy="-6">{{.Chart.Axis}}</text>
</svg>

</body>
</html>
`))
