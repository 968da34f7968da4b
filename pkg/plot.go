package pkg

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Glyphs per algorithm: circles for deterministic, crosses for randomized.
var glyphs = map[Algorithm]draw.GlyphDrawer{
	Deterministic: draw.CircleGlyph{},
	Randomized:    draw.CrossGlyph{},
}

// Series is one line of the runtime chart.
type Series struct {
	Label     string
	Algorithm Algorithm
	Case      Case
	Glyph     draw.GlyphDrawer
	Points    plotter.XYs
}

// ChartSeries lists the chart lines in legend order: per recorded case, the
// deterministic line followed by the randomized one.
func ChartSeries(exp *Experiment) []Series {
	var series []Series
	for _, cs := range exp.Deterministic.Cases() {
		for _, a := range Algorithms {
			points := make(plotter.XYs, len(exp.Config.Sizes))
			for i, size := range exp.Config.Sizes {
				points[i].X = float64(size)
				points[i].Y = exp.Results(a)[cs][i]
			}
			series = append(series, Series{
				Label:     fmt.Sprintf("%s (%s)", a, cs),
				Algorithm: a,
				Case:      cs,
				Glyph:     glyphs[a],
				Points:    points,
			})
		}
	}
	return series
}

// NewPlot builds the runtime chart: one line per (algorithm, case), seconds
// over input size.
func NewPlot(exp *Experiment) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Running Time: Randomized Quicksort vs Deterministic Quicksort"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Input Size"
	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Time (seconds)"
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for _, sr := range ChartSeries(exp) {
		line, scatter, err := plotter.NewLinePoints(sr.Points)
		if err != nil {
			return nil, errors.Wrapf(err, "line %s", sr.Label)
		}

		colors := plotutil.DarkColors
		if sr.Algorithm == Randomized {
			colors = plotutil.SoftColors
		}
		color := colors[sr.Case.Index()%len(colors)]
		line.LineStyle.Color = color
		scatter.GlyphStyle.Color = color
		scatter.GlyphStyle.Shape = sr.Glyph

		p.Add(line, scatter)
		p.Legend.Add(sr.Label, line, scatter)
	}

	return p, nil
}

// Plot renders the chart into path. The format follows the file extension.
func Plot(exp *Experiment, path string) error {
	p, err := NewPlot(exp)
	if err != nil {
		return err
	}

	if err := p.Save(12*vg.Inch, 8*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving plot to '%s'", path)
	}
	log.Infof("plot written to '%s'", path)
	return nil
}

// DefaultViewer returns the command that opens a file with the platform viewer
// and waits for it. xdg-open hands the file to the desktop and may return
// before the window is closed; pass a blocking viewer on Linux to wait.
func DefaultViewer() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open", "-W"}
	case "windows":
		return []string{"cmd", "/c", "start", "/wait", ""}
	}
	return []string{"xdg-open"}
}

// Show opens path with viewer and blocks until the viewer exits.
func Show(ctx context.Context, viewer []string, path string) error {
	if len(viewer) == 0 {
		viewer = DefaultViewer()
	}

	args := append(append([]string(nil), viewer[1:]...), path)
	cmd := exec.CommandContext(ctx, viewer[0], args...)
	log.Debugf("showing plot: %v", cmd.Args)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "viewer %q", viewer[0])
	}
	return nil
}
