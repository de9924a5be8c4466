package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/edp1096/semisim/pkg/curve"
)

var refLineColor = color.Gray{Y: 128}

// PlotRenderer writes static images through gonum/plot.
type PlotRenderer struct {
	format string
	opts   Options
}

func NewPlotRenderer(format string, opts Options) *PlotRenderer {
	return &PlotRenderer{format: format, opts: opts}
}

func (r *PlotRenderer) ContentType() string {
	switch r.format {
	case "svg":
		return "image/svg+xml"
	case "pdf":
		return "application/pdf"
	}
	return "image/png"
}

func (r *PlotRenderer) Render(w io.Writer, res *curve.Result) error {
	if err := res.Validate(); err != nil {
		return err
	}

	p, err := r.Plot(res)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(vg.Length(r.opts.Width)*vg.Inch, vg.Length(r.opts.Height)*vg.Inch, r.format)
	if err != nil {
		return fmt.Errorf("render %s: %w", r.format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Plot builds the gonum plot for a result without encoding it.
func (r *PlotRenderer) Plot(res *curve.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = res.Title
	p.X.Label.Text = res.XLabel
	p.Y.Label.Text = res.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range res.Series {
		xys := make(plotter.XYs, s.Len())
		for k := range s.X {
			xys[k].X, xys[k].Y = s.X[k], s.Y[k]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	xmin, xmax, ymin, ymax := res.Bounds()
	for _, ref := range res.RefLines {
		var xys plotter.XYs
		switch ref.Orientation {
		case curve.Horizontal:
			xys = plotter.XYs{{X: xmin, Y: ref.Value}, {X: xmax, Y: ref.Value}}
		case curve.Vertical:
			xys = plotter.XYs{{X: ref.Value, Y: ymin}, {X: ref.Value, Y: ymax}}
		default:
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("reference line: %w", err)
		}
		line.Color = refLineColor
		if ref.Dashed {
			line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}
		p.Add(line)
		if ref.Label != "" {
			p.Legend.Add(ref.Label, line)
		}
	}

	return p, nil
}
