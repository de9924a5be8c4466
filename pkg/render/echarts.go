package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/edp1096/semisim/pkg/curve"
)

// EChartsRenderer writes an interactive HTML page.
type EChartsRenderer struct {
	opts Options
}

func NewEChartsRenderer(opts Options) *EChartsRenderer {
	return &EChartsRenderer{opts: opts}
}

func (r *EChartsRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *EChartsRenderer) Render(w io.Writer, res *curve.Result) error {
	line, err := r.Chart(res)
	if err != nil {
		return err
	}
	return line.Render(w)
}

// Chart builds the line chart with x/y value pairs so the sweep axis
// stays numeric.
func (r *EChartsRenderer) Chart(res *curve.Result) (*charts.Line, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: res.Title,
			Width:     fmt.Sprintf("%.0fpx", r.opts.Width*100),
			Height:    fmt.Sprintf("%.0fpx", r.opts.Height*100),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: res.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:  "scroll",
			Right: "10",
			Top:   "30",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: res.XLabel,
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  res.YLabel,
			Type:  "value",
			Scale: true,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			XAxisIndex: []int{0},
		}),
	)

	for i, s := range res.Series {
		items := make([]opts.LineData, s.Len())
		for k := range s.X {
			items[k] = opts.LineData{Value: []float64{s.X[k], s.Y[k]}}
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: false}),
		}
		if i == 0 {
			seriesOpts = append(seriesOpts, markLines(res.RefLines)...)
		}
		line.AddSeries(s.Label, items, seriesOpts...)
	}

	return line, nil
}

func markLines(refs []curve.RefLine) []charts.SeriesOpts {
	if len(refs) == 0 {
		return nil
	}

	out := []charts.SeriesOpts{
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{Symbol: []string{"none"}}),
	}
	for _, ref := range refs {
		name := ref.Label
		switch ref.Orientation {
		case curve.Horizontal:
			if name == "" {
				name = fmt.Sprintf("y = %g", ref.Value)
			}
			out = append(out, charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: name, YAxis: ref.Value}))
		case curve.Vertical:
			if name == "" {
				name = fmt.Sprintf("x = %g", ref.Value)
			}
			out = append(out, charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{Name: name, XAxis: ref.Value}))
		}
	}
	return out
}
