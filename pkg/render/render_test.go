package render

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/semisim/pkg/curve"
	"github.com/edp1096/semisim/pkg/device"
)

func nanoResult(t *testing.T) *curve.Result {
	t.Helper()
	n := device.NewNanoParticle("N1")
	res, err := n.Simulate(curve.NewSweep(1, 6, 50))
	require.NoError(t, err)
	return res
}

func TestNew(t *testing.T) {
	for _, format := range Formats() {
		r, err := New(format, DefaultOptions())
		require.NoError(t, err, format)
		assert.NotEmpty(t, r.ContentType())
	}

	_, err := New("bmp", DefaultOptions())
	assert.Error(t, err)
}

func TestPlotRenderer_PNG(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlotRenderer("png", DefaultOptions())
	require.NoError(t, r.Render(&buf, nanoResult(t)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	assert.Equal(t, "image/png", r.ContentType())
}

func TestPlotRenderer_SVG(t *testing.T) {
	j := device.NewJFET("J1")
	res, err := j.Simulate(j.DefaultSweep())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewPlotRenderer("svg", DefaultOptions()).Render(&buf, res))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "JFET Output Characteristics")
}

func TestPlotRenderer_Plot(t *testing.T) {
	p, err := NewPlotRenderer("png", DefaultOptions()).Plot(nanoResult(t))
	require.NoError(t, err)
	assert.Equal(t, "Band Gap vs Nanoparticle Size", p.Title.Text)
	assert.Equal(t, "Size (nm)", p.X.Label.Text)
}

func TestRenderers_RejectNonFinite(t *testing.T) {
	res := &curve.Result{
		Title:  "broken",
		Series: []curve.Series{{Label: "inf", X: []float64{0, 1}, Y: []float64{0, math.Inf(1)}}},
	}

	for _, format := range Formats() {
		r, err := New(format, DefaultOptions())
		require.NoError(t, err)

		var buf bytes.Buffer
		assert.ErrorIs(t, r.Render(&buf, res), curve.ErrNonFinite, format)
		assert.Zero(t, buf.Len(), format)
	}
}

func TestEChartsRenderer_HTML(t *testing.T) {
	d := device.NewDiode("D1")
	res, err := d.Simulate(d.DefaultSweep())
	require.NoError(t, err)

	var buf bytes.Buffer
	r := NewEChartsRenderer(DefaultOptions())
	require.NoError(t, r.Render(&buf, res))

	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "PN Junction Diode I-V Characteristics")
	assert.Contains(t, html, "T = 300 K")
	assert.Equal(t, "text/html; charset=utf-8", r.ContentType())
}

func TestEChartsRenderer_Chart(t *testing.T) {
	line, err := NewEChartsRenderer(DefaultOptions()).Chart(nanoResult(t))
	require.NoError(t, err)
	require.Len(t, line.MultiSeries, 1)
	assert.Equal(t, "Band Gap", line.MultiSeries[0].Name)
}

func TestEChartsRenderer_ChartOptions(t *testing.T) {
	line, err := NewEChartsRenderer(DefaultOptions()).Chart(nanoResult(t))
	require.NoError(t, err)
	assert.True(t, line.Tooltip.Show)
	require.NotEmpty(t, line.YAxisList)
	assert.True(t, line.YAxisList[0].Scale)
}
