// Package render draws curve results. Rendering is kept apart from the
// device models: a renderer only ever sees a finished curve.Result.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/edp1096/semisim/pkg/curve"
)

type Renderer interface {
	Render(w io.Writer, res *curve.Result) error
	ContentType() string
}

// Options control the canvas size in inches (plot) or pixels/100 (html).
type Options struct {
	Width  float64
	Height float64
}

func DefaultOptions() Options {
	return Options{Width: 8, Height: 5}
}

// Formats lists the formats accepted by New.
func Formats() []string {
	return []string{"png", "svg", "pdf", "html"}
}

func New(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(format) {
	case "png", "svg", "pdf":
		return NewPlotRenderer(strings.ToLower(format), opts), nil
	case "html":
		return NewEChartsRenderer(opts), nil
	}
	return nil, fmt.Errorf("unsupported render format: %s", format)
}
