package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/edp1096/semisim/pkg/analysis"
	"github.com/edp1096/semisim/pkg/curve"
	"github.com/edp1096/semisim/pkg/device"
	"github.com/edp1096/semisim/pkg/render"
	"github.com/edp1096/semisim/pkg/util"
)

func checkFormat(format string) error {
	switch format {
	case "table", "json":
		return nil
	}
	if slices.Contains(render.Formats(), format) {
		return nil
	}
	return fmt.Errorf("unsupported format %q", format)
}

func (a *app) simulate(model device.Model, sw curve.Sweep) error {
	c, err := a.characterize(model, sw)
	if err != nil {
		return err
	}
	return a.write([]*analysis.Characteristic{c})
}

func (a *app) characterize(model device.Model, sw curve.Sweep) (*analysis.Characteristic, error) {
	runID := uuid.NewString()
	a.logger.Debug("simulating",
		"run_id", runID,
		"device", model.GetName(),
		"type", model.GetType(),
		"start", sw.Start,
		"stop", sw.Stop,
		"points", sw.Points,
	)

	c, err := analysis.Run(model, sw)
	if err != nil {
		a.logger.Warn("simulation rejected", "run_id", runID, "device", model.GetName(), "error", err)
		return nil, err
	}
	if err := c.Result().Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", model.GetName(), err)
	}

	a.logger.Debug("simulation completed", "run_id", runID, "series", len(c.Result().Series))
	return c, nil
}

func (a *app) write(results []*analysis.Characteristic) error {
	switch a.format {
	case "table":
		return a.withOutput(a.out, func(w io.Writer) error {
			for _, c := range results {
				printResults(w, c)
			}
			return nil
		})
	case "json":
		return a.withOutput(a.out, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if len(results) == 1 {
				return enc.Encode(results[0].Result())
			}
			all := make([]*curve.Result, len(results))
			for i, c := range results {
				all[i] = c.Result()
			}
			return enc.Encode(all)
		})
	}

	renderer, err := render.New(a.format, render.Options{Width: a.cfg.Render.Width, Height: a.cfg.Render.Height})
	if err != nil {
		return err
	}
	if len(results) == 1 {
		return a.withOutput(a.out, func(w io.Writer) error {
			return renderer.Render(w, results[0].Result())
		})
	}

	// One file per device, in --out as a directory
	dir := a.out
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, c := range results {
		path := filepath.Join(dir, strings.ToLower(c.Model.GetName())+"."+a.format)
		if err := a.withOutput(path, func(w io.Writer) error {
			return renderer.Render(w, c.Result())
		}); err != nil {
			return err
		}
		a.logger.Info("chart written", "device", c.Model.GetName(), "file", path)
	}
	return nil
}

func (a *app) withOutput(path string, fn func(w io.Writer) error) error {
	if path == "" {
		return fn(a.stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printResults(w io.Writer, c *analysis.Characteristic) {
	res := c.Result()
	results := c.GetResults()
	sweep := results[analysis.SweepKey]
	xUnit := util.UnitFromLabel(res.XLabel)
	yUnit := util.UnitFromLabel(res.YLabel)

	fmt.Fprintf(w, "\n%s [%s] (%d points):\n", res.Title, c.Model.GetName(), len(sweep))
	fmt.Fprintf(w, "%-14s  %s\n", res.XLabel, res.YLabel)
	fmt.Fprintln(w, strings.Repeat("-", 48))

	labels := c.Keys()[1:]
	for i, x := range sweep {
		fmt.Fprintf(w, "%-14s  ", util.FormatValueFactor(x, xUnit))
		for _, label := range labels {
			fmt.Fprintf(w, "%s: %s  ", label, util.FormatValueFactor(results[label][i], yUnit))
		}
		fmt.Fprintln(w)
	}

	for _, note := range res.Notes {
		fmt.Fprintf(w, "* %s\n", note)
	}
}
