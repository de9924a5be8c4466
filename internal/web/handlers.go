package web

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edp1096/semisim/pkg/curve"
	"github.com/edp1096/semisim/pkg/device"
	"github.com/edp1096/semisim/pkg/render"
	"github.com/edp1096/semisim/pkg/util"
)

type deviceLink struct {
	Name  string
	Title string
}

type indexPage struct {
	Devices []deviceLink
}

type formPage struct {
	Device  string
	Title   string
	Button  string
	Fields  []field
	Warning string
	RunID   string
	Chart   string // standalone chart document, embedded through srcdoc
	Notes   []string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := indexPage{}
	for _, name := range device.Types() {
		page.Devices = append(page.Devices, deviceLink{Name: name, Title: forms[name].Title})
	}
	s.render(w, http.StatusOK, "index", page)
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "device")
	f, ok := forms[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.render(w, http.StatusOK, "form", formPage{
		Device: name,
		Title:  f.Title,
		Button: f.Button,
		Fields: f.fields(s.cfg),
	})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "device")
	f, ok := forms[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fields := f.fields(s.cfg)
	v := newValues(name, r.PostForm, fields)
	page := formPage{
		Device: name,
		Title:  f.Title,
		Button: f.Button,
		Fields: v.current(fields),
		RunID:  uuid.NewString(),
	}
	logger := s.logger.With("run_id", page.RunID, "device", name)

	res, err := s.simulate(f, v)
	if err != nil {
		if !isInputError(err) {
			logger.Error("simulation failed", "error", err)
			http.Error(w, "simulation failed", http.StatusInternalServerError)
			return
		}
		logger.Info("input rejected", "error", err)
		page.Warning = err.Error()
		s.render(w, http.StatusUnprocessableEntity, "form", page)
		return
	}

	var chart bytes.Buffer
	if err := render.NewEChartsRenderer(render.Options{Width: s.cfg.Render.Width, Height: s.cfg.Render.Height}).Render(&chart, res); err != nil {
		logger.Error("render chart", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	page.Chart = chart.String()
	page.Notes = res.Notes

	logger.Debug("simulated", "series", len(res.Series))
	s.render(w, http.StatusOK, "form", page)
}

func (s *Server) simulate(f deviceForm, v *values) (*curve.Result, error) {
	model, sw, err := f.build(v, s.cfg)
	if err != nil {
		return nil, err
	}
	res, err := model.Simulate(sw)
	if err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func isInputError(err error) bool {
	var parseErr *util.ParseError
	return device.IsInputError(err) ||
		errors.As(err, &parseErr) ||
		errors.Is(err, curve.ErrNonFinite)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("render page", "page", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
