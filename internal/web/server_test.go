package web

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/semisim/internal/config"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(config.Default(), logger)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func post(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestIndex(t *testing.T) {
	rec := get(t, newTestServer(), "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	for _, path := range []string{`href="/diode"`, `href="/bjt"`, `href="/jfet"`, `href="/nano"`} {
		assert.Contains(t, body, path)
	}
}

func TestForm_Defaults(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		device string
		want   []string
	}{
		{"diode", []string{`name="v_start"`, `min="-2"`, `value="300"`, `value="1e-12"`}},
		{"bjt", []string{`name="beta"`, `max="300"`, `value="10, 20, 30, 40"`}},
		{"jfet", []string{`name="vgs"`, `value="-1, -2, -3"`, `value="0.01"`, `value="-4"`}},
		{"nano", []string{`name="alpha"`, `min="0.5"`, `value="6"`}},
	}
	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			rec := get(t, s, "/"+tt.device)
			require.Equal(t, http.StatusOK, rec.Code)
			for _, want := range tt.want {
				assert.Contains(t, rec.Body.String(), want)
			}
			assert.NotContains(t, rec.Body.String(), "<iframe")
		})
	}
}

func TestForm_UnknownDevice(t *testing.T) {
	s := newTestServer()
	assert.Equal(t, http.StatusNotFound, get(t, s, "/mosfet").Code)
	assert.Equal(t, http.StatusNotFound, post(t, s, "/mosfet", url.Values{}).Code)
}

func TestSimulate_Defaults(t *testing.T) {
	s := newTestServer()

	for _, name := range []string{"diode", "bjt", "jfet", "nano"} {
		t.Run(name, func(t *testing.T) {
			rec := post(t, s, "/"+name, url.Values{})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			body := rec.Body.String()
			assert.Contains(t, body, "<iframe")
			assert.Contains(t, body, "srcdoc=")
			assert.Contains(t, body, "Characteristics Explained")
			assert.Contains(t, body, "run ")
		})
	}
}

func TestSimulate_KeepsSubmittedValues(t *testing.T) {
	rec := post(t, newTestServer(), "/bjt", url.Values{
		"beta": {"150"},
		"ib":   {"5, 15"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `value="150"`)
	assert.Contains(t, body, `value="5, 15"`)
	assert.Contains(t, body, "Beta = 150")
}

func TestSimulate_InputErrors(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name   string
		device string
		form   url.Values
		want   string
	}{
		{"empty base currents", "bjt", url.Values{"ib": {" "}}, "empty series"},
		{"bad base current", "bjt", url.Values{"ib": {"10, ten"}}, "ten"},
		{"beta above slider", "bjt", url.Values{"beta": {"500"}}, "must be within [50, 300]"},
		{"temperature below slider", "diode", url.Values{"temp": {"100"}}, "must be within [250, 400]"},
		{"zero saturation current", "diode", url.Values{"is": {"0"}}, "is=0"},
		{"unparsable saturation current", "diode", url.Values{"is": {"lots"}}, "lots"},
		{"zero pinch-off", "jfet", url.Values{"vp": {"0"}}, "pinch-off voltage must be non-zero"},
		{"empty gate voltages", "jfet", url.Values{"vgs": {""}}, "empty series"},
		{"alpha below slider", "nano", url.Values{"alpha": {"0.1"}}, "must be within [0.5, 3]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, "/"+tt.device, tt.form)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			body := rec.Body.String()
			assert.Contains(t, body, `class="warning"`)
			assert.Contains(t, body, tt.want)
			assert.NotContains(t, body, "<iframe")
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/diode", nil))

	assert.Contains(t, buf.String(), "path=/diode")
	assert.Contains(t, buf.String(), "status=418")
}
