package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/semisim/pkg/curve"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, curve.NewSweep(-1, 1, 500), cfg.Diode.Sweep)
	assert.Equal(t, []float64{10, 20, 30, 40}, cfg.BJT.Ib)
	assert.Equal(t, curve.NewSweep(0, 5, 200), cfg.JFET.Sweep)
	assert.Equal(t, curve.NewSweep(1, 6, 200), cfg.Nano.Sweep)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load("nope.yaml")
	assert.Error(t, err)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, DefaultPath, `
log_level: debug
format: json
diode:
  temp: 350
  sweep:
    start: -0.5
    stop: 0.8
bjt:
  ib: [5, 15]
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 350.0, cfg.Diode.Temp)
	assert.Equal(t, 1e-12, cfg.Diode.Is)
	assert.Equal(t, curve.NewSweep(-0.5, 0.8, 500), cfg.Diode.Sweep)
	assert.Equal(t, []float64{5, 15}, cfg.BJT.Ib)
	assert.Equal(t, 100.0, cfg.BJT.Beta)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "diode: [unclosed")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "cfg.yaml", "addr: \":7000\"\nformat: svg\n")

	t.Setenv("SEMISIM_ADDR", ":9090")
	t.Setenv("SEMISIM_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, ".env", "SEMISIM_FORMAT=html\n")
	// Restored on cleanup; godotenv only fills unset variables
	t.Setenv("SEMISIM_FORMAT", "")
	require.NoError(t, os.Unsetenv("SEMISIM_FORMAT"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Format)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SEMISIM_LOG_LEVEL", "loud")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate_RenderSize(t *testing.T) {
	cfg := Default()
	cfg.Render.Height = 0
	assert.Error(t, cfg.Validate())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLogLevel("trace")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
