package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csbm/csbm"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	l := &Loader{lookupEnv: envFrom(nil)}
	cfg, err := l.Load("")
	require.NoError(t, err)

	assert.Equal(t, Default().Model, cfg.Model)
	assert.Equal(t, uint64(1), cfg.Seed)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, []string{"defaults"}, cfg.LoadedFrom)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
model:
  n: 200
  lambda: -0.5
seed: 42
output: data
`)
	l := &Loader{lookupEnv: envFrom(nil)}
	cfg, err := l.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Model.N)
	assert.Equal(t, -0.5, cfg.Model.Lambda)
	assert.Equal(t, 10, cfg.Model.P, "unset keys keep their default")
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "data", cfg.Output)
	assert.Equal(t, []string{"defaults", path}, cfg.LoadedFrom)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "model:\n  n: 200\nseed: 42\n")
	l := &Loader{lookupEnv: envFrom(map[string]string{
		"CSBM_N":       "300",
		"CSBM_RHO":     "0.75",
		"CSBM_SEED":    "7",
		"CSBM_WORKERS": "4",
		"CSBM_OUTPUT":  "env-out",
	})}
	cfg, err := l.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Model.N)
	assert.Equal(t, 0.75, cfg.Model.Rho)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "env-out", cfg.Output)
	assert.Equal(t, "environment", cfg.LoadedFrom[len(cfg.LoadedFrom)-1])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{"unknown key", "modle:\n  n: 3\n", nil},
		{"bad yaml", "model: [\n", nil},
		{"invalid rho", "model:\n  rho: 2\n", nil},
		{"zero workers", "workers: 0\n", nil},
		{"empty output", "output: \"\"\n", nil},
		{"bad env int", "", map[string]string{"CSBM_N": "many"}},
		{"bad env float", "", map[string]string{"CSBM_MU": "x"}},
		{"bad env seed", "", map[string]string{"CSBM_SEED": "-1"}},
		{"env makes model invalid", "", map[string]string{"CSBM_D": "-1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := ""
			if tc.body != "" {
				path = writeFile(t, tc.body)
			}
			l := &Loader{lookupEnv: envFrom(tc.env)}
			_, err := l.Load(path)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader("model:\n  n: 50\n  p: 3\n  d: 4\n  lambda: 2\n  mu: 0\n  rho: 1\n"))
	require.NoError(t, err)

	mc, err := cfg.ModelConfig()
	require.NoError(t, err)
	want, err := csbm.NewModelConfig(50, 3, 4, 2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, want, mc)

	cfg, err = Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default().Model, cfg.Model)
}
