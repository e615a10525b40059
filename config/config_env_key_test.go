package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"map": map[string]any{
			"accessToken": "",
			"flyToZoom":   15,
		},
		"viewer": map[string]any{
			"sessionIdleTtl": "30m",
		},
		"dataset": map[string]any{
			"source": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MAP_ACCESSTOKEN", want: "map.accessToken"},
		{envKey: "MAP_FLYTOZOOM", want: "map.flyToZoom"},
		{envKey: "VIEWER_SESSIONIDLETTL", want: "viewer.sessionIdleTtl"},
		{envKey: "DATASET_SOURCE", want: "dataset.source"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  serviceName: cleanbite
  log:
    level: debug
http:
  port: 8080
map:
  accessToken: from-file
  zoom: 12
viewer:
  sessionIdleTtl: 10m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o644))
	t.Chdir(dir)
	t.Setenv("MAP_ACCESSTOKEN", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "cleanbite", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.Map.AccessToken)
	assert.Equal(t, 10*time.Minute, cfg.Viewer.SessionIdleTTL)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []float64{-2.8, 54.05}, cfg.Map.Center)
	assert.InDelta(t, 12.0, cfg.Map.Zoom, 0)
	assert.InDelta(t, 15.0, cfg.Map.FlyToZoom, 0)
	assert.Equal(t, "data/restaurants.json", cfg.Dataset.Source)
	assert.Equal(t, 30*time.Minute, cfg.Viewer.SessionIdleTTL)
	assert.Equal(t, 1000, cfg.Viewer.MaxSessions)
}
