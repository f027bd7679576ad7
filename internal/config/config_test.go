package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "BIND_ADDR", "GIN_MODE", "SESSION_SECRET", "SECURE_COOKIES",
		"ASSET_DIR", "RESUME_PATH", "PROFILE_IMAGE", "VISITS_DB", "VISIT_RETENTION_DAYS", "ADMIN_TOKEN", "REMEMBER_THEME"} {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "test-version")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, "test-version", cfg.Version)
	assert.Equal(t, "/resume.pdf", cfg.Assets.ResumePath)
	assert.Equal(t, "/my.png", cfg.Assets.ProfileImage)
	assert.Equal(t, 365, cfg.Visits.RetentionDays)
	assert.False(t, cfg.Visits.Enabled())
	assert.False(t, cfg.RememberTheme)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
port: "9000"
mode: debug
assets:
  resume_path: /files/cv.pdf
visits:
  db_path: /tmp/visits.db
  retention_days: 30
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	t.Setenv("PORT", "9100")
	t.Setenv("VISIT_RETENTION_DAYS", "7")

	cfg, err := Load(path, "v1")
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port, "env wins")
	assert.Equal(t, "debug", cfg.Mode, "yaml applies")
	assert.Equal(t, "/files/cv.pdf", cfg.Assets.ResumePath)
	assert.Equal(t, 7, cfg.Visits.RetentionDays)
	assert.True(t, cfg.Visits.Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad mode", env: map[string]string{"GIN_MODE": "production"}},
		{name: "zero retention", env: map[string]string{"VISIT_RETENTION_DAYS": "0"}},
		{name: "relative resume", env: map[string]string{"RESUME_PATH": "resume.pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("", "v")
			assert.Error(t, err)
		})
	}
}
