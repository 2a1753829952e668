package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, "git", cfg.API.Subject)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 1, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, []string{"git-basics"}, cfg.Content.Chapters)
	assert.Equal(t, "metadata.json", cfg.Content.MetadataFile)
	assert.Equal(t, "content.md", cfg.Content.ContentFile)
	assert.Equal(t, OnConflictFail, cfg.Sync.OnConflict)
	assert.Equal(t, "token.json", filepath.Base(cfg.Auth.TokenCachePath()))
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.RabbitMQ.Enabled)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("CMS_PASSWORD", "s3cret")
	path := writeConfig(t, `
api:
  base_url: https://cms.example.com/
  subject: docker
  retry:
    max_attempts: 3
    initial_backoff: 500ms
auth:
  email: admin@example.com
  password: ${CMS_PASSWORD}
sync:
  on_conflict: existing
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://cms.example.com", cfg.API.BaseURL)
	assert.Equal(t, "docker", cfg.API.Subject)
	assert.Equal(t, 3, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.API.Retry.InitialBackoff)
	assert.Equal(t, "admin@example.com", cfg.Auth.Email)
	assert.Equal(t, "s3cret", cfg.Auth.Password)
	assert.Equal(t, OnConflictExisting, cfg.Sync.OnConflict)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("TUTORIAL_SYNC_EMAIL", "ops@example.com")
	path := writeConfig(t, "auth:\n  email: admin@example.com\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", cfg.Auth.Email)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "api: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid"},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.API.BaseURL = "localhost" },
			wantErr: "api.base_url",
		},
		{
			name:    "empty subject",
			mutate:  func(c *Config) { c.API.Subject = " " },
			wantErr: "api.subject",
		},
		{
			name:    "unknown conflict policy",
			mutate:  func(c *Config) { c.Sync.OnConflict = "overwrite" },
			wantErr: "sync.on_conflict",
		},
		{
			name:    "negative attempts",
			mutate:  func(c *Config) { c.API.Retry.MaxAttempts = -1 },
			wantErr: "max_attempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.setDefaults()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "ledger", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=ledger sslmode=disable", d.DSN())
}
