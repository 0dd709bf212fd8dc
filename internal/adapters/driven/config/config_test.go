package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Load(dir)

		require.NoError(t, err)
		assert.Equal(t, "https://consultaprocesos.ramajudicial.gov.co:448/api/v2", cfg.API.BaseURL)
		assert.Equal(t, 30, cfg.API.TimeoutSeconds)
		assert.Equal(t, 15, cfg.API.RequestsPerMinute)
		assert.Equal(t, []string{"txt", "csv", "json", "xlsx"}, cfg.Reports.Formats)
		assert.Equal(t, 30, cfg.Retention.BackupDays)
		assert.Equal(t, 7, cfg.Retention.LogDays)
		assert.Equal(t, filepath.Join(dir, "resultados"), cfg.Paths.OutputDir)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := `
[api]
base_url = "https://staging.example.com/api/v2"
requests_per_minute = 5

[reports]
formats = ["csv"]
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0600))

		cfg, err := Load(dir)

		require.NoError(t, err)
		assert.Equal(t, "https://staging.example.com/api/v2", cfg.API.BaseURL)
		assert.Equal(t, 5, cfg.API.RequestsPerMinute)
		assert.Equal(t, []string{"csv"}, cfg.Reports.Formats)
		// Untouched sections keep their defaults.
		assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("CONSULTA_BASE_URL", "https://env.example.com/api/v2")
		t.Setenv("CONSULTA_REQUESTS_PER_MINUTE", "3")
		t.Setenv("CONSULTA_FORMATS", "txt,json")

		cfg, err := Load(dir)

		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com/api/v2", cfg.API.BaseURL)
		assert.Equal(t, 3, cfg.API.RequestsPerMinute)
		assert.Equal(t, []string{"txt", "json"}, cfg.Reports.Formats)
	})

	t.Run("malformed numeric env value is ignored", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("CONSULTA_TIMEOUT_SECONDS", "soon")

		cfg, err := Load(dir)

		require.NoError(t, err)
		assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("not = [toml"), 0600))

		_, err := Load(dir)

		assert.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		dir := t.TempDir()
		content := `
[reports]
formats = ["pdf"]
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0600))

		_, err := Load(dir)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pdf")
	})
}

func TestSave(t *testing.T) {
	t.Run("round trips through the file", func(t *testing.T) {
		dir := t.TempDir()
		cfg := Default(dir)
		cfg.API.RequestsPerMinute = 7

		require.NoError(t, Save(dir, cfg))

		loaded, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, cfg, loaded)
	})

	t.Run("creates the directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "consulta")

		require.NoError(t, Save(dir, Default(dir)))

		_, err := os.Stat(filepath.Join(dir, FileName))
		assert.NoError(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects non-http base url", func(t *testing.T) {
		cfg := Default(t.TempDir())
		cfg.API.BaseURL = "ftp://example.com"

		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects zero timeout", func(t *testing.T) {
		cfg := Default(t.TempDir())
		cfg.API.TimeoutSeconds = 0

		assert.Error(t, cfg.Validate())
	})

	t.Run("allows rate limit disabled", func(t *testing.T) {
		cfg := Default(t.TempDir())
		cfg.API.RequestsPerMinute = 0

		assert.NoError(t, cfg.Validate())
	})
}
