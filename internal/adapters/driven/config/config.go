package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// Config is the application configuration. The zero value is not
// usable; start from Default().
type Config struct {
	API       APIConfig       `toml:"api"`
	Paths     PathsConfig     `toml:"paths"`
	Reports   ReportsConfig   `toml:"reports"`
	Retention RetentionConfig `toml:"retention"`
}

// APIConfig configures the consultation API client.
type APIConfig struct {
	// BaseURL is the consultation API endpoint.
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RequestsPerMinute is the client-side rate limit. Zero disables it.
	RequestsPerMinute int `toml:"requests_per_minute"`
}

// PathsConfig configures where the application reads and writes.
type PathsConfig struct {
	// OutputDir receives the generated reports.
	OutputDir string `toml:"output_dir"`

	// BackupDir receives timestamped copies of each report.
	BackupDir string `toml:"backup_dir"`

	// LogDir receives the day-stamped log files.
	LogDir string `toml:"log_dir"`

	// DataDir holds the run-history database.
	DataDir string `toml:"data_dir"`
}

// ReportsConfig configures report generation.
type ReportsConfig struct {
	// Formats lists the report formats to produce.
	Formats []string `toml:"formats"`
}

// RetentionConfig configures the housekeeping sweeps.
type RetentionConfig struct {
	// BackupDays is how long report backups are kept.
	BackupDays int `toml:"backup_days"`

	// LogDays is how long log files are kept.
	LogDays int `toml:"log_days"`

	// MinFreeDiskMB aborts a run when the output volume has less free
	// space than this.
	MinFreeDiskMB uint64 `toml:"min_free_disk_mb"`
}

// Default returns the built-in configuration, rooted at dir (the
// consulta config directory).
func Default(dir string) Config {
	return Config{
		API: APIConfig{
			BaseURL:           "https://consultaprocesos.ramajudicial.gov.co:448/api/v2",
			TimeoutSeconds:    30,
			RequestsPerMinute: 15,
		},
		Paths: PathsConfig{
			OutputDir: filepath.Join(dir, "resultados"),
			BackupDir: filepath.Join(dir, "backups"),
			LogDir:    filepath.Join(dir, "logs"),
			DataDir:   filepath.Join(dir, "data"),
		},
		Reports: ReportsConfig{
			Formats: []string{"txt", "csv", "json", "xlsx"},
		},
		Retention: RetentionConfig{
			BackupDays:    30,
			LogDays:       7,
			MinFreeDiskMB: 100,
		},
	}
}

// DefaultDir returns the consulta config directory, ~/.consulta.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".consulta"), nil
}

// Load reads the configuration rooted at dir: defaults, overlaid by
// the TOML file when present, overlaid by CONSULTA_* environment
// variables. A missing file is not an error. The result is validated.
func Load(dir string) (Config, error) {
	cfg := Default(dir)

	path := filepath.Join(dir, FileName)
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults apply.
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to the TOML file under dir, creating the directory
// if needed.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Validate checks that cfg is internally consistent.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	if c.API.RequestsPerMinute < 0 {
		return fmt.Errorf("api.requests_per_minute must not be negative, got %d", c.API.RequestsPerMinute)
	}
	if len(c.Reports.Formats) == 0 {
		return fmt.Errorf("reports.formats must name at least one format")
	}
	for _, format := range c.Reports.Formats {
		switch format {
		case "txt", "csv", "json", "xlsx":
		default:
			return fmt.Errorf("unknown report format %q", format)
		}
	}
	if c.Retention.BackupDays < 0 || c.Retention.LogDays < 0 {
		return fmt.Errorf("retention days must not be negative")
	}
	return nil
}

// applyEnv overlays CONSULTA_* environment variables onto cfg.
// Malformed numeric values are ignored rather than fatal; the file
// value stays in effect.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CONSULTA_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("CONSULTA_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("CONSULTA_REQUESTS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.RequestsPerMinute = n
		}
	}
	if v := os.Getenv("CONSULTA_OUTPUT_DIR"); v != "" {
		cfg.Paths.OutputDir = v
	}
	if v := os.Getenv("CONSULTA_BACKUP_DIR"); v != "" {
		cfg.Paths.BackupDir = v
	}
	if v := os.Getenv("CONSULTA_LOG_DIR"); v != "" {
		cfg.Paths.LogDir = v
	}
	if v := os.Getenv("CONSULTA_DATA_DIR"); v != "" {
		cfg.Paths.DataDir = v
	}
	if v := os.Getenv("CONSULTA_FORMATS"); v != "" {
		cfg.Reports.Formats = strings.Split(v, ",")
	}
}
