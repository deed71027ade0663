package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that take precedence over the config file.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
)

// Config represents the API server configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Logging    LoggingConfig    `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings.
// URL is a postgres:// connection string and is normally supplied via DATABASE_URL.
type DatabaseConfig struct {
	URL             string        `yaml:"url" validate:"required,url"`
	MaxOpenConns    int           `yaml:"max_open_conns" default:"10" validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns" default:"5" validate:"min=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string         `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string         `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string         `yaml:"output_path" default:"stdout"`
	Rotation   RotationConfig `yaml:"rotation"`
}

// RotationConfig controls the rolling log file used when OutputPath is a file.
type RotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" default:"100"`
	MaxBackups int  `yaml:"max_backups" default:"3"`
	MaxAgeDays int  `yaml:"max_age_days" default:"7"`
	Compress   bool `yaml:"compress"`
}

// MonitoringConfig contains metrics settings
type MonitoringConfig struct {
	Enabled     bool   `yaml:"enabled" default:"true"`
	MetricsPath string `yaml:"metrics_path" default:"/metrics"`
}

// RateLimitConfig configures the per-client request limiter. Zero disables it.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" validate:"min=0"`
	Burst             int `yaml:"burst" validate:"min=0"`
}

// Load builds the configuration from defaults, an optional YAML file and the environment.
func Load(configPath string) (*Config, error) {
	cfg := new(Config)
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate checks struct constraints and reports the first offending field by its YAML path.
func Validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Tag() == "required" {
			return fmt.Errorf("%s is required", field)
		}
		return fmt.Errorf("%s failed %q validation (value %v)", field, fe.Tag(), fe.Value())
	}
	return err
}
