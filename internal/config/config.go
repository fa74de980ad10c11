// Package config loads pathwise settings from an optional TOML file and
// PATHWISE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const devJWTSecret = "pathwise-dev-secret-change-me"

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	LLM      LLMConfig
	Profile  ProfileConfig
	Log      LogConfig
}

type AppConfig struct {
	Name string
	Env  string // development, production
	Addr string
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

type LLMConfig struct {
	Enabled        bool
	Provider       string // gemini, ollama
	Endpoint       string
	APIKey         string
	Model          string
	Timeout        time.Duration
	RoadmapTimeout time.Duration
	MaxRetries     int
	LogCalls       bool
}

type ProfileConfig struct {
	MaxFailedEdits int
	EditWindow     time.Duration
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// Load reads configuration. When path is empty, pathwise.toml is looked up
// in the working directory and ~/.pathwise; a missing file is not an error.
// Environment variables override file values, e.g. PATHWISE_LLM_MODEL.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pathwise")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".pathwise"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("PATHWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("llm.enabled", true)
	v.SetDefault("llm.max_retries", 2)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Addr: v.GetString("app.addr"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("jwt.secret"),
			TTL:    v.GetDuration("jwt.ttl"),
			Issuer: v.GetString("jwt.issuer"),
		},
		LLM: LLMConfig{
			Enabled:        v.GetBool("llm.enabled"),
			Provider:       v.GetString("llm.provider"),
			Endpoint:       v.GetString("llm.endpoint"),
			APIKey:         v.GetString("llm.api_key"),
			Model:          v.GetString("llm.model"),
			Timeout:        v.GetDuration("llm.timeout"),
			RoadmapTimeout: v.GetDuration("llm.roadmap_timeout"),
			MaxRetries:     v.GetInt("llm.max_retries"),
			LogCalls:       v.GetBool("llm.log_calls"),
		},
		Profile: ProfileConfig{
			MaxFailedEdits: v.GetInt("profile.max_failed_edits"),
			EditWindow:     v.GetDuration("profile.edit_window"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "pathwise"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Addr == "" {
		cfg.App.Addr = ":8080"
	}
	if cfg.Database.Path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Database.Path = filepath.Join(home, ".pathwise", "pathwise.db")
		} else {
			cfg.Database.Path = "pathwise.db"
		}
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = devJWTSecret
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 24 * time.Hour
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "pathwise"
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "gemini"
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.LLM.Endpoint == "" {
		switch cfg.LLM.Provider {
		case "ollama":
			cfg.LLM.Endpoint = "http://localhost:11434"
		default:
			cfg.LLM.Endpoint = "https://generativelanguage.googleapis.com"
		}
	}
	if cfg.LLM.Model == "" {
		switch cfg.LLM.Provider {
		case "ollama":
			cfg.LLM.Model = "llama3.2"
		default:
			cfg.LLM.Model = "gemini-2.0-flash-lite"
		}
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
	if cfg.LLM.RoadmapTimeout == 0 {
		cfg.LLM.RoadmapTimeout = 60 * time.Second
	}
	if cfg.Profile.MaxFailedEdits == 0 {
		cfg.Profile.MaxFailedEdits = 5
	}
	if cfg.Profile.EditWindow == 0 {
		cfg.Profile.EditWindow = 10 * time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

func (c *Config) validate() error {
	switch c.App.Env {
	case "development", "test", "production":
	default:
		return fmt.Errorf("invalid app.env %q", c.App.Env)
	}
	if c.IsProduction() && (c.JWT.Secret == devJWTSecret || len(c.JWT.Secret) < 32) {
		return fmt.Errorf("jwt.secret must be set to at least 32 characters in production")
	}
	switch c.LLM.Provider {
	case "gemini", "ollama":
	default:
		return fmt.Errorf("invalid llm.provider %q (want gemini or ollama)", c.LLM.Provider)
	}
	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("llm.max_retries must be non-negative")
	}
	if c.Profile.MaxFailedEdits < 1 {
		return fmt.Errorf("profile.max_failed_edits must be positive")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q", c.Log.Format)
	}
	return nil
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
