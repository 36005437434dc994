// Package config loads server settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/Zachkp/portfolio/internal/workspace"
)

// Config holds every setting the server and import commands read. Keys are
// the lower-cased environment variable names (PORT -> port).
type Config struct {
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	WorkspaceDir     string   `koanf:"workspace_dir"`
	WorkspaceExclude []string `koanf:"workspace_exclude"`
	WorkspaceHidden  bool     `koanf:"workspace_hidden"`

	DataDir        string `koanf:"data_dir"`
	GitHubUsername string `koanf:"github_username"`
	GitHubToken    string `koanf:"github_token"`

	AvatarURL   string `koanf:"avatar_url"`
	LinkedInURL string `koanf:"linkedin_url"`
	CVURL       string `koanf:"cv_url"`

	SMTPHost string `koanf:"smtp_host"`
	SMTPPort string `koanf:"smtp_port"`
	SMTPUser string `koanf:"smtp_user"`
	SMTPPass string `koanf:"smtp_pass"`
	ToEmail  string `koanf:"to_email"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

var envKeys = map[string]bool{
	"port": true, "shutdown_timeout": true,
	"workspace_dir": true, "workspace_exclude": true, "workspace_hidden": true,
	"data_dir": true, "github_username": true, "github_token": true,
	"avatar_url": true, "linkedin_url": true, "cv_url": true,
	"smtp_host": true, "smtp_port": true, "smtp_user": true, "smtp_pass": true, "to_email": true,
	"log_level": true, "log_format": true,
}

// Load reads path (if non-empty) and then the environment. A missing file
// at an explicitly given path is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !envKeys[key] {
			return ""
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	// Comma-separated lists from the environment arrive as one string.
	if raw, ok := k.Get("workspace_exclude").(string); ok {
		if err := k.Set("workspace_exclude", splitList(raw)); err != nil {
			return nil, fmt.Errorf("parse workspace_exclude: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Port == 0 {
		cfg.Port = 5055
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if len(cfg.WorkspaceExclude) == 0 {
		cfg.WorkspaceExclude = workspace.DefaultExcludes
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format %q (want json or console)", c.LogFormat)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// SMTPConfigured reports whether mail credentials are present.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
