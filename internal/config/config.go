package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/thronedex/internal/thronesapi"
)

// Config captures the settings thronedex reads at startup.
type Config struct {
	APIURL         string `env:"THRONEDEX_API_URL"`
	Locale         string `env:"THRONEDEX_LOCALE"`
	TimeoutSeconds int    `env:"THRONEDEX_TIMEOUT_SECONDS"`
	LogFile        string `env:"THRONEDEX_LOG_FILE"`
}

const (
	defaultConfigPath     = "~/.config/thronedex/config.toml"
	defaultLocale         = "en"
	defaultTimeoutSeconds = 10
	defaultLogFile        = "~/.local/state/thronedex/thronedex.log"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:         thronesapi.DefaultBaseURL,
		Locale:         defaultLocale,
		TimeoutSeconds: defaultTimeoutSeconds,
		LogFile:        mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing, then applies THRONEDEX_* environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	bytes, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	if bytes != nil {
		var raw struct {
			APIURL         string `toml:"api_url"`
			Locale         string `toml:"locale"`
			TimeoutSeconds int    `toml:"timeout_seconds"`
			LogFile        string `toml:"log_file"`
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.APIURL = strings.TrimSpace(raw.APIURL)
		cfg.Locale = strings.TrimSpace(raw.Locale)
		cfg.TimeoutSeconds = raw.TimeoutSeconds
		cfg.LogFile = strings.TrimSpace(raw.LogFile)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) normalize() {
	c.APIURL = strings.TrimSpace(c.APIURL)
	if c.APIURL == "" {
		c.APIURL = thronesapi.DefaultBaseURL
	}
	c.Locale = strings.TrimSpace(c.Locale)
	if c.Locale == "" {
		c.Locale = defaultLocale
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	c.LogFile = strings.TrimSpace(c.LogFile)
	switch c.LogFile {
	case "":
		c.LogFile = mustExpand(defaultLogFile)
	case "-", "off", "none":
		c.LogFile = ""
	default:
		c.LogFile = mustExpand(c.LogFile)
	}
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return bytes, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
