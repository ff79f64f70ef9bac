package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where hackdex reads its catalog from and where it logs.
type Config struct {
	BaseURL        string
	CatalogPath    string
	NamesPath      string
	RequestTimeout time.Duration
	LogFile        string
}

const (
	defaultConfigPath     = "~/.config/hackdex/config.toml"
	defaultBaseURL        = "https://hackdex.app/"
	defaultCatalogPath    = "db.json"
	defaultNamesPath      = "pretty.json"
	defaultRequestTimeout = 15 * time.Second
	defaultLogFile        = "~/.local/state/hackdex/hackdex.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL:        defaultBaseURL,
		CatalogPath:    defaultCatalogPath,
		NamesPath:      defaultNamesPath,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        mustExpand(defaultLogFile),
	}
}

// Load locates and parses the hackdex config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL        string `toml:"base_url"`
		CatalogPath    string `toml:"catalog_path"`
		NamesPath      string `toml:"names_path"`
		TimeoutSeconds int    `toml:"request_timeout_seconds"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(raw.CatalogPath); v != "" {
		cfg.CatalogPath = v
	}
	if v := strings.TrimSpace(raw.NamesPath); v != "" {
		cfg.NamesPath = v
	}
	if raw.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	return cfg, nil
}

// LogPath returns the diagnostics log file, defaulting when unset.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return mustExpand(defaultLogFile)
	}
	return c.LogFile
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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
