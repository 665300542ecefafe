package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures what the console needs to reach the content API.
type Config struct {
	APIURL   string
	APIToken string
	// Actor identifies the operator in activity-log entries.
	Actor string
	// PageSize is zero when the file does not set it, so callers can layer
	// the persisted preference underneath.
	PageSize int
}

const (
	defaultConfigPath = "~/.config/lifelink/config.toml"
	defaultAPIURL     = "127.0.0.1:1337"

	envAPIURL   = "LIFELINK_API_URL"
	envAPIToken = "LIFELINK_API_TOKEN"
	envActor    = "LIFELINK_ACTOR"
)

// Load parses the config file, falling back to defaults when missing, then
// applies .env/environment overrides. The token never lives in the TOML
// file; it comes from the environment only.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIURL: defaultAPIURL}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL   string `toml:"api_url"`
		Actor    string `toml:"actor"`
		PageSize int    `toml:"page_size"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	cfg.Actor = strings.TrimSpace(raw.Actor)
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}

	return applyEnv(cfg), nil
}

// applyEnv layers .env and process environment values over the file config.
// A missing .env file is not an error.
func applyEnv(cfg Config) Config {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv(envAPIURL)); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envAPIToken)); v != "" {
		cfg.APIToken = v
	}
	if v := strings.TrimSpace(os.Getenv(envActor)); v != "" {
		cfg.Actor = v
	}
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
