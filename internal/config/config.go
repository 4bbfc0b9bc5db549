package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/gymtrack/internal/gymapi"
)

// Config captures everything gymtrack reads at startup.
type Config struct {
	APIURL         string
	RequestTimeout time.Duration
	LogFile        string
	LogLevel       string
	Endpoints      gymapi.Endpoints
}

const (
	defaultConfigPath     = "~/.config/gymtrack/config.toml"
	defaultAPIURL         = "http://127.0.0.1:8080/api"
	defaultRequestTimeout = 5 * time.Second
	defaultLogFile        = "~/.local/state/gymtrack/gymtrack.log"
	defaultLogLevel       = "info"
)

// Environment variables that override the file.
const (
	EnvAPIURL   = "GYMTRACK_API_URL"
	EnvLogLevel = "GYMTRACK_LOG_LEVEL"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		RequestTimeout: defaultRequestTimeout,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		Endpoints:      gymapi.DefaultEndpoints(),
	}
}

// LoadEnvFile exports the variables of a dotenv file that are not already
// set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load locates and parses the gymtrack config, falling back to defaults when
// missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
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
		APIURL         string `toml:"api_url"`
		RequestTimeout string `toml:"request_timeout"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		Endpoints      struct {
			Members      string `toml:"members"`
			ListWorkouts string `toml:"list_workouts"`
			Workouts     string `toml:"workouts"`
		} `toml:"endpoints"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout %q is not a positive duration", v)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	cfg.Endpoints = mergeEndpoints(cfg.Endpoints, gymapi.Endpoints{
		Members:      raw.Endpoints.Members,
		ListWorkouts: raw.Endpoints.ListWorkouts,
		Workouts:     raw.Endpoints.Workouts,
	})

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

func mergeEndpoints(base, override gymapi.Endpoints) gymapi.Endpoints {
	if v := strings.TrimSpace(override.Members); v != "" {
		base.Members = v
	}
	if v := strings.TrimSpace(override.ListWorkouts); v != "" {
		base.ListWorkouts = v
	}
	if v := strings.TrimSpace(override.Workouts); v != "" {
		base.Workouts = v
	}
	return base
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
