package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/validator"
	"github.com/joho/godotenv"
)

const (
	BackendSynthetic = "synthetic"
	BackendRemote    = "remote"
)

type Config struct {
	App       AppConfig
	Board     BoardConfig
	Upstream  UpstreamConfig
	Synthetic SyntheticConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// BoardConfig selects the data backend and the calendar conventions of the grid
type BoardConfig struct {
	Backend   string
	Locale    string
	WeekStart string
	Timezone  string
	// RefreshInterval reloads a loaded board periodically; 0 disables it
	RefreshInterval time.Duration
}

// UpstreamConfig points the remote backend and the write proxy at the attendance API
type UpstreamConfig struct {
	BaseURL        string
	WriteURL       string
	Timeout        time.Duration
	MaxConcurrency int
}

type SyntheticConfig struct {
	RosterFile string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Board configuration
	refreshInterval, err := time.ParseDuration(getEnv("BOARD_REFRESH_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOARD_REFRESH_INTERVAL: %w", err)
	}

	config.Board = BoardConfig{
		Backend:         strings.ToLower(getEnv("BOARD_BACKEND", BackendSynthetic)),
		Locale:          getEnv("BOARD_LOCALE", "en-GB"),
		WeekStart:       getEnv("BOARD_WEEK_START", ""),
		Timezone:        getEnv("BOARD_TIMEZONE", "Local"),
		RefreshInterval: refreshInterval,
	}

	// Upstream configuration
	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	maxConcurrency, err := strconv.Atoi(getEnv("UPSTREAM_MAX_CONCURRENCY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_MAX_CONCURRENCY: %w", err)
	}

	baseURL := strings.TrimRight(getEnv("UPSTREAM_BASE_URL", ""), "/")
	config.Upstream = UpstreamConfig{
		BaseURL:        baseURL,
		WriteURL:       getEnv("UPSTREAM_WRITE_URL", ""),
		Timeout:        upstreamTimeout,
		MaxConcurrency: maxConcurrency,
	}
	if config.Upstream.WriteURL == "" && baseURL != "" {
		config.Upstream.WriteURL = baseURL + "/attendance"
	}

	config.Synthetic = SyntheticConfig{
		RosterFile: getEnv("SYNTHETIC_ROSTER_FILE", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !validator.IsInSlice(c.Board.Backend, []string{BackendSynthetic, BackendRemote}) {
		return fmt.Errorf("BOARD_BACKEND must be %q or %q", BackendSynthetic, BackendRemote)
	}
	if c.Board.WeekStart != "" {
		if _, ok := calendar.ParseWeekday(c.Board.WeekStart); !ok {
			return fmt.Errorf("invalid BOARD_WEEK_START %q", c.Board.WeekStart)
		}
	}
	if c.Board.RefreshInterval < 0 {
		return fmt.Errorf("BOARD_REFRESH_INTERVAL must not be negative")
	}
	if c.Board.Backend == BackendRemote && c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required for the remote backend")
	}
	if c.Upstream.MaxConcurrency < 1 {
		return fmt.Errorf("UPSTREAM_MAX_CONCURRENCY must be at least 1")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid BOARD_TIMEZONE: %w", err)
	}
	return nil
}

// Location resolves the timezone "today" is computed in
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Board.Timezone)
}

// Locale resolves BOARD_LOCALE, applying BOARD_WEEK_START when set
func (c *Config) Locale() calendar.Locale {
	locale := calendar.NewLocale(c.Board.Locale)
	if wd, ok := calendar.ParseWeekday(c.Board.WeekStart); ok {
		locale = locale.WithWeekStart(wd)
	}
	return locale
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
