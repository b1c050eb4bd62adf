// Package config resolves startup settings from a .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Front-ends selectable with -ui.
const (
	UITea   = "tea"
	UITcell = "tcell"
	UIPlain = "plain"
)

// DefaultEnvFile is read if present.
const DefaultEnvFile = ".env"

type Config struct {
	Rows     int
	Cols     int
	Interval time.Duration
	// Seed 0 means seed from the clock.
	Seed     int64
	UI       string
	LogPath  string
	LogLevel slog.Level
}

func Default() Config {
	return Config{
		Rows:     15,
		Cols:     20,
		Interval: 200 * time.Millisecond,
		UI:       UITea,
		LogPath:  "snake.log",
		LogLevel: slog.LevelInfo,
	}
}

// Load reads DefaultEnvFile (if any), then the environment, then args.
func Load(args []string) (Config, error) {
	return LoadWithEnvFile(DefaultEnvFile, args)
}

// LoadWithEnvFile is Load with an explicit .env path. Variables already set
// in the process environment win over the file.
func LoadWithEnvFile(envFile string, args []string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	def := Default()
	level := getEnvOrDefault("SNAKE_LOG_LEVEL", def.LogLevel.String())

	fset := flag.NewFlagSet("snake", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	rows := fset.Int("rows", getEnvIntOrDefault("SNAKE_ROWS", def.Rows), "Grid rows")
	cols := fset.Int("cols", getEnvIntOrDefault("SNAKE_COLS", def.Cols), "Grid columns")
	interval := fset.Duration("interval", getEnvDurationOrDefault("SNAKE_INTERVAL", def.Interval), "Time between ticks")
	seed := fset.Int64("seed", getEnvInt64OrDefault("SNAKE_SEED", def.Seed), "Food RNG seed (0 = time based)")
	ui := fset.String("ui", getEnvOrDefault("SNAKE_UI", def.UI), "Front-end: tea, tcell or plain")
	logPath := fset.String("log", getEnvOrDefault("SNAKE_LOG", def.LogPath), "Log file path (empty disables logging)")
	logLevel := fset.String("log-level", level, "Log level: debug, info, warn, error")
	if err := fset.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	cfg := Config{
		Rows:     *rows,
		Cols:     *cols,
		Interval: *interval,
		Seed:     *seed,
		UI:       strings.ToLower(*ui),
		LogPath:  *logPath,
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return Config{}, fmt.Errorf("log level %q: %w", *logLevel, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 2 || c.Rows*c.Cols < 3 {
		return fmt.Errorf("grid %dx%d too small", c.Rows, c.Cols)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	switch c.UI {
	case UITea, UITcell, UIPlain:
	default:
		return fmt.Errorf("unknown ui %q", c.UI)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64OrDefault(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
