package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-spin/wheel"
)

// MaxAnimationDurationMs bounds a single spin. Keyframe responses grow
// with duration times fps.
const MaxAnimationDurationMs = 60000

// DefaultEnvFile is loaded when present. Variables already set win.
const DefaultEnvFile = ".env"

type Config struct {
	Port                int     `env:"PORT" envDefault:"3318"`
	NumFullSpins        int     `env:"NUM_FULL_SPINS" envDefault:"5"`
	AnimationDurationMs int     `env:"ANIMATION_DURATION_MS" envDefault:"4000"`
	PointerPositionDeg  float64 `env:"POINTER_POSITION_DEG" envDefault:"0"`
	WheelRadius         float64 `env:"WHEEL_RADIUS" envDefault:"150"`
	MaxOptions          int     `env:"MAX_OPTIONS" envDefault:"24"`
	MaxWheels           int     `env:"MAX_WHEELS" envDefault:"1000"`
	LogLevel            string  `env:"LOG_LEVEL" envDefault:"info"`
	// Seed makes winner selection reproducible. 0 means crypto randomness.
	Seed uint64 `env:"SEED" envDefault:"0"`
}

// ParseFlags loads .env, reads the environment, then applies CLI flags on
// top. CLI beats env beats defaults.
func ParseFlags(args []string) (Config, error) {
	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	fs := flag.NewFlagSet("quickly-spin", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.IntVar(&cfg.NumFullSpins, "spins", cfg.NumFullSpins, "Full turns before the wheel settles")
	fs.IntVar(&cfg.AnimationDurationMs, "duration", cfg.AnimationDurationMs, "Spin animation length in milliseconds")
	fs.Float64Var(&cfg.PointerPositionDeg, "pointer", cfg.PointerPositionDeg, "Pointer position in degrees, 0 = top")
	fs.Float64Var(&cfg.WheelRadius, "radius", cfg.WheelRadius, "Default wheel radius for geometry and SVG")
	fs.IntVar(&cfg.MaxOptions, "max-options", cfg.MaxOptions, "Maximum options per wheel")
	fs.IntVar(&cfg.MaxWheels, "max-wheels", cfg.MaxWheels, "Maximum wheels held in memory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for crypto randomness")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if c.NumFullSpins < 1 {
		return errors.New("spins must be at least 1")
	}
	if c.AnimationDurationMs <= 0 || c.AnimationDurationMs > MaxAnimationDurationMs {
		return fmt.Errorf("duration must be between 1 and %d ms", MaxAnimationDurationMs)
	}
	if !finite(c.WheelRadius) || c.WheelRadius <= 0 {
		return errors.New("radius must be a positive number")
	}
	if !finite(c.PointerPositionDeg) {
		return errors.New("pointer must be a finite number of degrees")
	}
	if c.MaxOptions < 1 {
		return errors.New("max-options must be at least 1")
	}
	if c.MaxWheels < 1 {
		return errors.New("max-wheels must be at least 1")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (c Config) SpinConfig() wheel.SpinConfig {
	return wheel.SpinConfig{
		NumFullSpins:       c.NumFullSpins,
		PointerPositionDeg: c.PointerPositionDeg,
	}
}

func (c Config) AnimationDuration() time.Duration {
	return time.Duration(c.AnimationDurationMs) * time.Millisecond
}

// SlogLevel returns the configured level, info if unparseable.
func (c Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
