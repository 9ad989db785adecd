// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.NumFullSpins != 5 {
		t.Errorf("expected 5 full spins, got %d", cfg.NumFullSpins)
	}
	if cfg.AnimationDuration() != 4*time.Second {
		t.Errorf("expected 4s duration, got %v", cfg.AnimationDuration())
	}
	if cfg.PointerPositionDeg != 0 {
		t.Errorf("expected pointer at 0, got %f", cfg.PointerPositionDeg)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("NUM_FULL_SPINS", "8")
	t.Setenv("ANIMATION_DURATION_MS", "2500")
	t.Setenv("POINTER_POSITION_DEG", "90")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	spin := cfg.SpinConfig()
	if spin.NumFullSpins != 8 || spin.PointerPositionDeg != 90 {
		t.Errorf("unexpected spin config %+v", spin)
	}
	if cfg.AnimationDuration() != 2500*time.Millisecond {
		t.Errorf("expected 2.5s, got %v", cfg.AnimationDuration())
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SEED", "11")

	cfg, err := ParseFlags([]string{"-p", "8080", "-spins", "3", "-seed", "42"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Seed != 42 {
		t.Errorf("CLI should override env: expected seed 42, got %d", cfg.Seed)
	}
	if cfg.NumFullSpins != 3 {
		t.Errorf("expected 3 spins, got %d", cfg.NumFullSpins)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"zero spins", []string{"-spins", "0"}},
		{"negative duration", []string{"-duration", "-1"}},
		{"zero radius", []string{"-radius", "0"}},
		{"NaN radius", []string{"-radius", "NaN"}},
		{"infinite radius", []string{"-radius", "+Inf"}},
		{"NaN pointer", []string{"-pointer", "NaN"}},
		{"infinite pointer", []string{"-pointer", "-Inf"}},
		{"duration too long", []string{"-duration", "60001"}},
		{"bad port", []string{"-p", "70000"}},
		{"bad log level", []string{"-log-level", "loud"}},
		{"no max options", []string{"-max-options", "0"}},
		{"unknown flag", []string{"-nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFlags_InvalidEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for invalid PORT env variable")
	}
}

func TestParseFlags_NonFiniteEnv(t *testing.T) {
	t.Setenv("POINTER_POSITION_DEG", "NaN")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for NaN POINTER_POSITION_DEG")
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := loadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("QS_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QS_TEST_VALUE", "")
	os.Unsetenv("QS_TEST_VALUE")

	if err := loadEnvFile(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("QS_TEST_VALUE"); got != "from-file" {
		t.Errorf("expected value from file, got %q", got)
	}
}
