// Package paths resolves the configuration directory and reads ROSTER_*
// environment overrides.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// AppName is the directory name used under platform config locations.
const AppName = "roster"

// Environment variable names for overrides.
const (
	EnvConfigDir = "ROSTER_CONFIG_DIR"
	EnvBackend   = "ROSTER_BACKEND"
	EnvSeed      = "ROSTER_SEED"
	EnvLogLevel  = "ROSTER_LOG_LEVEL"
)

// Env holds the ROSTER_* environment overrides. Unset variables leave the
// zero value (nil for Seed) so callers can tell "unset" from "false".
type Env struct {
	ConfigDir string `env:"ROSTER_CONFIG_DIR"`
	Backend   string `env:"ROSTER_BACKEND"`
	Seed      *bool  `env:"ROSTER_SEED"`
	LogLevel  string `env:"ROSTER_LOG_LEVEL"`
}

// LoadEnv parses the ROSTER_* variables from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/roster (fallback ~/.config/roster)
// macOS:   ~/Library/Application Support/roster
// Windows: %APPDATA%/roster
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > ROSTER_CONFIG_DIR env > DefaultConfigDir(). Explicit values
// are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	e, err := LoadEnv()
	if err != nil {
		return "", err
	}
	if e.ConfigDir != "" {
		return filepath.Abs(e.ConfigDir)
	}
	return DefaultConfigDir()
}
