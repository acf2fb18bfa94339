package types

import "errors"

// Config holds backend selection and session parameters for store.Open.
type Config struct {
	Backend  string `json:"backend" yaml:"backend" mapstructure:"backend"`
	Seed     bool   `json:"seed" yaml:"seed" mapstructure:"seed"`
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Default values applied when config.yaml, the environment, and flags are silent.
const (
	DefaultBackend  = BackendMemory
	DefaultLogLevel = "info"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

var knownLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config with seeding enabled on the memory backend.
func DefaultConfig() Config {
	return Config{
		Backend:  DefaultBackend,
		Seed:     true,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty LogLevel is accepted and means info.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
