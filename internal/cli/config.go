package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/roster/internal/paths"
	"github.com/mesh-intelligence/roster/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend  = "backend"
	cfgKeySeed     = "seed"
	cfgKeyLogLevel = "log_level"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Roster CLI configuration

# Repository backend: memory or sqlite (both in-memory, nothing is saved)
backend: memory

# Insert the two sample users when a session starts
seed: true

# Log level: debug, info, warn, error
log_level: info
`

// loadConfig builds the session Config. Precedence, highest first:
// flags, ROSTER_* environment, config.yaml, defaults.
// It creates the config directory and a default config.yaml on first run.
func loadConfig(configDir string, flags rootFlags, cmd *cobra.Command) (types.Config, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return types.Config{}, sysError(fmt.Errorf("ensure config dir: %w", err))
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, sysError(fmt.Errorf("ensure default config: %w", err))
	}

	v := viper.New()
	defaults := types.DefaultConfig()
	v.SetDefault(cfgKeyBackend, defaults.Backend)
	v.SetDefault(cfgKeySeed, defaults.Seed)
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w: %w", err, types.ErrInvalidInput)
		}
	}

	env, err := paths.LoadEnv()
	if err != nil {
		return types.Config{}, fmt.Errorf("%w: %w", err, types.ErrInvalidInput)
	}
	if env.Backend != "" {
		v.Set(cfgKeyBackend, env.Backend)
	}
	if env.Seed != nil {
		v.Set(cfgKeySeed, *env.Seed)
	}
	if env.LogLevel != "" {
		v.Set(cfgKeyLogLevel, env.LogLevel)
	}

	pf := cmd.Flags()
	if pf.Changed("backend") {
		v.Set(cfgKeyBackend, flags.backend)
	}
	if pf.Changed("no-seed") {
		v.Set(cfgKeySeed, !flags.noSeed)
	}
	if flags.verbose {
		v.Set(cfgKeyLogLevel, "debug")
	}

	cfg := types.Config{
		Backend:  v.GetString(cfgKeyBackend),
		Seed:     v.GetBool(cfgKeySeed),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config %s: %w", filepath.Join(configDir, configFileExt), err)
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect roster configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.flags.jsonMode {
				return printJSON(cmd, a.cfg)
			}
			out, err := yaml.Marshal(a.cfg)
			if err != nil {
				return sysError(fmt.Errorf("marshal config: %w", err))
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})
	return cmd
}
