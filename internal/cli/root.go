// Package cli implements the roster command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/roster/internal/logging"
	"github.com/mesh-intelligence/roster/internal/paths"
	"github.com/mesh-intelligence/roster/internal/store"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	backend   string
	noSeed    bool
	jsonMode  bool
	verbose   bool
}

// app is the state of one CLI session. The repository is opened on first
// use and lives until the command finishes.
type app struct {
	flags  rootFlags
	cfg    types.Config
	logger *zap.Logger

	repo      types.UserRepository
	closeRepo store.CloseFunc
}

// NewRootCmd creates the top-level "roster" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "roster",
		Short: "An in-memory user roster with text and numeric helpers",
		Long: "Roster manages user records in memory for the length of one session\n" +
			"and exposes small text, numeric, and geometry helpers.",
		Version: Version,
		// Do not print usage or errors; run reports them with a code.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/roster)")
	root.PersistentFlags().StringVar(&a.flags.backend, "backend", "", "repository backend (memory, sqlite)")
	root.PersistentFlags().BoolVar(&a.flags.noSeed, "no-seed", false, "start with an empty repository")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newUserCmd(a))
	root.AddCommand(newProcessCmd(a))
	root.AddCommand(newReverseCmd(a))
	root.AddCommand(newWordsCmd(a))
	root.AddCommand(newDivideCmd(a))
	root.AddCommand(newDistanceCmd(a))
	root.AddCommand(newClassifyCmd(a))
	root.AddCommand(newCheckAddressCmd(a))
	root.AddCommand(newDemoCmd(a))

	return root, a
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one session with the given arguments and returns the exit
// code. The repository is closed whether or not the command succeeded.
func run(args []string, stdout, stderr io.Writer) int {
	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		reportError(stderr, err)
	}
	return exitCode(err)
}

// init resolves configuration and builds the session logger.
func (a *app) init(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir, a.flags, cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return sysError(err)
	}
	a.logger, _ = logging.WithSession(logger)
	a.logger.Debug("session started",
		zap.String("command", cmd.CommandPath()),
		zap.String("config_dir", configDir))
	return nil
}

// repository opens the configured backend on first call.
func (a *app) repository() (types.UserRepository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, closeFn, err := store.Open(a.cfg, a.logger)
	if err != nil {
		if types.IsUserError(err) {
			return nil, err
		}
		return nil, sysError(err)
	}
	a.repo, a.closeRepo = repo, closeFn
	return repo, nil
}

func (a *app) close() error {
	var err error
	if a.closeRepo != nil {
		err = a.closeRepo()
		a.repo, a.closeRepo = nil, nil
	}
	_ = a.logger.Sync()
	if err != nil {
		return sysError(fmt.Errorf("close repository: %w", err))
	}
	return nil
}

// systemError marks failures that are not the caller's fault.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysError(err error) error {
	if err == nil {
		return nil
	}
	return &systemError{err: err}
}

// exitCode maps err to the process exit code: 2 for system failures,
// 1 for everything else (bad arguments, NotFound, InvalidInput).
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

func reportError(w io.Writer, err error) {
	code := types.Code(err)
	if code == types.CodeUnknown && exitCode(err) == exitUserError {
		code = types.CodeInvalidInput
	}
	fmt.Fprintf(w, "error [%s]: %s\n", code, err)
}
