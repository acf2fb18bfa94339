// Package store selects and opens the UserRepository backend named by a
// types.Config.
package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/roster/internal/memory"
	"github.com/mesh-intelligence/roster/internal/sqlite"
	"github.com/mesh-intelligence/roster/pkg/types"
)

// CloseFunc releases backend resources. It is safe to call once.
type CloseFunc func() error

// Open validates cfg and returns the selected repository with its close
// function. A nil logger is replaced by a no-op logger.
func Open(cfg types.Config, logger *zap.Logger) (types.UserRepository, CloseFunc, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("backend", cfg.Backend))

	switch cfg.Backend {
	case types.BackendMemory:
		repo := memory.NewRepository(memory.WithSeed(cfg.Seed), memory.WithLogger(logger))
		logger.Debug("repository opened", zap.Int("users", repo.Len()))
		return repo, func() error { return nil }, nil
	case types.BackendSQLite:
		repo, err := sqlite.NewRepository(sqlite.WithSeed(cfg.Seed), sqlite.WithLogger(logger))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite repository: %w", err)
		}
		logger.Debug("repository opened")
		return repo, repo.Close, nil
	default:
		return nil, nil, types.ErrBackendUnknown
	}
}
