// Package sqlite implements a UserRepository on an in-memory SQLite
// database. Nothing is written to disk; the data lives as long as the
// Repository is open.
package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// Compile-time interface check.
var _ types.UserRepository = (*Repository)(nil)

// Repository implements types.UserRepository with SQLite as the query engine.
type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

// Option configures a Repository at construction.
type Option func(*options)

type options struct {
	seed   bool
	logger *zap.Logger
}

// WithoutSeed starts the repository empty with the counter at 1.
func WithoutSeed() Option {
	return func(o *options) { o.seed = false }
}

// WithSeed sets whether the seed users are inserted.
func WithSeed(seed bool) Option {
	return func(o *options) { o.seed = seed }
}

// WithLogger attaches a logger. Mutations are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewRepository opens a private in-memory database, creates the schema,
// and inserts the seed users unless WithoutSeed is given.
// The caller must Close the repository.
func NewRepository(opts ...Option) (*Repository, error) {
	o := options{seed: true, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Each connection to :memory: is a separate database; pin the pool to one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	r := &Repository{db: db, logger: o.logger}
	if o.seed {
		if err := r.seed(); err != nil {
			db.Close()
			return nil, fmt.Errorf("seeding users: %w", err)
		}
	}
	return r, nil
}

// Close releases the database. The data is discarded.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) seed() error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var next uint32 = 1
	for _, u := range types.SeedUsers() {
		if _, err := tx.Exec(
			"INSERT INTO users (id, name, email) VALUES (?, ?, ?)",
			u.ID, u.Name, u.Email,
		); err != nil {
			return fmt.Errorf("inserting user %d: %w", u.ID, err)
		}
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	if _, err := tx.Exec("UPDATE counters SET next_id = ? WHERE name = 'users'", next); err != nil {
		return fmt.Errorf("advancing counter: %w", err)
	}
	return tx.Commit()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func hydrateUser(row rowScanner) (types.User, error) {
	var (
		id          int64
		name, email string
	)
	if err := row.Scan(&id, &name, &email); err != nil {
		return types.User{}, err
	}
	return types.User{ID: uint32(id), Name: name, Email: email}, nil
}

// Get retrieves a user by ID. A missing row yields ok == false.
func (r *Repository) Get(id uint32) (types.User, bool, error) {
	row := r.db.QueryRow("SELECT id, name, email FROM users WHERE id = ?", id)
	u, err := hydrateUser(row)
	if err == sql.ErrNoRows {
		return types.User{}, false, nil
	}
	if err != nil {
		return types.User{}, false, fmt.Errorf("getting user %d: %w", id, err)
	}
	return u, true, nil
}

// Create inserts a user under the counter value and advances the counter
// in the same transaction.
func (r *Repository) Create(name, email string) (types.User, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return types.User{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var next int64
	if err := tx.QueryRow("SELECT next_id FROM counters WHERE name = 'users'").Scan(&next); err != nil {
		return types.User{}, fmt.Errorf("reading counter: %w", err)
	}

	u := types.User{ID: uint32(next), Name: name, Email: email}
	if _, err := tx.Exec(
		"INSERT INTO users (id, name, email) VALUES (?, ?, ?)",
		u.ID, u.Name, u.Email,
	); err != nil {
		return types.User{}, fmt.Errorf("inserting user: %w", err)
	}
	if _, err := tx.Exec("UPDATE counters SET next_id = next_id + 1 WHERE name = 'users'"); err != nil {
		return types.User{}, fmt.Errorf("advancing counter: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.User{}, fmt.Errorf("committing user: %w", err)
	}

	r.logger.Debug("user created", zap.Uint32("id", u.ID), zap.String("backend", types.BackendSQLite))
	return u, nil
}

// Update overwrites the supplied fields of the stored user.
func (r *Repository) Update(id uint32, patch types.UserPatch) (types.User, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return types.User{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	u, err := hydrateUser(tx.QueryRow("SELECT id, name, email FROM users WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return types.User{}, fmt.Errorf("updating user %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return types.User{}, fmt.Errorf("getting user %d: %w", id, err)
	}
	if patch.IsEmpty() {
		return u, nil
	}

	u = patch.Apply(u)
	if _, err := tx.Exec(
		"UPDATE users SET name = ?, email = ? WHERE id = ?",
		u.Name, u.Email, id,
	); err != nil {
		return types.User{}, fmt.Errorf("updating user %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return types.User{}, fmt.Errorf("committing user %d: %w", id, err)
	}

	r.logger.Debug("user updated", zap.Uint32("id", id), zap.String("backend", types.BackendSQLite))
	return u, nil
}

// Delete removes the user and returns what was stored.
func (r *Repository) Delete(id uint32) (types.User, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return types.User{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	u, err := hydrateUser(tx.QueryRow("SELECT id, name, email FROM users WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return types.User{}, fmt.Errorf("deleting user %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return types.User{}, fmt.Errorf("getting user %d: %w", id, err)
	}

	if _, err := tx.Exec("DELETE FROM users WHERE id = ?", id); err != nil {
		return types.User{}, fmt.Errorf("deleting user %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return types.User{}, fmt.Errorf("committing deletion of user %d: %w", id, err)
	}

	r.logger.Debug("user deleted", zap.Uint32("id", id), zap.String("backend", types.BackendSQLite))
	return u, nil
}

// List returns all users ordered by ascending ID.
func (r *Repository) List() ([]types.User, error) {
	rows, err := r.db.Query("SELECT id, name, email FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	result := []types.User{}
	for rows.Next() {
		u, err := hydrateUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return result, nil
}

// NextID returns the ID the next Create will assign.
func (r *Repository) NextID() (uint32, error) {
	var next int64
	if err := r.db.QueryRow("SELECT next_id FROM counters WHERE name = 'users'").Scan(&next); err != nil {
		return 0, fmt.Errorf("reading counter: %w", err)
	}
	return uint32(next), nil
}
