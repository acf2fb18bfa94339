// Package memory implements the in-memory UserRepository.
// The repository owns a map of users keyed by ID and a counter for the
// next ID. It has no internal locking; wrap it with Synchronized when more
// than one goroutine may call it.
package memory

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// Compile-time interface check.
var _ types.UserRepository = (*Repository)(nil)

// Repository stores users in a map. The counter is always strictly greater
// than every ID it has issued, and IDs are never reused after Delete.
type Repository struct {
	users  map[uint32]types.User
	nextID uint32
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

// NewRepository creates a repository holding the seed users (IDs 1 and 2)
// with the counter at 3, unless WithoutSeed is given.
func NewRepository(opts ...Option) *Repository {
	o := options{seed: true, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Repository{
		users:  make(map[uint32]types.User),
		nextID: 1,
		logger: o.logger,
	}
	if o.seed {
		for _, u := range types.SeedUsers() {
			r.users[u.ID] = u
			if u.ID >= r.nextID {
				r.nextID = u.ID + 1
			}
		}
	}
	return r
}

// Get returns a copy of the user with the given ID.
func (r *Repository) Get(id uint32) (types.User, bool, error) {
	u, ok := r.users[id]
	return u, ok, nil
}

// Create stores a new user under the current counter value and advances it.
// It never fails.
func (r *Repository) Create(name, email string) (types.User, error) {
	u := types.User{ID: r.nextID, Name: name, Email: email}
	r.users[u.ID] = u
	r.nextID++

	r.logger.Debug("user created", zap.Uint32("id", u.ID))
	return u, nil
}

// Update overwrites the supplied fields of the stored user.
func (r *Repository) Update(id uint32, patch types.UserPatch) (types.User, error) {
	u, ok := r.users[id]
	if !ok {
		return types.User{}, fmt.Errorf("updating user %d: %w", id, types.ErrNotFound)
	}
	if patch.IsEmpty() {
		return u, nil
	}

	u = patch.Apply(u)
	r.users[id] = u

	r.logger.Debug("user updated",
		zap.Uint32("id", id),
		zap.Bool("name", patch.Name != nil),
		zap.Bool("email", patch.Email != nil))
	return u, nil
}

// Delete removes the user and returns what was stored.
func (r *Repository) Delete(id uint32) (types.User, error) {
	u, ok := r.users[id]
	if !ok {
		return types.User{}, fmt.Errorf("deleting user %d: %w", id, types.ErrNotFound)
	}
	delete(r.users, id)

	r.logger.Debug("user deleted", zap.Uint32("id", id))
	return u, nil
}

// List returns all users ordered by ascending ID.
func (r *Repository) List() ([]types.User, error) {
	result := make([]types.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Len returns the number of stored users.
func (r *Repository) Len() int {
	return len(r.users)
}

// NextID returns the ID the next Create will assign.
func (r *Repository) NextID() uint32 {
	return r.nextID
}
