package types

import "errors"

// UserRepository provides CRUD operations over User records.
// Every method returns copies; mutating a returned User never changes the
// stored record. The trailing error reports backend failures and the
// sentinel errors below.
type UserRepository interface {
	// Get retrieves the user with the given ID. A missing ID is an expected
	// outcome: ok is false and err is nil.
	Get(id uint32) (user User, ok bool, err error)

	// Create stores a new user under the next unused ID and returns it.
	Create(name, email string) (User, error)

	// Update overwrites the fields supplied in patch and returns the result.
	// Returns ErrNotFound if no user exists with that ID. An empty patch
	// returns the stored user unchanged.
	Update(id uint32, patch UserPatch) (User, error)

	// Delete removes the user with the given ID and returns it.
	// Returns ErrNotFound if no user exists with that ID.
	Delete(id uint32) (User, error)

	// List returns every stored user ordered by ascending ID.
	List() ([]User, error)
}

// Operation errors. Both leave repository state exactly as it was.
var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
)
