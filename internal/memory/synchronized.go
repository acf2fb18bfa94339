package memory

import (
	"sync"

	"github.com/mesh-intelligence/roster/pkg/types"
)

var _ types.UserRepository = (*synchronized)(nil)

// synchronized serializes every call to the wrapped repository with one
// mutex, so the map and counter change together.
type synchronized struct {
	mu   sync.Mutex
	repo types.UserRepository
}

// Synchronized wraps repo so it may be shared by concurrent callers.
func Synchronized(repo types.UserRepository) types.UserRepository {
	if s, ok := repo.(*synchronized); ok {
		return s
	}
	return &synchronized{repo: repo}
}

func (s *synchronized) Get(id uint32) (types.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Get(id)
}

func (s *synchronized) Create(name, email string) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Create(name, email)
}

func (s *synchronized) Update(id uint32, patch types.UserPatch) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Update(id, patch)
}

func (s *synchronized) Delete(id uint32) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(id)
}

func (s *synchronized) List() ([]types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.List()
}
