package types

// User is a uniquely identified record managed by a UserRepository.
// ID is assigned by the repository on creation and never changes.
type User struct {
	ID    uint32 `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// UserPatch carries the fields an Update should overwrite.
// A nil field leaves the stored value untouched; a pointer to "" clears it.
type UserPatch struct {
	Name  *string
	Email *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil
}

// Apply returns u with the supplied patch fields overwritten.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}

// StringPtr returns a pointer to s, for building a UserPatch inline.
func StringPtr(s string) *string {
	return &s
}

// SeedUsers returns the records every repository starts with unless seeding
// is disabled. The slice is freshly allocated on each call.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Alice Johnson", Email: "alice@example.com"},
		{ID: 2, Name: "Bob Smith", Email: "bob@example.com"},
	}
}
