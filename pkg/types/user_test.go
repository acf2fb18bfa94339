package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPatchApply(t *testing.T) {
	base := User{ID: 7, Name: "Dana", Email: "dana@example.com"}

	tests := []struct {
		name  string
		patch UserPatch
		want  User
	}{
		{
			name:  "empty patch leaves user unchanged",
			patch: UserPatch{},
			want:  base,
		},
		{
			name:  "name only",
			patch: UserPatch{Name: StringPtr("Dana Scully")},
			want:  User{ID: 7, Name: "Dana Scully", Email: "dana@example.com"},
		},
		{
			name:  "email only",
			patch: UserPatch{Email: StringPtr("scully@fbi.gov")},
			want:  User{ID: 7, Name: "Dana", Email: "scully@fbi.gov"},
		},
		{
			name:  "explicit empty string clears the field",
			patch: UserPatch{Email: StringPtr("")},
			want:  User{ID: 7, Name: "Dana", Email: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Apply(base))
		})
	}
}

func TestUserPatchIsEmpty(t *testing.T) {
	assert.True(t, UserPatch{}.IsEmpty())
	assert.False(t, UserPatch{Name: StringPtr("")}.IsEmpty())
}

func TestSeedUsersReturnsFreshSlice(t *testing.T) {
	first := SeedUsers()
	first[0].Name = "changed"

	second := SeedUsers()
	assert.Equal(t, "Alice Johnson", second[0].Name)
	assert.Len(t, second, 2)
	assert.Equal(t, uint32(1), second[0].ID)
	assert.Equal(t, uint32(2), second[1].ID)
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorCode
	}{
		{nil, ""},
		{ErrNotFound, CodeNotFound},
		{fmt.Errorf("user 9: %w", ErrNotFound), CodeNotFound},
		{fmt.Errorf("divide: %w", ErrInvalidInput), CodeInvalidInput},
		{ErrBackendUnknown, CodeInvalidConfig},
		{fmt.Errorf("disk on fire"), CodeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.err))
	}
	assert.True(t, IsUserError(ErrNotFound))
	assert.False(t, IsUserError(nil))
	assert.False(t, IsUserError(fmt.Errorf("boom")))
}
