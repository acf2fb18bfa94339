package memory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/roster/pkg/types"
)

func TestNewRepositorySeeds(t *testing.T) {
	r := NewRepository()

	got, err := r.List()
	require.NoError(t, err)
	if diff := cmp.Diff(types.SeedUsers(), got); diff != "" {
		t.Errorf("seed users mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, uint32(3), r.NextID())
}

func TestNewRepositoryWithoutSeed(t *testing.T) {
	r := NewRepository(WithoutSeed())

	got, err := r.List()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, uint32(1), r.NextID())

	u, err := r.Create("Carol", "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), u.ID)
}

func TestGet(t *testing.T) {
	r := NewRepository()

	u, ok, err := r.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice Johnson", u.Name)

	_, ok, err = r.Get(99)
	require.NoError(t, err, "missing id is not an error")
	assert.False(t, ok)
}

func TestCreate(t *testing.T) {
	r := NewRepository()

	var issued []uint32
	for _, name := range []string{"Charlie Brown", "Dana", "Eve"} {
		u, err := r.Create(name, name+"@example.com")
		require.NoError(t, err)

		got, ok, err := r.Get(u.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, u, got)

		for _, prev := range issued {
			assert.Greater(t, u.ID, prev)
		}
		issued = append(issued, u.ID)
	}
	assert.Equal(t, []uint32{3, 4, 5}, issued)
}

func TestCreateReturnsCopy(t *testing.T) {
	r := NewRepository()
	u, err := r.Create("Charlie Brown", "charlie@example.com")
	require.NoError(t, err)

	u.Name = "mutated"

	stored, _, err := r.Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Charlie Brown", stored.Name)
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	r := NewRepository()
	u, err := r.Create("Temp", "temp@example.com")
	require.NoError(t, err)
	_, err = r.Delete(u.ID)
	require.NoError(t, err)

	next, err := r.Create("Next", "next@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID+1, next.ID)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name  string
		id    uint32
		patch types.UserPatch
		want  types.User
	}{
		{
			name:  "name only leaves email untouched",
			id:    1,
			patch: types.UserPatch{Name: types.StringPtr("Alice Cooper")},
			want:  types.User{ID: 1, Name: "Alice Cooper", Email: "alice@example.com"},
		},
		{
			name:  "email only leaves name untouched",
			id:    2,
			patch: types.UserPatch{Email: types.StringPtr("robert@example.com")},
			want:  types.User{ID: 2, Name: "Bob Smith", Email: "robert@example.com"},
		},
		{
			name: "both fields",
			id:   1,
			patch: types.UserPatch{
				Name:  types.StringPtr("A. J."),
				Email: types.StringPtr("aj@example.com"),
			},
			want: types.User{ID: 1, Name: "A. J.", Email: "aj@example.com"},
		},
		{
			name:  "no-op update returns entity unchanged",
			id:    2,
			patch: types.UserPatch{},
			want:  types.User{ID: 2, Name: "Bob Smith", Email: "bob@example.com"},
		},
		{
			name:  "set to empty is distinct from no change",
			id:    1,
			patch: types.UserPatch{Name: types.StringPtr("")},
			want:  types.User{ID: 1, Name: "", Email: "alice@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRepository()

			got, err := r.Update(tt.id, tt.patch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			stored, ok, err := r.Get(tt.id)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, stored)
		})
	}
}

func TestMissingIDLeavesStateUnchanged(t *testing.T) {
	tests := []struct {
		name string
		op   func(r *Repository) error
	}{
		{
			name: "update",
			op: func(r *Repository) error {
				_, err := r.Update(42, types.UserPatch{Name: types.StringPtr("x")})
				return err
			},
		},
		{
			name: "delete",
			op: func(r *Repository) error {
				_, err := r.Delete(42)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRepository()
			before, err := r.List()
			require.NoError(t, err)
			nextBefore := r.NextID()

			err = tt.op(r)
			require.ErrorIs(t, err, types.ErrNotFound)

			after, err := r.List()
			require.NoError(t, err)
			assert.Equal(t, before, after)
			assert.Equal(t, nextBefore, r.NextID())
		})
	}
}

func TestDelete(t *testing.T) {
	r := NewRepository()

	u, err := r.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, "Bob Smith", u.Name)

	_, ok, err := r.Get(2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())

	_, err = r.Delete(2)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListOrderedByID(t *testing.T) {
	r := NewRepository(WithoutSeed())
	for i := 0; i < 20; i++ {
		_, err := r.Create("u", "u@example.com")
		require.NoError(t, err)
	}
	_, err := r.Delete(7)
	require.NoError(t, err)

	got, err := r.List()
	require.NoError(t, err)
	require.Len(t, got, 19)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}
}

func TestMutationsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRepository(WithLogger(zap.New(core)))

	u, err := r.Create("Charlie Brown", "charlie@example.com")
	require.NoError(t, err)
	_, err = r.Update(u.ID, types.UserPatch{Name: types.StringPtr("Chuck")})
	require.NoError(t, err)
	_, err = r.Delete(u.ID)
	require.NoError(t, err)

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{"user created", "user updated", "user deleted"}, messages)
	assert.Equal(t, u.ID, logs.All()[0].ContextMap()["id"])
}
