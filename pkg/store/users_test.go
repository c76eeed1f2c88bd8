package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_RegisterAndVerify(t *testing.T) {
	s, err := NewUsers("")
	require.NoError(t, err)

	require.NoError(t, s.Register("alice", "pw1"))

	user, err := s.Verify("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw1", user.PasswordHash)
}

func TestUsers_RegisterDuplicate(t *testing.T) {
	s, err := NewUsers("")
	require.NoError(t, err)

	require.NoError(t, s.Register("alice", "pw1"))
	assert.ErrorIs(t, s.Register("alice", "other"), ErrDuplicateUser)
	assert.Len(t, s.users, 1)
}

func TestUsers_RegisterCaseSensitive(t *testing.T) {
	s, err := NewUsers("")
	require.NoError(t, err)

	require.NoError(t, s.Register("alice", "pw1"))
	assert.NoError(t, s.Register("Alice", "pw2"))
}

func TestUsers_VerifyWrongPassword(t *testing.T) {
	s, err := NewUsers("")
	require.NoError(t, err)

	require.NoError(t, s.Register("alice", "pw1"))

	_, err = s.Verify("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUsers_VerifyUnknownUser(t *testing.T) {
	s, err := NewUsers("")
	require.NoError(t, err)

	_, err = s.Verify("nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUsers_PersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewUsers(dir)
	require.NoError(t, err)
	require.NoError(t, s.Register("alice", "pw1"))

	reloaded, err := NewUsers(dir)
	require.NoError(t, err)

	user, err := reloaded.Verify("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}
