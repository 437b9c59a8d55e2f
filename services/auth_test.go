package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbook/feedbook-be/app"
	"github.com/feedbook/feedbook-be/db"
	"github.com/feedbook/feedbook-be/store"
)

func newAuthService(t *testing.T) (*AuthService, *db.Database, store.Store) {
	t.Helper()
	s := store.NewMemory()
	database, err := db.Open(s)
	require.NoError(t, err)
	return NewAuthService(database, app.NewNotifier()), database, s
}

// TestSignupEstablishesSession verifies signup grows the table by one and
// logs the new user in without exposing the password.
func TestSignupEstablishesSession(t *testing.T) {
	auth, database, _ := newAuthService(t)

	session, err := auth.Signup("a@x.com", "secret", "Alice")
	require.NoError(t, err)

	assert.Equal(t, 1, database.Users.Len())
	assert.NotEmpty(t, session.Id)
	assert.Equal(t, "a@x.com", session.Email)
	assert.Equal(t, "Alice", session.DisplayName)
	require.NotNil(t, auth.CurrentSession())
	assert.Equal(t, *session, *auth.CurrentSession())
}

// TestSignupDuplicateEmail verifies a duplicate email leaves the table
// unchanged and surfaces DuplicateUserError.
func TestSignupDuplicateEmail(t *testing.T) {
	auth, database, _ := newAuthService(t)

	_, err := auth.Signup("a@x.com", "secret", "Alice")
	require.NoError(t, err)

	_, err = auth.Signup("a@x.com", "other", "Alice Again")
	var dup *DuplicateUserError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a@x.com", dup.Email)
	assert.Equal(t, 1, database.Users.Len())
}

// TestSignupDistinctEmails verifies each distinct email grows the table by
// exactly one.
func TestSignupDistinctEmails(t *testing.T) {
	auth, database, _ := newAuthService(t)

	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := auth.Signup(email, "pw", "User")
		require.NoError(t, err)
		assert.Equal(t, i+1, database.Users.Len())
	}
}

func TestLogin(t *testing.T) {
	auth, _, _ := newAuthService(t)
	_, err := auth.Signup("a@x.com", "secret", "Alice")
	require.NoError(t, err)
	require.NoError(t, auth.Logout())

	session, err := auth.Login("a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Alice", session.DisplayName)
	assert.NotNil(t, auth.CurrentSession())
}

// TestLoginFailureLeavesSessionUnchanged verifies a bad login raises
// InvalidCredentialsError and keeps whatever session was active.
func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	auth, _, _ := newAuthService(t)
	alice, err := auth.Signup("a@x.com", "secret", "Alice")
	require.NoError(t, err)

	var invalid *InvalidCredentialsError
	_, err = auth.Login("a@x.com", "wrong")
	require.ErrorAs(t, err, &invalid)
	_, err = auth.Login("nobody@x.com", "secret")
	require.ErrorAs(t, err, &invalid)

	require.NotNil(t, auth.CurrentSession())
	assert.Equal(t, *alice, *auth.CurrentSession())
}

// TestLogoutAlwaysSucceeds runs logout from every prior state.
func TestLogoutAlwaysSucceeds(t *testing.T) {
	auth, _, _ := newAuthService(t)

	require.NoError(t, auth.Logout(), "logout with no session")
	assert.Nil(t, auth.CurrentSession())

	_, err := auth.Signup("a@x.com", "secret", "Alice")
	require.NoError(t, err)
	require.NoError(t, auth.Logout())
	assert.Nil(t, auth.CurrentSession())

	require.NoError(t, auth.Logout(), "logout twice in a row")
}

// TestSessionPersistedAcrossRestart verifies the session blob is mirrored to
// the store and hydrates on a fresh process.
func TestSessionPersistedAcrossRestart(t *testing.T) {
	auth, _, s := newAuthService(t)
	session, err := auth.Signup("a@x.com", "secret", "Alice")
	require.NoError(t, err)

	reopened, err := db.Open(s)
	require.NoError(t, err)
	restarted := NewAuthService(reopened, app.NewNotifier())

	require.NotNil(t, restarted.CurrentSession())
	assert.Equal(t, *session, *restarted.CurrentSession())
}

// TestAuthPublishesChanges verifies mutating calls notify subscribers.
func TestAuthPublishesChanges(t *testing.T) {
	s := store.NewMemory()
	database, err := db.Open(s)
	require.NoError(t, err)
	notifier := app.NewNotifier()
	auth := NewAuthService(database, notifier)

	var changes []app.Change
	notifier.Subscribe(func(change app.Change) {
		changes = append(changes, change)
	})

	_, err = auth.Signup("a@x.com", "secret", "Alice")
	require.NoError(t, err)
	assert.Equal(t, []app.Change{app.ChangedUsers, app.ChangedSession}, changes)

	changes = nil
	require.NoError(t, auth.Logout())
	assert.Equal(t, []app.Change{app.ChangedSession}, changes)
}
