// Package services holds the two service objects the presentation layer
// dispatches into. Both are constructed once at process start and injected;
// there is no ambient global state.
package services

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/feedbook/feedbook-be/app"
	"github.com/feedbook/feedbook-be/db"
	"github.com/feedbook/feedbook-be/model"
)

// AuthService owns the user table and the single current session. All
// lookups are linear scans over the in-memory table; every mutation rewrites
// the backing blobs.
type AuthService struct {
	mu       sync.Mutex
	db       *db.Database
	notifier *app.Notifier
}

func NewAuthService(database *db.Database, notifier *app.Notifier) *AuthService {
	return &AuthService{db: database, notifier: notifier}
}

// Signup creates an account and logs it in. Fails with DuplicateUserError on
// a case-sensitive exact email match against the existing table.
func (s *AuthService) Signup(email, password, displayName string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.db.Users.FindByEmail(email); existing != nil {
		return nil, &DuplicateUserError{Email: email}
	}

	user := model.User{
		Id:          uuid.NewString(),
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	}
	if err := s.db.Users.Append(user); err != nil {
		return nil, opFailed("signup", err)
	}

	session := user.Session()
	if err := s.db.Session.Set(session); err != nil {
		return nil, opFailed("signup", err)
	}

	s.notifier.Publish(app.ChangedUsers, app.ChangedSession)
	return session, nil
}

// Login establishes a session for the user matching both email and password
// exactly. The current session is left untouched on failure.
func (s *AuthService) Login(email, password string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.db.Users.FindByCredentials(email, password)
	if user == nil {
		return nil, &InvalidCredentialsError{}
	}

	session := user.Session()
	if err := s.db.Session.Set(session); err != nil {
		return nil, opFailed("login", err)
	}

	s.notifier.Publish(app.ChangedSession)
	return session, nil
}

// Logout clears the session. It always succeeds: a failure to delete the
// persisted session record is logged, not surfaced, since the in-memory
// session is gone either way.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Session.Clear(); err != nil {
		log.Println("error removing persisted session", err)
	}
	s.notifier.Publish(app.ChangedSession)
	return nil
}

func (s *AuthService) CurrentSession() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Session.Current()
}
