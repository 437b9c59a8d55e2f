package db

import (
	"encoding/json"

	"github.com/feedbook/feedbook-be/model"
	"github.com/feedbook/feedbook-be/store"
)

// Sessions holds the zero-or-one current session, mirrored to the store under
// its own key.
type Sessions struct {
	store   store.Store
	current *model.Session
}

func loadSessions(s store.Store) (*Sessions, error) {
	blob, ok, err := s.Get(SessionKey)
	if err != nil {
		return nil, err
	}
	sessions := &Sessions{store: s}
	if !ok {
		return sessions, nil
	}
	var session model.Session
	if err := json.Unmarshal(blob, &session); err != nil {
		// malformed blob hydrates to "logged out"
		return sessions, nil
	}
	sessions.current = &session
	return sessions, nil
}

func (s *Sessions) Current() *model.Session {
	if s.current == nil {
		return nil
	}
	session := *s.current
	return &session
}

func (s *Sessions) Set(session *model.Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := s.store.Set(SessionKey, blob); err != nil {
		return err
	}
	cp := *session
	s.current = &cp
	return nil
}

func (s *Sessions) Clear() error {
	s.current = nil
	return s.store.Delete(SessionKey)
}
