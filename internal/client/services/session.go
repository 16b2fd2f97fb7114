// Package services contains the application services of the GophDiary client.
// This file defines the session holder: roster authentication and the single
// active identity, persisted so that it survives a restart.
package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

// SessionService holds at most one authenticated identity per process.
//
// Contract:
//   - Authenticate: exact match of both fields against the roster.
//   - Login: Authenticate, then SetActive.
//   - SetActive: remember the identity and persist it under kv.SessionKey.
//   - Clear: forget the identity and delete the persisted record.
//   - Restore: reload a persisted identity at startup; absent means logged out.
//   - Current: the active identity or nil.
type SessionService interface {
	Authenticate(username, password string) (*models.Identity, error)
	Login(ctx context.Context, username, password string) (*models.Identity, error)
	SetActive(ctx context.Context, identity *models.Identity) error
	Clear(ctx context.Context) error
	Restore(ctx context.Context) (*models.Identity, error)
	Current() *models.Identity
}

type sessionService struct {
	roster  []models.Identity
	records kv.Repository
	log     logging.Logger
	current *models.Identity
}

// NewSessionService binds the service to an immutable roster. The roster is
// copied so later changes by the caller have no effect.
func NewSessionService(roster []models.Identity, records kv.Repository, log logging.Logger) SessionService {
	r := make([]models.Identity, len(roster))
	copy(r, roster)
	return &sessionService{roster: r, records: records, log: log.With("component", "session")}
}

func (s *sessionService) Authenticate(username, password string) (*models.Identity, error) {
	for _, u := range s.roster {
		if u.Username == username &&
			subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1 {
			found := u
			return &found, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *sessionService) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	identity, err := s.Authenticate(username, password)
	if err != nil {
		s.log.Info(ctx, "login rejected", "user", username)
		return nil, err
	}
	if err := s.SetActive(ctx, identity); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "login successful", "user", identity.Username)
	return identity, nil
}

func (s *sessionService) SetActive(ctx context.Context, identity *models.Identity) error {
	b, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session encoding error: %w", err)
	}
	if err := s.records.Set(ctx, kv.SessionKey(), b); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	active := *identity
	s.current = &active
	return nil
}

func (s *sessionService) Clear(ctx context.Context) error {
	if err := s.records.Delete(ctx, kv.SessionKey()); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	if s.current != nil {
		s.log.Info(ctx, "logged out", "user", s.current.Username)
	}
	s.current = nil
	return nil
}

// Restore fails closed: a record that does not decode into an identity with
// a username is logged, deleted and treated as absent.
func (s *sessionService) Restore(ctx context.Context) (*models.Identity, error) {
	b, err := s.records.Get(ctx, kv.SessionKey())
	if err != nil {
		return nil, fmt.Errorf("session loading error: %w", err)
	}
	if b == nil {
		s.current = nil
		return nil, nil
	}

	var identity models.Identity
	if err := json.Unmarshal(b, &identity); err != nil || identity.Username == "" {
		s.log.Warn(ctx, "dropping corrupt session record", "key", kv.SessionKey().String(), "error", err)
		if err := s.records.Delete(ctx, kv.SessionKey()); err != nil {
			return nil, fmt.Errorf("session clearing error: %w", err)
		}
		s.current = nil
		return nil, nil
	}

	s.current = &identity
	s.log.Debug(ctx, "session restored", "user", identity.Username)
	return s.Current(), nil
}

func (s *sessionService) Current() *models.Identity {
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}
