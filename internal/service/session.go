// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-hyper-monitor/internal/adapter"
	"github.com/MKhiriev/go-hyper-monitor/internal/logger"
	"github.com/MKhiriev/go-hyper-monitor/internal/store"
	"github.com/MKhiriev/go-hyper-monitor/models"
)

type clientSessionService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	// keepOnNetworkError keeps the stored token when a profile refresh
	// fails for reasons other than a 401/403, so a flaky network does not
	// log the user out.
	keepOnNetworkError bool

	mu      sync.RWMutex
	session models.Session
}

// NewClientSessionService builds the session state machine backed by the
// local token store and the server adapter. The initial state is loading
// until LoadSession has run.
func NewClientSessionService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, keepOnNetworkError bool, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessions:           sessions,
		adapter:            serverAdapter,
		logger:             log,
		keepOnNetworkError: keepOnNetworkError,
		session:            models.Session{Status: models.SessionLoading},
	}
}

func (s *clientSessionService) LoadSession(ctx context.Context) models.Session {
	token, err := s.sessions.Token(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			s.logger.Error().Err(err).Msg("read stored token")
		}
		return s.setAnonymous("")
	}

	s.adapter.SetToken(token)

	// email достаём из claims без проверки подписи, только для логов
	if email, claimErr := models.TokenEmail(token); claimErr == nil {
		s.logger.Debug().Str("email", email).Msg("restoring stored session")
	}

	profile, err := s.adapter.Me(ctx)
	if err != nil {
		return s.handleRefreshFailure(ctx, err)
	}

	return s.setAuthenticated(profile)
}

func (s *clientSessionService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := s.adapter.Login(ctx, creds)
	if err != nil {
		session := s.recordError(userMessage(err))
		return session, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	return s.establish(ctx, resp)
}

func (s *clientSessionService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	resp, err := s.adapter.Register(ctx, req)
	if err != nil {
		session := s.recordError(userMessage(err))
		return session, fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return s.establish(ctx, resp)
}

func (s *clientSessionService) RequestVerificationCode(ctx context.Context, email string) error {
	return s.adapter.RequestVerification(ctx, email)
}

func (s *clientSessionService) RefreshUser(ctx context.Context) models.Session {
	if s.adapter.Token() == "" {
		return s.setAnonymous("")
	}

	profile, err := s.adapter.Me(ctx)
	if err != nil {
		return s.handleRefreshFailure(ctx, err)
	}

	return s.setAuthenticated(profile)
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")
	s.setAnonymous("")

	if err := s.sessions.DeleteToken(ctx); err != nil {
		return fmt.Errorf("delete stored token: %w", err)
	}

	return nil
}

func (s *clientSessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// establish persists the token from a successful login/register response and
// promotes the session to authenticated. A persistence failure is logged but
// does not fail the login: the session simply will not survive a restart.
func (s *clientSessionService) establish(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	s.adapter.SetToken(resp.Token)

	if err := s.sessions.SaveToken(ctx, resp.Token); err != nil {
		s.logger.Error().Err(err).Msg("persist session token")
	}

	return s.setAuthenticated(resp.User), nil
}

// handleRefreshFailure decides what a failed profile fetch means for the
// session. A 401/403 is a definitive rejection: the token is dead, drop it.
// Anything else is treated per the keep-on-network-error policy.
func (s *clientSessionService) handleRefreshFailure(ctx context.Context, err error) models.Session {
	if adapter.IsAuthFailure(err) {
		s.logger.Info().Msg("stored token rejected, clearing session")
		s.adapter.SetToken("")
		if delErr := s.sessions.DeleteToken(ctx); delErr != nil {
			s.logger.Error().Err(delErr).Msg("delete rejected token")
		}
		return s.setAnonymous("")
	}

	s.logger.Warn().Err(err).Msg("profile refresh failed")

	if s.keepOnNetworkError {
		// Token stays in the adapter and the store so a later RefreshUser
		// can recover once the backend is reachable again.
		return s.setAnonymous(userMessage(err))
	}

	s.adapter.SetToken("")
	if delErr := s.sessions.DeleteToken(ctx); delErr != nil {
		s.logger.Error().Err(delErr).Msg("delete stored token")
	}
	return s.setAnonymous(userMessage(err))
}

func (s *clientSessionService) setAuthenticated(profile models.UserProfile) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{User: &profile, Status: models.SessionAuthenticated}
	return s.session
}

// recordError keeps Status and User as they are and only records the
// message: a failed login attempt must not demote an existing session.
func (s *clientSessionService) recordError(lastError string) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Status == models.SessionLoading {
		s.session.Status = models.SessionAnonymous
	}
	s.session.LastError = lastError
	return s.session
}

func (s *clientSessionService) setAnonymous(lastError string) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{Status: models.SessionAnonymous, LastError: lastError}
	return s.session
}

// userMessage extracts the human-readable part of a transport error for
// display in the UI.
func userMessage(err error) string {
	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}
