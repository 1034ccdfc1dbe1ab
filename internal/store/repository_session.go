package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-hyper-monitor/internal/logger"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) Token(ctx context.Context) (string, error) {
	var token string

	row := s.DB.QueryRowContext(ctx, getSessionToken)
	if err := row.Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLocalSessionNotFound
		}
		s.logger.Err(err).
			Str("func", "sessionRepository.Token").
			Msg("failed to read session token")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	if token == "" {
		return "", ErrLocalSessionNotFound
	}

	return token, nil
}

func (s *sessionRepository) SaveToken(ctx context.Context, token string) error {
	if _, err := s.DB.ExecContext(ctx, saveSessionToken, token); err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.SaveToken").
			Msg("failed to upsert session token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) DeleteToken(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, deleteSessionToken); err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.DeleteToken").
			Msg("failed to delete session token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) Language(ctx context.Context) (string, error) {
	var language string

	row := s.DB.QueryRowContext(ctx, getPreference, languagePreferenceKey)
	if err := row.Scan(&language); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		s.logger.Err(err).
			Str("func", "sessionRepository.Language").
			Msg("failed to read language preference")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return language, nil
}

func (s *sessionRepository) SaveLanguage(ctx context.Context, language string) error {
	if _, err := s.DB.ExecContext(ctx, savePreference, languagePreferenceKey, language); err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.SaveLanguage").
			Msg("failed to upsert language preference")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
