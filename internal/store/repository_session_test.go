package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-hyper-monitor/internal/config"
	"github.com/MKhiriev/go-hyper-monitor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

// ── Token ────────────────────────────────────────────────────────────────────

func TestToken_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"token"}).AddRow("tok-123")
	mock.ExpectQuery("SELECT token").WillReturnRows(rows)

	token, err := repo.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToken_NoRowMeansNoSession(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT token").WillReturnError(sql.ErrNoRows)

	_, err := repo.Token(context.Background())

	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestToken_EmptyValueMeansNoSession(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"token"}).AddRow("")
	mock.ExpectQuery("SELECT token").WillReturnRows(rows)

	_, err := repo.Token(context.Background())

	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestToken_QueryFailure(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT token").WillReturnError(assert.AnError)

	_, err := repo.Token(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── SaveToken / DeleteToken ──────────────────────────────────────────────────

func TestSaveToken_Upserts(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO local_session").
		WithArgs("tok-456").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveToken(context.Background(), "tok-456"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveToken_ExecFailure(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO local_session").WillReturnError(assert.AnError)

	err := repo.SaveToken(context.Background(), "tok-456")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDeleteToken_AbsentRowIsNotAnError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM local_session").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteToken(context.Background()))
}

// ── Language preference ──────────────────────────────────────────────────────

func TestLanguage_DefaultEmpty(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs(languagePreferenceKey).
		WillReturnError(sql.ErrNoRows)

	language, err := repo.Language(context.Background())

	require.NoError(t, err)
	assert.Empty(t, language)
}

func TestSaveLanguage_Upserts(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO local_preferences").
		WithArgs(languagePreferenceKey, "en").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveLanguage(context.Background(), "en"))
}

// ── durability over a real SQLite file ───────────────────────────────────────

// TestSessionRepository_TokenSurvivesReopen verifies that a token written
// through one storage instance is readable from a fresh instance over the
// same backing file, i.e. the session survives a process restart.
func TestSessionRepository_TokenSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "client.db")
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: dsn}}

	first, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SessionRepository.SaveToken(ctx, "tok-persisted"))

	second, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)

	token, err := second.SessionRepository.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-persisted", token)

	// удаление стирает строку: третий экземпляр стартует анонимным
	require.NoError(t, second.SessionRepository.DeleteToken(ctx))

	third, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	_, err = third.SessionRepository.Token(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}
