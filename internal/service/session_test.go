// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-hyper-monitor/internal/adapter"
	"github.com/MKhiriev/go-hyper-monitor/internal/logger"
	"github.com/MKhiriev/go-hyper-monitor/internal/mock"
	"github.com/MKhiriev/go-hyper-monitor/internal/store"
	"github.com/MKhiriev/go-hyper-monitor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller, keepOnNetworkError bool) (
	ClientSessionService,
	*mock.MockSessionRepository,
	*mock.MockServerAdapter,
) {
	t.Helper()

	mockRepo := mock.NewMockSessionRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	svc := NewClientSessionService(mockRepo, mockAdapter, keepOnNetworkError, logger.Nop())

	return svc, mockRepo, mockAdapter
}

// ── LoadSession ──────────────────────────────────────────────────────────────

func TestClientSessionService_LoadSession_NoStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	mockRepo.EXPECT().Token(ctx).Return("", store.ErrLocalSessionNotFound)

	session := svc.LoadSession(ctx)

	assert.Equal(t, models.SessionAnonymous, session.Status)
	assert.Nil(t, session.User)
	assert.Empty(t, session.LastError)
}

func TestClientSessionService_LoadSession_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	profile := models.UserProfile{Email: "user@example.com", SubscriptionActive: true}

	gomock.InOrder(
		mockRepo.EXPECT().Token(ctx).Return("stored-token", nil),
		mockAdapter.EXPECT().SetToken("stored-token"),
		mockAdapter.EXPECT().Me(ctx).Return(profile, nil),
	)

	session := svc.LoadSession(ctx)

	require.NotNil(t, session.User)
	assert.Equal(t, models.SessionAuthenticated, session.Status)
	assert.Equal(t, "user@example.com", session.User.Email)

	// Session() возвращает то же состояние
	assert.Equal(t, session, svc.Session())
}

func TestClientSessionService_LoadSession_RejectedToken_ClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	authErr := &adapter.RequestError{Message: "Could not validate credentials", Status: http.StatusUnauthorized}

	gomock.InOrder(
		mockRepo.EXPECT().Token(ctx).Return("expired-token", nil),
		mockAdapter.EXPECT().SetToken("expired-token"),
		mockAdapter.EXPECT().Me(ctx).Return(models.UserProfile{}, authErr),
		mockAdapter.EXPECT().SetToken(""),
		mockRepo.EXPECT().DeleteToken(ctx).Return(nil),
	)

	session := svc.LoadSession(ctx)

	assert.Equal(t, models.SessionAnonymous, session.Status)
	assert.Nil(t, session.User)
	// отклонение токена — не ошибка для пользователя
	assert.Empty(t, session.LastError)
}

func TestClientSessionService_LoadSession_NetworkError_StrictPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	netErr := &adapter.RequestError{Message: "connection refused", Status: 0}

	gomock.InOrder(
		mockRepo.EXPECT().Token(ctx).Return("stored-token", nil),
		mockAdapter.EXPECT().SetToken("stored-token"),
		mockAdapter.EXPECT().Me(ctx).Return(models.UserProfile{}, netErr),
		// strict: сетевая ошибка тоже удаляет токен
		mockAdapter.EXPECT().SetToken(""),
		mockRepo.EXPECT().DeleteToken(ctx).Return(nil),
	)

	session := svc.LoadSession(ctx)

	assert.Equal(t, models.SessionAnonymous, session.Status)
	assert.Equal(t, "connection refused", session.LastError)
}

func TestClientSessionService_LoadSession_NetworkError_KeepPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl, true)
	ctx := context.Background()

	netErr := &adapter.RequestError{Message: "connection refused", Status: 0}

	gomock.InOrder(
		mockRepo.EXPECT().Token(ctx).Return("stored-token", nil),
		mockAdapter.EXPECT().SetToken("stored-token"),
		mockAdapter.EXPECT().Me(ctx).Return(models.UserProfile{}, netErr),
		// DeleteToken НЕ ожидается: токен сохраняется для повторной попытки
	)

	session := svc.LoadSession(ctx)

	assert.Equal(t, models.SessionAnonymous, session.Status)
	assert.Equal(t, "connection refused", session.LastError)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	creds := models.Credentials{Email: "user@example.com", Password: "secret"}
	resp := models.AuthResponse{
		Token: "fresh-token",
		User:  models.UserProfile{Email: "user@example.com"},
	}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, creds).Return(resp, nil),
		mockAdapter.EXPECT().SetToken("fresh-token"),
		mockRepo.EXPECT().SaveToken(ctx, "fresh-token").Return(nil),
	)

	session, err := svc.Login(ctx, creds)

	require.NoError(t, err)
	require.NotNil(t, session.User)
	assert.Equal(t, models.SessionAuthenticated, session.Status)
	assert.Equal(t, "user@example.com", session.User.Email)
}

func TestClientSessionService_Login_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	creds := models.Credentials{Email: "user@example.com", Password: "wrong"}
	loginErr := &adapter.RequestError{Message: "Incorrect email or password", Status: http.StatusUnauthorized}

	mockAdapter.EXPECT().Login(ctx, creds).Return(models.AuthResponse{}, loginErr)

	session, err := svc.Login(ctx, creds)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.Equal(t, models.SessionAnonymous, session.Status)
	assert.Equal(t, "Incorrect email or password", session.LastError)
}

func TestClientSessionService_Login_TokenPersistFailure_StillAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	creds := models.Credentials{Email: "user@example.com", Password: "secret"}
	resp := models.AuthResponse{Token: "fresh-token", User: models.UserProfile{Email: "user@example.com"}}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, creds).Return(resp, nil),
		mockAdapter.EXPECT().SetToken("fresh-token"),
		mockRepo.EXPECT().SaveToken(ctx, "fresh-token").Return(errors.New("disk full")),
	)

	// Ошибка записи токена не должна ронять логин
	session, err := svc.Login(ctx, creds)

	require.NoError(t, err)
	assert.Equal(t, models.SessionAuthenticated, session.Status)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientSessionService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	req := models.RegisterRequest{Email: "new@example.com", Password: "secret", VerificationCode: "123456"}
	resp := models.AuthResponse{Token: "new-token", User: models.UserProfile{Email: "new@example.com"}}

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, req).Return(resp, nil),
		mockAdapter.EXPECT().SetToken("new-token"),
		mockRepo.EXPECT().SaveToken(ctx, "new-token").Return(nil),
	)

	session, err := svc.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, models.SessionAuthenticated, session.Status)
}

func TestClientSessionService_Register_CodeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	req := models.RegisterRequest{Email: "new@example.com", Password: "secret", VerificationCode: "000000"}
	regErr := &adapter.RequestError{Message: "Invalid verification code", Status: http.StatusBadRequest}

	mockAdapter.EXPECT().Register(ctx, req).Return(models.AuthResponse{}, regErr)

	session, err := svc.Register(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.Equal(t, "Invalid verification code", session.LastError)
}

func TestClientSessionService_FailedAttempt_KeepsAuthenticatedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	creds := models.Credentials{Email: "user@example.com", Password: "secret"}
	resp := models.AuthResponse{Token: "fresh-token", User: models.UserProfile{Email: "user@example.com"}}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, creds).Return(resp, nil),
		mockAdapter.EXPECT().SetToken("fresh-token"),
		mockRepo.EXPECT().SaveToken(ctx, "fresh-token").Return(nil),
	)

	_, err := svc.Login(ctx, creds)
	require.NoError(t, err)

	// неудачная повторная попытка не должна разлогинить текущего пользователя
	req := models.RegisterRequest{Email: "other@example.com", Password: "secret", VerificationCode: "000000"}
	regErr := &adapter.RequestError{Message: "Invalid verification code", Status: http.StatusBadRequest}
	mockAdapter.EXPECT().Register(ctx, req).Return(models.AuthResponse{}, regErr)

	session, err := svc.Register(ctx, req)

	require.Error(t, err)
	assert.Equal(t, models.SessionAuthenticated, session.Status)
	require.NotNil(t, session.User)
	assert.Equal(t, "user@example.com", session.User.Email)
	assert.Equal(t, "Invalid verification code", session.LastError)
}

// ── RefreshUser ──────────────────────────────────────────────────────────────

func TestClientSessionService_RefreshUser_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl, false)

	mockAdapter.EXPECT().Token().Return("")

	session := svc.RefreshUser(context.Background())

	assert.Equal(t, models.SessionAnonymous, session.Status)
}

func TestClientSessionService_RefreshUser_UpdatesProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	updated := models.UserProfile{Email: "user@example.com", SubscriptionActive: true}

	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return("stored-token"),
		mockAdapter.EXPECT().Me(ctx).Return(updated, nil),
	)

	session := svc.RefreshUser(ctx)

	require.NotNil(t, session.User)
	assert.True(t, session.User.SubscriptionActive)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientSessionService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken(""),
		mockRepo.EXPECT().DeleteToken(ctx).Return(nil),
	)

	err := svc.Logout(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SessionAnonymous, svc.Session().Status)
}

func TestClientSessionService_Logout_DeleteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken(""),
		mockRepo.EXPECT().DeleteToken(ctx).Return(errors.New("db locked")),
	)

	err := svc.Logout(ctx)

	// ошибка возвращается, но сессия всё равно анонимна
	require.Error(t, err)
	assert.Equal(t, models.SessionAnonymous, svc.Session().Status)
}

// ── RequestVerificationCode ──────────────────────────────────────────────────

func TestClientSessionService_RequestVerificationCode_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl, false)
	ctx := context.Background()

	mockAdapter.EXPECT().RequestVerification(ctx, "new@example.com").Return(nil)

	require.NoError(t, svc.RequestVerificationCode(ctx, "new@example.com"))
}
