package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-hyper-monitor/internal/mock"
	"github.com/MKhiriev/go-hyper-monitor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	walletAddr = "0x" + strings.Repeat("a", 40)
	txHash     = "0x" + strings.Repeat("f", 64)
)

func newTestSettingsSvc(ctrl *gomock.Controller) (SettingsService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockRepo := mock.NewMockSessionRepository(ctrl)
	return NewSettingsService(mockAdapter, mockRepo), mockAdapter, mockRepo
}

func TestSettingsService_MonitorConfig_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSettingsSvc(ctrl)
	ctx := context.Background()

	cfg := models.MonitorConfig{WalletAddresses: []string{walletAddr}, TelegramBotToken: "tg-token", Language: "zh"}

	mockAdapter.EXPECT().SaveMonitorConfig(ctx, cfg).Return(cfg, nil)
	mockAdapter.EXPECT().MonitorConfig(ctx).Return(cfg, nil)

	saved, err := svc.SaveMonitorConfig(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, saved)

	got, err := svc.MonitorConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{walletAddr}, got.WalletAddresses)
}

func TestSettingsService_SaveMonitorConfig_RejectsInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSettingsSvc(ctrl)

	// невалидный конфиг не должен уходить на сервер
	_, err := svc.SaveMonitorConfig(context.Background(), models.MonitorConfig{Language: "fr"})

	require.Error(t, err)
}

func TestSettingsService_SaveBinanceFollowConfig_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSettingsSvc(ctrl)
	ctx := context.Background()

	// выключенная конфигурация проходит без проверок
	disabled := models.BinanceFollowRequest{Enabled: false}
	mockAdapter.EXPECT().SaveBinanceFollowConfig(ctx, disabled).Return(models.BinanceFollowConfig{}, nil)
	_, err := svc.SaveBinanceFollowConfig(ctx, disabled)
	require.NoError(t, err)

	_, err = svc.SaveBinanceFollowConfig(ctx, models.BinanceFollowRequest{Enabled: true, Mode: "martingale", Amount: 10, WalletAddress: walletAddr})
	require.Error(t, err)

	enabled := models.BinanceFollowRequest{Enabled: true, Mode: "percentage", Amount: 5, WalletAddress: walletAddr}
	mockAdapter.EXPECT().SaveBinanceFollowConfig(ctx, enabled).Return(models.BinanceFollowConfig{Enabled: true}, nil)
	got, err := svc.SaveBinanceFollowConfig(ctx, enabled)
	require.NoError(t, err)
	assert.True(t, got.Enabled)
}

func TestSettingsService_VerifySubscription_RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSettingsSvc(ctrl)

	mockAdapter.EXPECT().Token().Return("")

	_, err := svc.VerifySubscription(context.Background(), txHash)

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSettingsService_VerifySubscription_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSettingsSvc(ctrl)
	ctx := context.Background()

	profile := models.UserProfile{Email: "user@example.com", SubscriptionActive: true}

	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return("tok"),
		mockAdapter.EXPECT().VerifySubscription(ctx, txHash).Return(profile, nil),
	)

	got, err := svc.VerifySubscription(ctx, txHash)

	require.NoError(t, err)
	assert.True(t, got.SubscriptionActive)
}

func TestSettingsService_SaveLanguage_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRepo := newTestSettingsSvc(ctrl)
	ctx := context.Background()

	// недопустимый код языка отклоняется без обращения к хранилищу
	err := svc.SaveLanguage(ctx, "fr")
	require.Error(t, err)

	mockRepo.EXPECT().SaveLanguage(ctx, "zh").Return(nil)
	require.NoError(t, svc.SaveLanguage(ctx, "zh"))
}

func TestSettingsService_Language_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRepo := newTestSettingsSvc(ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Language(ctx).Return("en", nil)

	lang, err := svc.Language(ctx)

	require.NoError(t, err)
	assert.Equal(t, "en", lang)
}
