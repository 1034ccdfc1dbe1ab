// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-hyper-monitor/internal/adapter"
	"github.com/MKhiriev/go-hyper-monitor/internal/store"
	"github.com/MKhiriev/go-hyper-monitor/internal/validators"
	"github.com/MKhiriev/go-hyper-monitor/models"
)

type settingsService struct {
	adapter   adapter.ServerAdapter
	sessions  store.SessionRepository
	validator validators.Validator
}

// NewSettingsService builds the settings facade over the server adapter and
// the local preference store. Write operations are validated before hitting
// the network.
func NewSettingsService(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository) SettingsService {
	return &settingsService{
		adapter:   serverAdapter,
		sessions:  sessions,
		validator: validators.NewInputValidator(),
	}
}

func (s *settingsService) MonitorConfig(ctx context.Context) (models.MonitorConfig, error) {
	return s.adapter.MonitorConfig(ctx)
}

func (s *settingsService) SaveMonitorConfig(ctx context.Context, cfg models.MonitorConfig) (models.MonitorConfig, error) {
	if err := s.validator.Validate(ctx, cfg); err != nil {
		return models.MonitorConfig{}, err
	}
	return s.adapter.SaveMonitorConfig(ctx, cfg)
}

func (s *settingsService) BinanceFollowConfig(ctx context.Context) (models.BinanceFollowConfig, error) {
	return s.adapter.BinanceFollowConfig(ctx)
}

func (s *settingsService) SaveBinanceFollowConfig(ctx context.Context, req models.BinanceFollowRequest) (models.BinanceFollowConfig, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.BinanceFollowConfig{}, err
	}
	return s.adapter.SaveBinanceFollowConfig(ctx, req)
}

func (s *settingsService) WecomConfig(ctx context.Context) (models.WecomConfig, error) {
	return s.adapter.WecomConfig(ctx)
}

func (s *settingsService) SaveWecomConfig(ctx context.Context, cfg models.WecomConfig) (models.WecomConfig, error) {
	if err := s.validator.Validate(ctx, cfg); err != nil {
		return models.WecomConfig{}, err
	}
	return s.adapter.SaveWecomConfig(ctx, cfg)
}

func (s *settingsService) VerifySubscription(ctx context.Context, txHash string) (models.UserProfile, error) {
	if s.adapter.Token() == "" {
		return models.UserProfile{}, ErrNotAuthenticated
	}
	if err := s.validator.Validate(ctx, txHash, validators.FieldTxHash); err != nil {
		return models.UserProfile{}, err
	}
	return s.adapter.VerifySubscription(ctx, txHash)
}

func (s *settingsService) Wallets(ctx context.Context) (models.WalletList, error) {
	return s.adapter.Wallets(ctx)
}

func (s *settingsService) Health(ctx context.Context) error {
	return s.adapter.Health(ctx)
}

func (s *settingsService) Language(ctx context.Context) (string, error) {
	return s.sessions.Language(ctx)
}

func (s *settingsService) SaveLanguage(ctx context.Context, language string) error {
	if err := s.validator.Validate(ctx, language, validators.FieldLanguage); err != nil {
		return err
	}
	return s.sessions.SaveLanguage(ctx, language)
}
