// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the client-side business logic: the session
// lifecycle, the background wallet poller, and the settings pass-throughs
// that sit between the TUI and the server adapter.
package service

import (
	"context"

	"github.com/MKhiriev/go-hyper-monitor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

// ClientSessionService owns the session state machine. The session moves
// between loading, anonymous and authenticated; it is authenticated exactly
// when a user profile is held. All methods are safe for concurrent use.
type ClientSessionService interface {
	// LoadSession performs the startup bootstrap: it reads the persisted
	// token, exchanges it for a profile, and returns the resulting session.
	// With no stored token the session is anonymous. A definitive auth
	// rejection (401/403) clears the stored token; other failures follow
	// the configured keep-on-network-error policy.
	LoadSession(ctx context.Context) models.Session

	// Login exchanges credentials for a token, persists it, and returns the
	// authenticated session. On failure the session stays anonymous and
	// LastError carries the server's message.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Register creates an account with a mailed verification code, persists
	// the returned token, and returns the authenticated session.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// RequestVerificationCode asks the backend to mail a registration code.
	RequestVerificationCode(ctx context.Context, email string) error

	// RefreshUser re-fetches the profile for the current token, e.g. after
	// a subscription purchase. Auth rejection demotes to anonymous.
	RefreshUser(ctx context.Context) models.Session

	// Logout clears the persisted token and resets the session to anonymous.
	Logout(ctx context.Context) error

	// Session returns a copy of the current session state.
	Session() models.Session
}

// WalletSyncService keeps one wallet's live data fresh. Selecting a wallet
// starts a poll loop for it; each selection supersedes the previous one, and
// results from a superseded fetch are discarded rather than applied.
type WalletSyncService interface {
	// SetSelected makes address the active poll target. An empty address
	// stops polling and clears the snapshot. Re-selecting the current
	// target triggers an immediate refresh without restarting the loop.
	SetSelected(ctx context.Context, address string)

	// Refresh fetches the active target once, out of band of the ticker.
	// No-op when nothing is selected.
	Refresh(ctx context.Context)

	// Snapshot returns a copy of the latest materialized wallet view.
	Snapshot() models.WalletSnapshot

	// ActiveTarget returns the address currently being polled, or an empty
	// string when polling is idle.
	ActiveTarget() string

	// SetOnUpdate registers a callback invoked after every applied snapshot
	// change. Used by the TUI to trigger a redraw. The callback runs on its
	// own goroutine, so it may block and may call back into the service.
	SetOnUpdate(fn func())

	// Stop cancels the poll loop and waits for the in-flight cycle to
	// finish. Safe to call when idle.
	Stop()
}

// SettingsService exposes the server-held configuration surfaces and local
// preferences to the UI.
type SettingsService interface {
	// MonitorConfig fetches the notification configuration.
	MonitorConfig(ctx context.Context) (models.MonitorConfig, error)

	// SaveMonitorConfig stores the notification configuration and returns
	// the canonical stored version.
	SaveMonitorConfig(ctx context.Context, cfg models.MonitorConfig) (models.MonitorConfig, error)

	// BinanceFollowConfig fetches the mirrored-trading configuration.
	BinanceFollowConfig(ctx context.Context) (models.BinanceFollowConfig, error)

	// SaveBinanceFollowConfig stores the mirrored-trading configuration.
	SaveBinanceFollowConfig(ctx context.Context, req models.BinanceFollowRequest) (models.BinanceFollowConfig, error)

	// WecomConfig fetches the WeCom webhook configuration.
	WecomConfig(ctx context.Context) (models.WecomConfig, error)

	// SaveWecomConfig stores the WeCom webhook configuration.
	SaveWecomConfig(ctx context.Context, cfg models.WecomConfig) (models.WecomConfig, error)

	// VerifySubscription submits a payment transaction hash and returns the
	// refreshed profile reflecting the new subscription state.
	VerifySubscription(ctx context.Context, txHash string) (models.UserProfile, error)

	// Wallets lists the wallet addresses known to the backend.
	Wallets(ctx context.Context) (models.WalletList, error)

	// Health probes backend reachability.
	Health(ctx context.Context) error

	// Language returns the persisted UI language, or an empty string.
	Language(ctx context.Context) (string, error)

	// SaveLanguage persists the UI language preference.
	SaveLanguage(ctx context.Context, language string) error
}
