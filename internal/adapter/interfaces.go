// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// hyper-monitor backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Every failed call yields a [*RequestError] carrying the human-readable
// message extracted from the response body and the HTTP status code.
// RequestError unwraps to the per-status sentinels defined in errors.go so
// that callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-hyper-monitor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// hyper-monitor backend. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level failures to
// [*RequestError].
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. An empty string detaches the token.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// Login exchanges credentials for a bearer token and the user profile
	// via POST /api/auth/login. The adapter does NOT store the returned
	// token itself; the session service decides whether to persist it.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Register creates an account via POST /api/auth/register. The request
	// must carry the verification code previously mailed to the address.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Me fetches the profile belonging to the current bearer token via
	// GET /api/auth/me.
	Me(ctx context.Context) (models.UserProfile, error)

	// RequestVerification asks the backend to mail a verification code via
	// POST /api/auth/request_verification.
	RequestVerification(ctx context.Context, email string) error

	// MonitorConfig fetches the notification configuration via GET /api/config.
	MonitorConfig(ctx context.Context) (models.MonitorConfig, error)

	// SaveMonitorConfig stores the notification configuration via
	// POST /api/config and returns the canonical stored version.
	SaveMonitorConfig(ctx context.Context, cfg models.MonitorConfig) (models.MonitorConfig, error)

	// BinanceFollowConfig fetches the mirrored-trading configuration via
	// GET /api/binance_follow.
	BinanceFollowConfig(ctx context.Context) (models.BinanceFollowConfig, error)

	// SaveBinanceFollowConfig stores the mirrored-trading configuration via
	// POST /api/binance_follow. Credentials are write-only; the response
	// carries only presence flags.
	SaveBinanceFollowConfig(ctx context.Context, req models.BinanceFollowRequest) (models.BinanceFollowConfig, error)

	// WecomConfig fetches the WeCom webhook configuration via GET /api/wecom.
	WecomConfig(ctx context.Context) (models.WecomConfig, error)

	// SaveWecomConfig stores the WeCom webhook configuration via POST /api/wecom.
	SaveWecomConfig(ctx context.Context, cfg models.WecomConfig) (models.WecomConfig, error)

	// VerifySubscription submits a payment transaction hash via
	// POST /api/subscription/verify and returns the refreshed profile.
	VerifySubscription(ctx context.Context, txHash string) (models.UserProfile, error)

	// WalletSummary fetches the positions/balance snapshot for address via
	// GET /api/wallets/{address}.
	WalletSummary(ctx context.Context, address string) (models.WalletSummary, error)

	// WalletFills fetches up to limit recent executions for address via
	// GET /api/wallets/{address}/fills, newest first.
	WalletFills(ctx context.Context, address string, limit int) (models.FillList, error)

	// Wallets lists the wallet addresses known to the backend via
	// GET /api/wallets.
	Wallets(ctx context.Context) (models.WalletList, error)

	// Health probes backend reachability via GET /api/health.
	Health(ctx context.Context) error
}
