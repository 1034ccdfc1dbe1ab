// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-hyper-monitor/internal/config"
	"github.com/MKhiriev/go-hyper-monitor/internal/logger"
	"github.com/MKhiriev/go-hyper-monitor/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: cli, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// newRequest prepares an outbound request. The bearer token is read at
// dispatch time; the header set here is not affected by later SetToken calls.
func (h *httpServerAdapter) newRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decodeBody unmarshals a successful response into out. 204 and empty bodies
// are accepted as-is; bodies without a JSON content type are skipped rather
// than force-parsed.
func decodeBody(resp *resty.Response, out any) error {
	if resp.StatusCode() == http.StatusNoContent || len(resp.Body()) == 0 {
		return nil
	}
	if !strings.Contains(resp.Header().Get("Content-Type"), "application/json") {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and returns the token plus profile. The token is not
// stored; the caller owns that decision.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.newRequest(ctx).
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, transportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if err = decodeBody(resp, &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}
	return auth, nil
}

// Register implements [ServerAdapter]. It POSTs the registration form to
// POST /api/auth/register and returns the token plus profile.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.newRequest(ctx).
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, transportError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if err = decodeBody(resp, &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register: %w", err)
	}
	return auth, nil
}

// Me implements [ServerAdapter]. It GETs the profile for the current bearer
// token from GET /api/auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.newRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.UserProfile{}, transportError("me", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	if err = decodeBody(resp, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("me: %w", err)
	}
	return profile, nil
}

// RequestVerification implements [ServerAdapter]. Fire-and-forget POST to
// /api/auth/request_verification; only the error outcome matters.
func (h *httpServerAdapter) RequestVerification(ctx context.Context, email string) error {
	resp, err := h.newRequest(ctx).
		SetBody(models.VerificationRequest{Email: email}).
		Post("/api/auth/request_verification")
	if err != nil {
		return transportError("request verification", err)
	}

	return mapHTTPError(resp)
}

// MonitorConfig implements [ServerAdapter].
func (h *httpServerAdapter) MonitorConfig(ctx context.Context) (models.MonitorConfig, error) {
	var cfg models.MonitorConfig

	resp, err := h.newRequest(ctx).Get("/api/config")
	if err != nil {
		return models.MonitorConfig{}, transportError("get monitor config", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MonitorConfig{}, err
	}

	if err = decodeBody(resp, &cfg); err != nil {
		return models.MonitorConfig{}, fmt.Errorf("get monitor config: %w", err)
	}
	return cfg, nil
}

// SaveMonitorConfig implements [ServerAdapter]. The backend echoes back the
// canonical stored configuration.
func (h *httpServerAdapter) SaveMonitorConfig(ctx context.Context, cfg models.MonitorConfig) (models.MonitorConfig, error) {
	var stored models.MonitorConfig

	resp, err := h.newRequest(ctx).
		SetBody(cfg).
		Post("/api/config")
	if err != nil {
		return models.MonitorConfig{}, transportError("save monitor config", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MonitorConfig{}, err
	}

	if err = decodeBody(resp, &stored); err != nil {
		return models.MonitorConfig{}, fmt.Errorf("save monitor config: %w", err)
	}
	return stored, nil
}

// BinanceFollowConfig implements [ServerAdapter].
func (h *httpServerAdapter) BinanceFollowConfig(ctx context.Context) (models.BinanceFollowConfig, error) {
	var cfg models.BinanceFollowConfig

	resp, err := h.newRequest(ctx).Get("/api/binance_follow")
	if err != nil {
		return models.BinanceFollowConfig{}, transportError("get binance follow config", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BinanceFollowConfig{}, err
	}

	if err = decodeBody(resp, &cfg); err != nil {
		return models.BinanceFollowConfig{}, fmt.Errorf("get binance follow config: %w", err)
	}
	return cfg, nil
}

// SaveBinanceFollowConfig implements [ServerAdapter].
func (h *httpServerAdapter) SaveBinanceFollowConfig(ctx context.Context, req models.BinanceFollowRequest) (models.BinanceFollowConfig, error) {
	var stored models.BinanceFollowConfig

	resp, err := h.newRequest(ctx).
		SetBody(req).
		Post("/api/binance_follow")
	if err != nil {
		return models.BinanceFollowConfig{}, transportError("save binance follow config", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BinanceFollowConfig{}, err
	}

	if err = decodeBody(resp, &stored); err != nil {
		return models.BinanceFollowConfig{}, fmt.Errorf("save binance follow config: %w", err)
	}
	return stored, nil
}

// WecomConfig implements [ServerAdapter].
func (h *httpServerAdapter) WecomConfig(ctx context.Context) (models.WecomConfig, error) {
	var cfg models.WecomConfig

	resp, err := h.newRequest(ctx).Get("/api/wecom")
	if err != nil {
		return models.WecomConfig{}, transportError("get wecom config", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WecomConfig{}, err
	}

	if err = decodeBody(resp, &cfg); err != nil {
		return models.WecomConfig{}, fmt.Errorf("get wecom config: %w", err)
	}
	return cfg, nil
}

// SaveWecomConfig implements [ServerAdapter].
func (h *httpServerAdapter) SaveWecomConfig(ctx context.Context, cfg models.WecomConfig) (models.WecomConfig, error) {
	var stored models.WecomConfig

	resp, err := h.newRequest(ctx).
		SetBody(cfg).
		Post("/api/wecom")
	if err != nil {
		return models.WecomConfig{}, transportError("save wecom config", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WecomConfig{}, err
	}

	if err = decodeBody(resp, &stored); err != nil {
		return models.WecomConfig{}, fmt.Errorf("save wecom config: %w", err)
	}
	return stored, nil
}

// VerifySubscription implements [ServerAdapter]. On success the backend
// returns the profile with the extended subscription.
func (h *httpServerAdapter) VerifySubscription(ctx context.Context, txHash string) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.newRequest(ctx).
		SetBody(models.PaymentVerificationRequest{TxHash: txHash}).
		Post("/api/subscription/verify")
	if err != nil {
		return models.UserProfile{}, transportError("verify subscription", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	if err = decodeBody(resp, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("verify subscription: %w", err)
	}
	return profile, nil
}

// WalletSummary implements [ServerAdapter].
func (h *httpServerAdapter) WalletSummary(ctx context.Context, address string) (models.WalletSummary, error) {
	var summary models.WalletSummary

	resp, err := h.newRequest(ctx).
		SetPathParam("address", address).
		Get("/api/wallets/{address}")
	if err != nil {
		return models.WalletSummary{}, transportError("wallet summary", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WalletSummary{}, err
	}

	if err = decodeBody(resp, &summary); err != nil {
		return models.WalletSummary{}, fmt.Errorf("wallet summary: %w", err)
	}
	return summary, nil
}

// WalletFills implements [ServerAdapter]. limit is clamped by the backend to
// its own 1..200 window.
func (h *httpServerAdapter) WalletFills(ctx context.Context, address string, limit int) (models.FillList, error) {
	var fills models.FillList

	resp, err := h.newRequest(ctx).
		SetPathParam("address", address).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/api/wallets/{address}/fills")
	if err != nil {
		return models.FillList{}, transportError("wallet fills", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FillList{}, err
	}

	if err = decodeBody(resp, &fills); err != nil {
		return models.FillList{}, fmt.Errorf("wallet fills: %w", err)
	}
	return fills, nil
}

// Wallets implements [ServerAdapter].
func (h *httpServerAdapter) Wallets(ctx context.Context) (models.WalletList, error) {
	var list models.WalletList

	resp, err := h.newRequest(ctx).Get("/api/wallets")
	if err != nil {
		return models.WalletList{}, transportError("wallets", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WalletList{}, err
	}

	if err = decodeBody(resp, &list); err != nil {
		return models.WalletList{}, fmt.Errorf("wallets: %w", err)
	}
	return list, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.newRequest(ctx).Get("/api/health")
	if err != nil {
		return transportError("health", err)
	}

	return mapHTTPError(resp)
}
