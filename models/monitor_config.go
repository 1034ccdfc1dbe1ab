// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MonitorConfig is the notification configuration round-tripped through
// GET/POST /api/config.
//
// UsesDefaultBot and DefaultBotUsername are server-derived read-only fields:
// they report whether the shared bot is in effect when the user configured no
// token of their own.
type MonitorConfig struct {
	TelegramBotToken   string   `json:"telegramBotToken,omitempty"`
	TelegramChatID     string   `json:"telegramChatId,omitempty"`
	WalletAddresses    []string `json:"walletAddresses"`
	Language           string   `json:"language"` // zh or en
	UsesDefaultBot     bool     `json:"usesDefaultBot"`
	DefaultBotUsername string   `json:"defaultBotUsername,omitempty"`
}

// BinanceFollowConfig is the mirrored-trading configuration returned by
// GET/POST /api/binance_follow. API credentials are never echoed back;
// only the HasAPIKey/HasAPISecret presence flags are.
type BinanceFollowConfig struct {
	Enabled         bool    `json:"enabled"`
	WalletAddress   string  `json:"walletAddress,omitempty"`
	Mode            string  `json:"mode"` // fixed or percentage
	Amount          float64 `json:"amount"`
	StopLossAmount  float64 `json:"stopLossAmount"`
	MaxPosition     float64 `json:"maxPosition"`
	MinOrderSize    float64 `json:"minOrderSize"`
	HasAPIKey       bool    `json:"hasApiKey"`
	HasAPISecret    bool    `json:"hasApiSecret"`
	BaselineBalance float64 `json:"baselineBalance,omitempty"`
	Status          string  `json:"status,omitempty"`
	StopReason      string  `json:"stopReason,omitempty"`
}

// BinanceFollowRequest is the write shape for POST /api/binance_follow.
// APIKey/APISecret are write-only; empty values keep the stored credentials
// unless ResetCredentials is set.
type BinanceFollowRequest struct {
	Enabled          bool    `json:"enabled"`
	WalletAddress    string  `json:"walletAddress,omitempty"`
	Mode             string  `json:"mode"`
	Amount           float64 `json:"amount"`
	StopLossAmount   float64 `json:"stopLossAmount"`
	MaxPosition      float64 `json:"maxPosition"`
	MinOrderSize     float64 `json:"minOrderSize"`
	APIKey           string  `json:"apiKey,omitempty"`
	APISecret        string  `json:"apiSecret,omitempty"`
	ResetCredentials bool    `json:"resetCredentials,omitempty"`
}

// WecomConfig is the WeCom webhook notification configuration round-tripped
// through GET/POST /api/wecom.
type WecomConfig struct {
	Enabled    bool     `json:"enabled"`
	WebhookURL string   `json:"webhookUrl,omitempty"`
	Mentions   []string `json:"mentions"`
}

// PaymentVerificationRequest submits an on-chain payment transaction hash for
// subscription activation via POST /api/subscription/verify.
type PaymentVerificationRequest struct {
	TxHash string `json:"txHash"`
}
