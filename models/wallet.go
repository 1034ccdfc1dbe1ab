// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Position is one open perpetual position inside a [WalletSummary].
type Position struct {
	Coin             string  `json:"coin"`
	Side             string  `json:"side"` // long, short or flat
	Size             float64 `json:"size"`
	EntryPrice       float64 `json:"entryPrice,omitempty"`
	MarkPrice        float64 `json:"markPrice,omitempty"`
	PositionValue    float64 `json:"positionValue"`
	MarginUsed       float64 `json:"marginUsed,omitempty"`
	LiquidationPrice float64 `json:"liquidationPrice,omitempty"`
	Leverage         float64 `json:"leverage,omitempty"`
	UnrealizedPnl    float64 `json:"unrealizedPnl,omitempty"`
	PnlPercent       float64 `json:"pnlPercent,omitempty"`
	FundingAllTime   float64 `json:"fundingAllTime,omitempty"`
	FundingSinceOpen float64 `json:"fundingSinceOpen,omitempty"`
	UpdatedAt        int64   `json:"updatedAt"`
}

// WalletSummary is the positions/balance snapshot for one wallet address,
// returned by GET /api/wallets/{address}.
type WalletSummary struct {
	Address            string     `json:"address"`
	Balance            float64    `json:"balance"`
	Withdrawable       float64    `json:"withdrawable,omitempty"`
	Equity             float64    `json:"equity,omitempty"`
	TotalPositionValue float64    `json:"totalPositionValue"`
	Timestamp          int64      `json:"timestamp"`
	Positions          []Position `json:"positions"`
}

// Fill is one immutable trade execution record.
type Fill struct {
	Coin          string  `json:"coin"`
	Side          string  `json:"side"` // buy or sell
	Price         float64 `json:"price"`
	Size          float64 `json:"size"`
	TimeMs        int64   `json:"timeMs"`
	StartPosition float64 `json:"startPosition,omitempty"`
	EndPosition   float64 `json:"endPosition,omitempty"`
	TxHash        string  `json:"txHash"`
}

// FillList is the paginated recent-fills payload returned by
// GET /api/wallets/{address}/fills, newest first.
type FillList struct {
	Address string `json:"address"`
	Count   int    `json:"count"`
	Items   []Fill `json:"items"`
}

// WalletList enumerates the wallet addresses known to the backend.
type WalletList struct {
	Wallets []string `json:"wallets"`
	Count   int      `json:"count"`
}
