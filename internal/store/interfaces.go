// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the client-side persistence layer: a small SQLite
// database holding the session bearer token and UI preferences so that both
// survive process restarts. Schema management is done with embedded goose
// migrations.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository is the durable holder of the bearer token and local UI
// preferences. At most one token is authoritative at any time: SaveToken
// overwrites, never merges.
//
// No expiry is tracked here; token validity is learned lazily from request
// failures.
type SessionRepository interface {
	// Token returns the stored bearer token. Returns
	// [ErrLocalSessionNotFound] when no token has been saved.
	Token(ctx context.Context) (string, error)

	// SaveToken writes token through to the backing store, replacing any
	// previous value.
	SaveToken(ctx context.Context, token string) error

	// DeleteToken removes the stored token. Deleting an absent token is not
	// an error.
	DeleteToken(ctx context.Context) error

	// Language returns the persisted UI language preference, or an empty
	// string when none has been saved.
	Language(ctx context.Context) (string, error)

	// SaveLanguage persists the UI language preference ("zh" or "en").
	SaveLanguage(ctx context.Context, language string) error
}
