// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserProfile is the server-side view of the authenticated user returned by
// GET /api/auth/me and embedded in [AuthResponse].
//
// Entitlement fields (trial/subscription flags, CanAccessMonitor) are carried
// as opaque data: the session layer never interprets them, only the UI does.
type UserProfile struct {
	// Email is the account identifier.
	Email string `json:"email"`

	// TrialEnd is the ISO-8601 end of the free trial, empty if never granted.
	TrialEnd string `json:"trial_end,omitempty"`

	// SubscriptionEnd is the ISO-8601 end of the paid subscription, empty if
	// the user never paid.
	SubscriptionEnd string `json:"subscription_end,omitempty"`

	// TrialActive reports whether the trial period is still running.
	TrialActive bool `json:"trial_active"`

	// SubscriptionActive reports whether a paid subscription is still running.
	SubscriptionActive bool `json:"subscription_active"`

	// CanAccessMonitor is the server-derived capability flag gating the
	// monitor configuration screens.
	CanAccessMonitor bool `json:"can_access_monitor"`
}

// Credentials carries the login form fields for POST /api/auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the registration form fields for
// POST /api/auth/register. VerificationCode is the six-digit code previously
// mailed via POST /api/auth/request_verification.
type RegisterRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	VerificationCode string `json:"verification_code"`
}

// VerificationRequest asks the server to mail a verification code.
type VerificationRequest struct {
	Email string `json:"email"`
}
