package models

// SessionStatus enumerates the states of the client session state machine.
type SessionStatus string

const (
	// SessionLoading is the initial state while the stored token is being
	// exchanged for a profile.
	SessionLoading SessionStatus = "loading"

	// SessionAnonymous means no valid token is held.
	SessionAnonymous SessionStatus = "anonymous"

	// SessionAuthenticated means a profile was obtained for the stored token.
	SessionAuthenticated SessionStatus = "authenticated"
)

// Session is the materialized session state exposed to the UI.
//
// Invariant: Status is SessionAuthenticated if and only if User is non-nil.
type Session struct {
	// User is the profile of the authenticated user, nil when anonymous.
	User *UserProfile

	// Status is the current position in the session state machine.
	Status SessionStatus

	// LastError is the human-readable message of the most recent failed
	// login/register attempt, empty otherwise.
	LastError string
}
