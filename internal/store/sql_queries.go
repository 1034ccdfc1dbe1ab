// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	// local_session holds at most one row; the fixed id makes SaveToken an
	// overwrite rather than a merge.
	saveSessionToken = `
		INSERT INTO local_session (id, token, saved_at)
		VALUES (1, $1, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			saved_at = excluded.saved_at;`

	getSessionToken = `
		SELECT token
		FROM local_session
		WHERE id = 1;`

	deleteSessionToken = `
		DELETE FROM local_session
		WHERE id = 1;`

	savePreference = `
		INSERT INTO local_preferences (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value;`

	getPreference = `
		SELECT value
		FROM local_preferences
		WHERE key = $1;`
)

const languagePreferenceKey = "language"
