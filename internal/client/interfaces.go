// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-hyper-monitor/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI abstracts the interactive frontend driven by [App.Run].
type UI interface {
	// Run draws the interface for the bootstrap session and blocks until
	// the user exits.
	Run(ctx context.Context, session models.Session) error
}
