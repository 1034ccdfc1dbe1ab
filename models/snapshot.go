package models

// WalletSnapshot is the latest materialized view for the actively polled
// wallet. It is replaced wholesale on every applied fetch result; a fetch
// failure keeps the previous Summary/Fills and only populates Error, so the
// UI shows stale data instead of blanking.
type WalletSnapshot struct {
	// Summary is the last successfully fetched positions/balance payload,
	// nil until the first fetch for the active target completes.
	Summary *WalletSummary

	// Fills holds the most recent executions, newest first.
	Fills []Fill

	// Error is the classified message of the last failed fetch for the
	// active target, empty when the last fetch succeeded.
	Error string

	// Loading reports that a fetch for the active target is in flight.
	Loading bool
}
