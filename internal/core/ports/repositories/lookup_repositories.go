package repositories

import "context"

// LookupRepository reads the shared mapping tables: simple two-to-several
// column ranges with a header row, maintained by an external admin process.
// All lookups are linear scans returning apperrors.ErrNotFound on a miss.
type LookupRepository interface {
	// SignatureAssetByName resolves a signer's display name to their
	// signature asset reference.
	SignatureAssetByName(ctx context.Context, name string) (string, error)

	// BoardIDByName resolves a display name to the downstream board
	// spreadsheet id.
	BoardIDByName(ctx context.Context, name string) (string, error)

	// ExecURLByScriptID resolves this workflow's public entry point URL from
	// its deployment script id.
	ExecURLByScriptID(ctx context.Context, scriptID string) (string, error)

	// WebhookURLByName resolves a display name to the webhook callback URL of
	// their board system.
	WebhookURLByName(ctx context.Context, name string) (string, error)

	// PersonalStoreRefByName resolves a display name to that member's
	// personal spreadsheet id.
	PersonalStoreRefByName(ctx context.Context, name string) (string, error)
}
