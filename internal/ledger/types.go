package ledger

import (
	"context"
	"time"
)

// an immutable record of one accepted tool invocation
// written exactly once, after the processing step completes successfully
type Record struct {
	ID                string    `json:"id"`
	ToolID            string    `json:"tool_id"`
	UserID            string    `json:"user_id,omitempty"`
	Fingerprint       string    `json:"fingerprint,omitempty"`
	IP                string    `json:"ip,omitempty"`
	UsedExternalModel bool      `json:"used_external_model"`
	InputTokens       int       `json:"input_tokens,omitempty"`
	OutputTokens      int       `json:"output_tokens,omitempty"`
	Cost              float64   `json:"cost,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Store is the append-only invocation ledger.
//
// Counts are recomputed from records on every call; there is no running
// counter, so concurrent check-then-record sequences from the same caller can
// overshoot the limit by one (accepted, see admission control).
type Store interface {
	// appends one record; records are never mutated or deleted here
	Record(ctx context.Context, rec Record) error

	// counts records for a user created at or after since
	CountByUser(ctx context.Context, userID string, since time.Time) (int, error)

	// counts records for a device fingerprint created at or after since
	CountByFingerprint(ctx context.Context, fingerprint string, since time.Time) (int, error)

	// counts records for an IP, across all fingerprints seen from it,
	// created at or after since
	CountByIP(ctx context.Context, ip string, since time.Time) (int, error)
}
