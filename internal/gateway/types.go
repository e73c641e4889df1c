package gateway

import (
	"context"

	"github.com/tinytools/server/internal/moderation"
	"github.com/tinytools/server/internal/quota"
)

// Reason classifies why an invocation was rejected.
type Reason string

const (
	ReasonInvalidInput       Reason = "invalid_input"
	ReasonUnauthorized       Reason = "unauthorized"
	ReasonIdentityUnresolved Reason = "identity_unresolved"
	ReasonQuotaExceeded      Reason = "quota_exceeded"
	ReasonContentRejected    Reason = "content_rejected"
	ReasonProcessingFailed   Reason = "processing_failed"
)

// Rejection is the typed terminal error for a refused invocation.
// Rejections are final: the gateway never retries on the caller's behalf.
type Rejection struct {
	Reason          Reason
	Message         string
	Remaining       int
	RequiresLogin   bool
	RequiresUpgrade bool

	// the underlying cause for ReasonProcessingFailed, kept for server-side
	// logging and errors.Is/As matching
	Err error
}

func (r *Rejection) Error() string {
	if r.Err != nil {
		return string(r.Reason) + ": " + r.Message + ": " + r.Err.Error()
	}

	return string(r.Reason) + ": " + r.Message
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// ProcessFunc is the caller-supplied business logic for one tool. It may call
// the provider dispatcher; it must honor ctx cancellation.
type ProcessFunc func(ctx context.Context, input string) (*ProcessResult, error)

// what the processing step produced, plus what it consumed
type ProcessResult struct {
	Output            any
	UsedExternalModel bool
	InputTokens       int
	OutputTokens      int
	Cost              float64
	ModelID           string
}

// one invocation request, assembled by the HTTP layer from the tool's
// catalog configuration
type Invocation struct {
	ToolID       string
	Input        string
	RequiresAuth bool
	Moderation   moderation.Config
	Process      ProcessFunc
}

// the successful terminal state
type Outcome struct {
	Result   *ProcessResult
	Decision *quota.Decision
}
