// Package gateway sequences one tool invocation end to end:
// validate -> auth -> admission -> moderation -> process -> record.
//
// Every step before processing can reject with a typed reason. The ledger
// write happens strictly after the processing step succeeds, so a failed
// upstream call costs the caller nothing against their quota, but a
// successful one always does.
package gateway

import (
	"context"
	"strings"

	"github.com/tinytools/server/internal/identity"
	"github.com/tinytools/server/internal/ledger"
	"github.com/tinytools/server/internal/logger"
	"github.com/tinytools/server/internal/moderation"
	"github.com/tinytools/server/internal/quota"
)

// Orchestrator runs the invocation state machine for every tool.
type Orchestrator struct {
	admission *quota.Controller
	store     ledger.Store
}

// creates a new orchestrator
func NewOrchestrator(admission *quota.Controller, store ledger.Store) *Orchestrator {
	return &Orchestrator{admission: admission, store: store}
}

// Invoke runs one invocation to a terminal state. It returns an Outcome on
// acceptance or a *Rejection error on refusal; any other error is an
// infrastructure failure.
func (o *Orchestrator) Invoke(ctx context.Context, id identity.Identity, inv Invocation) (*Outcome, error) {
	// validate
	if strings.TrimSpace(inv.Input) == "" {
		return nil, &Rejection{Reason: ReasonInvalidInput, Message: "input is required"}
	}

	if inv.Process == nil {
		return nil, &Rejection{Reason: ReasonInvalidInput, Message: "tool has no processor"}
	}

	// auth, when the tool demands it
	if inv.RequiresAuth {
		if _, ok := id.(identity.Registered); !ok {
			return nil, &Rejection{
				Reason:        ReasonUnauthorized,
				Message:       "this tool requires a signed-in account",
				RequiresLogin: true,
			}
		}
	}

	// admission: pure read over the ledger; not transactional with the
	// record write below (accepted check-then-act race, see quota package)
	decision, err := o.admission.Check(ctx, id)
	if err != nil {
		return nil, err
	}

	if !decision.Allowed {
		reason := ReasonQuotaExceeded
		message := "daily usage limit reached"

		if decision.Reason == quota.ReasonIdentityUnresolved {
			reason = ReasonIdentityUnresolved
			message = "caller could not be identified"
		}

		return nil, &Rejection{
			Reason:          reason,
			Message:         message,
			Remaining:       decision.Remaining,
			RequiresLogin:   decision.RequiresLogin,
			RequiresUpgrade: decision.RequiresUpgrade,
		}
	}

	// moderation: pure, in-process, never echoes the input back
	if verdict := moderation.Check(inv.Input, inv.Moderation); !verdict.Allowed {
		return nil, &Rejection{Reason: ReasonContentRejected, Message: verdict.Reason}
	}

	// process: the only latency-bearing step; may call an upstream model
	result, err := inv.Process(ctx, inv.Input)
	if err != nil {
		// no record is written: failed attempts are not billed
		// the cause rides on the rejection so the handler can log it
		return nil, &Rejection{
			Reason:  ReasonProcessingFailed,
			Message: "tool processing failed",
			Err:     err,
		}
	}

	// a dropped connection mid-processing is not billed either
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// record: a write failure must not unwind the result the caller already
	// has; the bookkeeping gap is logged, not hidden
	rec := recordFor(id, inv.ToolID, result)

	if err := o.store.Record(ctx, rec); err != nil {
		logger.ErrorErr(err, "failed to write invocation record",
			"tool_id", inv.ToolID,
			"used_external_model", result.UsedExternalModel,
		)
	}

	return &Outcome{Result: result, Decision: decision}, nil
}

func recordFor(id identity.Identity, toolID string, result *ProcessResult) ledger.Record {
	rec := ledger.Record{
		ToolID:            toolID,
		UsedExternalModel: result.UsedExternalModel,
		InputTokens:       result.InputTokens,
		OutputTokens:      result.OutputTokens,
		Cost:              result.Cost,
	}

	switch v := id.(type) {
	case identity.Registered:
		rec.UserID = v.UserID
	case identity.Anonymous:
		rec.Fingerprint = v.Fingerprint
		rec.IP = v.IP
	}

	return rec
}
