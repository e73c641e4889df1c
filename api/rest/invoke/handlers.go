package invoke

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tinytools/server/internal/dispatch"
	"github.com/tinytools/server/internal/errors"
	"github.com/tinytools/server/internal/gateway"
	"github.com/tinytools/server/internal/identity"
	"github.com/tinytools/server/internal/tools"
)

type ToolFinder interface {
	FindBySlug(ctx context.Context, slug string) (*tools.Tool, error)
}

// creates the tool invocation handler
func Handler(orch *gateway.Orchestrator, repo ToolFinder, dispatcher *dispatch.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		tool, err := repo.FindBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			errors.InternalError(c, "failed to load tool", err)
			return
		}

		if tool == nil || !tool.IsActive {
			errors.NotFound(c, "tool")
			return
		}

		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		outcome, err := orch.Invoke(c.Request.Context(), identity.FromRequest(c), gateway.Invocation{
			ToolID:       tool.ID,
			Input:        normalizeInput(req.Input),
			RequiresAuth: tool.RequiresAuth,
			Moderation:   tool.ModerationConfig(),
			Process:      processorFor(tool, dispatcher),
		})

		if err != nil {
			respondRejection(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Success: true,
			Result:  outcome.Result.Output,
			Metadata: &Metadata{
				Model:        outcome.Result.ModelID,
				InputTokens:  outcome.Result.InputTokens,
				OutputTokens: outcome.Result.OutputTokens,
				Remaining:    remainingAfter(outcome),
				Tier:         string(outcome.Decision.Tier),
			},
		})
	}
}

// maps a gateway refusal onto the HTTP error surface
func respondRejection(c *gin.Context, err error) {
	var rej *gateway.Rejection

	if !goerrors.As(err, &rej) {
		// context cancellation: the caller is gone, nothing to write
		if c.Request.Context().Err() != nil {
			c.Abort()
			return
		}

		errors.InternalError(c, "invocation failed", err)
		return
	}

	switch rej.Reason {
	case gateway.ReasonInvalidInput:
		errors.BadRequest(c, rej.Message, nil)
	case gateway.ReasonUnauthorized:
		c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
			Error:         errors.CodeUnauthorized,
			Message:       rej.Message,
			RequiresLogin: rej.RequiresLogin,
		})
	case gateway.ReasonIdentityUnresolved:
		c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Error:         "identity_unresolved",
			Message:       rej.Message,
			RequiresLogin: true,
		})
	case gateway.ReasonQuotaExceeded:
		errors.QuotaExceeded(c, rej.Remaining, rej.RequiresLogin, rej.RequiresUpgrade)
	case gateway.ReasonContentRejected:
		errors.ContentRejected(c, rej.Message)
	default:
		errors.InternalError(c, "tool processing failed", rej)
	}
}

// unwraps a JSON string input; structured input is forwarded as raw JSON text
func normalizeInput(raw json.RawMessage) string {
	var s string

	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

// what the caller has left after this accepted invocation
func remainingAfter(outcome *gateway.Outcome) int {
	if outcome.Decision.Remaining < 0 {
		return outcome.Decision.Remaining // unlimited
	}

	if outcome.Decision.Remaining == 0 {
		return 0
	}

	return outcome.Decision.Remaining - 1
}
