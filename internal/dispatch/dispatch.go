// Package dispatch sends prompts to a configured upstream model with a
// bounded two-tier fallback chain: the primary model, then at most one
// fallback, never more. Each provider kind has its own wire protocol and its
// own token-usage field names; the dispatcher normalizes all of them.
package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tinytools/server/internal/logger"
	"github.com/tinytools/server/internal/secrets"
	"golang.org/x/time/rate"
)

// per-upstream-call deadline; the retry-once design bounds total latency to
// roughly two of these
const upstreamCallTimeout = 30 * time.Second

// shared HTTP client for upstream provider calls
var upstreamHTTPClient = &http.Client{
	Timeout: upstreamCallTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// Dispatcher routes prompts to the configured primary model with single
// fallback on failure.
type Dispatcher struct {
	models     ModelStore
	decryptor  secrets.Decryptor
	httpClient *http.Client
	limiter    *rate.Limiter
}

// creates a new dispatcher
func New(models ModelStore, decryptor secrets.Decryptor) *Dispatcher {
	return &Dispatcher{
		models:     models,
		decryptor:  decryptor,
		httpClient: upstreamHTTPClient,
		// pace upstream calls: 50 rps with burst capacity of 10
		limiter: rate.NewLimiter(50, 10),
	}
}

// Dispatch sends the prompt to the primary model; on any primary failure it
// retries exactly once against the fallback if one is configured and active.
// When both fail the primary's error is returned, not the fallback's: the
// fallback is best-effort recovery, not the path of record.
func (d *Dispatcher) Dispatch(ctx context.Context, prompt string) (*Result, error) {
	primary, err := d.models.Primary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve primary model: %w", err)
	}

	if primary == nil || !primary.IsActive {
		return nil, fmt.Errorf("no active primary model configured")
	}

	comp, primaryErr := d.call(ctx, primary, prompt)

	if primaryErr == nil {
		return resultFrom(primary, comp, false), nil
	}

	fallback, err := d.models.Fallback(ctx)
	if err != nil {
		logger.ErrorErr(err, "failed to resolve fallback model")
		return nil, primaryErr
	}

	if fallback == nil || !fallback.IsActive {
		return nil, primaryErr
	}

	logger.Warn("primary model failed, trying fallback",
		"primary", primary.ModelID,
		"fallback", fallback.ModelID,
		"error", primaryErr,
	)

	comp, fallbackErr := d.call(ctx, fallback, prompt)
	if fallbackErr != nil {
		logger.ErrorErr(fallbackErr, "fallback model also failed", "fallback", fallback.ModelID)
		// surface why the primary path failed
		return nil, primaryErr
	}

	return resultFrom(fallback, comp, true), nil
}

// sends one prompt to one model using its kind's protocol
func (d *Dispatcher) call(ctx context.Context, model *ModelConfig, prompt string) (*completion, error) {
	apiKey, err := d.decryptor.Decrypt(model.EncryptedAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt api key for %s: %w", model.ProviderID, err)
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, upstreamCallTimeout)
	defer cancel()

	switch model.Kind {
	case KindOpenAI:
		return d.callOpenAI(callCtx, model, apiKey, prompt)
	case KindAnthropic:
		return d.callAnthropic(callCtx, model, apiKey, prompt)
	case KindGoogle:
		return d.callGoogle(callCtx, model, apiKey, prompt)
	case KindCustom:
		if model.Endpoint == "" {
			return nil, fmt.Errorf("custom provider %s has no endpoint configured", model.ProviderID)
		}
		// custom providers are assumed OpenAI-compatible
		return d.callOpenAI(callCtx, model, apiKey, prompt)
	default:
		return nil, fmt.Errorf("unsupported provider kind: %s", model.Kind)
	}
}

func resultFrom(model *ModelConfig, comp *completion, usedFallback bool) *Result {
	return &Result{
		Content:      comp.content,
		InputTokens:  comp.inputTokens,
		OutputTokens: comp.outputTokens,
		Cost:         costFor(model, comp.inputTokens, comp.outputTokens),
		ModelID:      model.ModelID,
		UsedFallback: usedFallback,
	}
}
