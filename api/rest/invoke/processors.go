package invoke

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/tinytools/server/internal/dispatch"
	"github.com/tinytools/server/internal/gateway"
	"github.com/tinytools/server/internal/tools"
)

// selects the processing step for a tool
// model-backed tools go through the fallback dispatcher; everything else runs
// one of the built-in local transforms
func processorFor(tool *tools.Tool, dispatcher *dispatch.Dispatcher) gateway.ProcessFunc {
	if tool.UsesExternalModel {
		return modelProcessor(dispatcher)
	}

	if local, ok := localProcessors[tool.Slug]; ok {
		return local
	}

	return textStats
}

func modelProcessor(dispatcher *dispatch.Dispatcher) gateway.ProcessFunc {
	return func(ctx context.Context, input string) (*gateway.ProcessResult, error) {
		result, err := dispatcher.Dispatch(ctx, input)
		if err != nil {
			return nil, err
		}

		return &gateway.ProcessResult{
			Output:            result.Content,
			UsedExternalModel: true,
			InputTokens:       result.InputTokens,
			OutputTokens:      result.OutputTokens,
			Cost:              result.Cost,
			ModelID:           result.ModelID,
		}, nil
	}
}

// local tools run entirely in-process and cost nothing upstream
var localProcessors = map[string]gateway.ProcessFunc{
	"word-count": textStats,
	"slugify":    slugify,
	"uppercase":  uppercase,
}

func textStats(_ context.Context, input string) (*gateway.ProcessResult, error) {
	return &gateway.ProcessResult{
		Output: map[string]int{
			"characters": utf8.RuneCountInString(input),
			"words":      len(strings.Fields(input)),
			"lines":      strings.Count(input, "\n") + 1,
		},
	}, nil
}

func slugify(_ context.Context, input string) (*gateway.ProcessResult, error) {
	var b strings.Builder

	lastDash := true // suppress a leading dash

	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return &gateway.ProcessResult{
		Output: strings.TrimSuffix(b.String(), "-"),
	}, nil
}

func uppercase(_ context.Context, input string) (*gateway.ProcessResult, error) {
	return &gateway.ProcessResult{Output: strings.ToUpper(input)}, nil
}
