package dispatch

// cost formula, identical for every provider kind, priced by whichever model
// actually served the response
func costFor(model *ModelConfig, inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*model.InputPricePerMillion/1_000_000 +
		float64(outputTokens)*model.OutputPricePerMillion/1_000_000
}
