package dispatch

import "context"

// Kind is the wire protocol a provider speaks. The set is closed: the
// dispatcher switches over it exhaustively and rejects anything else, so
// adding a provider kind means adding a normalizer and a switch arm.
type Kind string

const (
	KindOpenAI    Kind = "openai-chat"
	KindAnthropic Kind = "anthropic-messages"
	KindGoogle    Kind = "google-generate-content"

	// assumed OpenAI-compatible; requires an explicit endpoint
	KindCustom Kind = "custom"
)

// one configured upstream model
// the gateway only reads these; an admin surface maintains them
type ModelConfig struct {
	ProviderID string
	ModelID    string
	Kind       Kind

	// overrides the kind's default URL; required for KindCustom
	Endpoint string

	// AES-GCM ciphertext, decrypted immediately before each call
	EncryptedAPIKey string

	InputPricePerMillion  float64
	OutputPricePerMillion float64
	MaxTokens             int
	IsActive              bool
}

// ModelStore resolves the two distinguished model roles per deployment.
type ModelStore interface {
	Primary(ctx context.Context) (*ModelConfig, error)
	Fallback(ctx context.Context) (*ModelConfig, error)
}

// the normalized outcome of one dispatched prompt
type Result struct {
	Content      string  `json:"content"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	Cost         float64 `json:"cost"`
	ModelID      string  `json:"model_id"`
	UsedFallback bool    `json:"used_fallback"`
}

// a provider's response before cost accounting
type completion struct {
	content      string
	inputTokens  int
	outputTokens int
}
