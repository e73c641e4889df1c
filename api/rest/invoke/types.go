package invoke

import "encoding/json"

// Request represents the request body for a tool invocation.
// Input is either a plain string or a structured object; structured input is
// forwarded as its JSON text.
type Request struct {
	Input json.RawMessage `json:"input" binding:"required"`
}

// Metadata carries usage accounting for a completed invocation
type Metadata struct {
	Model        string `json:"model,omitempty"`
	InputTokens  int    `json:"input_tokens,omitempty"`
	OutputTokens int    `json:"output_tokens,omitempty"`
	Remaining    int    `json:"remaining"`
	Tier         string `json:"tier"`
}

// Response represents a successful invocation
type Response struct {
	Success  bool      `json:"success"`
	Result   any       `json:"result"`
	Metadata *Metadata `json:"metadata,omitempty"`
}
