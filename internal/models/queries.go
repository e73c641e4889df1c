package models

const (
	queryModelByRole = `
		SELECT provider_id, model_id, kind, endpoint, encrypted_api_key,
		       input_price_per_million, output_price_per_million, max_tokens, is_active
		FROM ai_models
		WHERE role = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`
)
