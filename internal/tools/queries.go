package tools

const (
	toolColumns = `id, slug, name, description, requires_auth, uses_external_model,
		min_length, max_length, sensitivity, extra_blacklist, allowed_languages,
		is_active, created_at, updated_at`

	queryListActive = `
		SELECT ` + toolColumns + `
		FROM tools
		WHERE is_active = true
		ORDER BY name
	`

	queryFindBySlug = `
		SELECT ` + toolColumns + `
		FROM tools
		WHERE slug = $1
	`
)
