package tools

import "github.com/tinytools/server/internal/tools"

// Response represents a single tool in API responses.
// Moderation knobs stay server-side; clients only need the call contract.
type Response struct {
	ID                string `json:"id"`
	Slug              string `json:"slug"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	RequiresAuth      bool   `json:"requires_auth"`
	UsesExternalModel bool   `json:"uses_external_model"`
}

// ListResponse represents the tool catalog listing
type ListResponse struct {
	Tools []Response `json:"tools"`
	Total int        `json:"total"`
}

func toResponse(t *tools.Tool) Response {
	return Response{
		ID:                t.ID,
		Slug:              t.Slug,
		Name:              t.Name,
		Description:       t.Description,
		RequiresAuth:      t.RequiresAuth,
		UsesExternalModel: t.UsesExternalModel,
	}
}
