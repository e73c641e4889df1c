package tools

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tinytools/server/internal/moderation"
)

// handles tool catalog database operations
type Repository struct {
	db *pgxpool.Pool
}

// one entry in the tool catalog
type Tool struct {
	ID                string    `json:"id"`
	Slug              string    `json:"slug"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	RequiresAuth      bool      `json:"requires_auth"`
	UsesExternalModel bool      `json:"uses_external_model"`

	// content filter knobs, stored per tool
	MinLength        int      `json:"min_length"`
	MaxLength        int      `json:"max_length"`
	Sensitivity      string   `json:"sensitivity"`
	ExtraBlacklist   []string `json:"extra_blacklist,omitempty"`
	AllowedLanguages []string `json:"allowed_languages,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// builds the moderation config for this tool
func (t *Tool) ModerationConfig() moderation.Config {
	return moderation.Config{
		MinLength:        t.MinLength,
		MaxLength:        t.MaxLength,
		Sensitivity:      moderation.Sensitivity(t.Sensitivity),
		Blacklist:        t.ExtraBlacklist,
		AllowedLanguages: t.AllowedLanguages,
	}
}
