// Package models reads AI backend model configuration. Two distinguished
// roles exist per deployment: primary and fallback. The gateway only reads
// them; an admin surface maintains the rows.
package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tinytools/server/internal/dispatch"
)

const (
	rolePrimary  = "primary"
	roleFallback = "fallback"
)

// reads model configuration from Postgres; implements dispatch.ModelStore
type Repository struct {
	db *pgxpool.Pool
}

// creates a new model configuration repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the primary model, or an error when none is configured
func (r *Repository) Primary(ctx context.Context) (*dispatch.ModelConfig, error) {
	model, err := r.byRole(ctx, rolePrimary)
	if err != nil {
		return nil, err
	}

	if model == nil {
		return nil, fmt.Errorf("no primary model configured")
	}

	return model, nil
}

// returns the fallback model, or nil when none is configured
func (r *Repository) Fallback(ctx context.Context) (*dispatch.ModelConfig, error) {
	return r.byRole(ctx, roleFallback)
}

func (r *Repository) byRole(ctx context.Context, role string) (*dispatch.ModelConfig, error) {
	var (
		model dispatch.ModelConfig
		kind  string
	)

	err := r.db.QueryRow(ctx, queryModelByRole, role).Scan(
		&model.ProviderID,
		&model.ModelID,
		&kind,
		&model.Endpoint,
		&model.EncryptedAPIKey,
		&model.InputPricePerMillion,
		&model.OutputPricePerMillion,
		&model.MaxTokens,
		&model.IsActive,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load %s model: %w", role, err)
	}

	model.Kind = dispatch.Kind(kind)
	return &model, nil
}
