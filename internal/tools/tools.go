package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new tool repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// lists all active catalog tools
func (r *Repository) ListActive(ctx context.Context) ([]Tool, error) {
	rows, err := r.db.Query(ctx, queryListActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	defer rows.Close()

	var out []Tool

	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *tool)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tools: %w", err)
	}

	return out, nil
}

// finds a tool by its URL slug, nil when absent
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*Tool, error) {
	row := r.db.QueryRow(ctx, queryFindBySlug, slug)

	tool, err := scanTool(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return tool, nil
}

func scanTool(row pgx.Row) (*Tool, error) {
	var tool Tool

	err := row.Scan(
		&tool.ID,
		&tool.Slug,
		&tool.Name,
		&tool.Description,
		&tool.RequiresAuth,
		&tool.UsesExternalModel,
		&tool.MinLength,
		&tool.MaxLength,
		&tool.Sensitivity,
		&tool.ExtraBlacklist,
		&tool.AllowedLanguages,
		&tool.IsActive,
		&tool.CreatedAt,
		&tool.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to scan tool: %w", err)
	}

	return &tool, nil
}
