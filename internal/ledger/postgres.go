package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// implements Store on Postgres
type PostgresStore struct {
	db *pgxpool.Pool
}

// creates a new Postgres-backed ledger
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// appends one invocation record
func (s *PostgresStore) Record(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(ctx, queryInsertRecord,
		rec.ID,
		rec.ToolID,
		rec.UserID,
		rec.Fingerprint,
		rec.IP,
		rec.UsedExternalModel,
		rec.InputTokens,
		rec.OutputTokens,
		rec.Cost,
		rec.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert invocation record: %w", err)
	}

	return nil
}

// counts records for a user since the given time
func (s *PostgresStore) CountByUser(ctx context.Context, userID string, since time.Time) (int, error) {
	return s.count(ctx, queryCountByUser, userID, since)
}

// counts records for a device fingerprint since the given time
func (s *PostgresStore) CountByFingerprint(ctx context.Context, fingerprint string, since time.Time) (int, error) {
	return s.count(ctx, queryCountByFingerprint, fingerprint, since)
}

// counts records for an IP since the given time
func (s *PostgresStore) CountByIP(ctx context.Context, ip string, since time.Time) (int, error) {
	return s.count(ctx, queryCountByIP, ip, since)
}

func (s *PostgresStore) count(ctx context.Context, query, key string, since time.Time) (int, error) {
	var count int

	err := s.db.QueryRow(ctx, query, key, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invocation records: %w", err)
	}

	return count, nil
}
