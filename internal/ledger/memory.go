package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// implements Store in memory, for tests and local development
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

// creates a new in-memory ledger
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// appends one invocation record
func (s *MemoryStore) Record(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	s.records = append(s.records, rec)
	return nil
}

// counts records for a user since the given time
func (s *MemoryStore) CountByUser(_ context.Context, userID string, since time.Time) (int, error) {
	return s.count(func(r Record) bool { return r.UserID == userID }, since), nil
}

// counts records for a device fingerprint since the given time
func (s *MemoryStore) CountByFingerprint(_ context.Context, fingerprint string, since time.Time) (int, error) {
	return s.count(func(r Record) bool { return r.Fingerprint == fingerprint }, since), nil
}

// counts records for an IP since the given time
func (s *MemoryStore) CountByIP(_ context.Context, ip string, since time.Time) (int, error) {
	return s.count(func(r Record) bool { return r.IP == ip }, since), nil
}

// returns the total number of stored records
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// returns a copy of all stored records
func (s *MemoryStore) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *MemoryStore) count(match func(Record) bool, since time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.records {
		if match(r) && !r.CreatedAt.Before(since) {
			n++
		}
	}
	return n
}
