// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ReportCache caches built report payloads per user. Implementations must
// treat the cache as best-effort: a miss or a cache failure is never a reason
// to fail the report request itself.
type ReportCache interface {
	// Get returns the cached payload for the key, or nil on a miss.
	Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, error)

	// Set stores the payload under the key with the implementation's TTL.
	Set(ctx context.Context, userID uuid.UUID, key string, payload []byte) error

	// Invalidate drops every cached report for the user. Called after any
	// transaction write so reports never serve stale aggregates.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
