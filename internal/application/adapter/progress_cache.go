// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// ErrStaleProgress is returned by GoalProgressCache.Set when the user's cache
// was invalidated after the generation passed to Set was read.
var ErrStaleProgress = errors.New("progress cache invalidated since read")

// ProgressCacheEntry is the result of a cache read.
type ProgressCacheEntry struct {
	// Snapshots holds the cached snapshots keyed by goal ID; nil on a miss.
	Snapshots map[uuid.UUID]entity.ProgressSnapshot
	// Hit is false when nothing is cached for the day.
	Hit bool
	// Generation identifies the user's cache state at read time, hit or miss.
	Generation int64
}

// GoalProgressCache stores computed progress snapshots per user and day.
// Any write touching a user's goals or transactions must call Invalidate.
type GoalProgressCache interface {
	// Get returns the snapshots cached for the user and day, along with the
	// current generation.
	Get(ctx context.Context, userID uuid.UUID, day string) (ProgressCacheEntry, error)

	// Set stores the snapshots for the given day unless the user's cache was
	// invalidated since generation was read, in which case it returns
	// ErrStaleProgress and stores nothing.
	Set(ctx context.Context, userID uuid.UUID, day string, generation int64, snapshots map[uuid.UUID]entity.ProgressSnapshot) error

	// Invalidate drops every cached day for the user and advances the generation.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
