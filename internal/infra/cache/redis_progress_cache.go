// Package cache implements the goal progress cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
)

const (
	keyPrefix           = "goal-progress:"
	generationKeyPrefix = "goal-progress-gen:"

	// generationTTL outlives any in-flight listing; an expired generation
	// reads as 0 and only causes a skipped write.
	generationTTL = 24 * time.Hour
)

// snapshotRecord is the cached form of entity.ProgressSnapshot.
type snapshotRecord struct {
	CurrentAmount       decimal.Decimal  `json:"current_amount"`
	RemainingAmount     decimal.Decimal  `json:"remaining_amount"`
	PercentComplete     float64          `json:"percent_complete"`
	IsOnTrack           bool             `json:"is_on_track"`
	PeriodLabel         string           `json:"period_label"`
	PeriodStart         time.Time        `json:"period_start"`
	PeriodEnd           time.Time        `json:"period_end"`
	ExpectedAmount      *decimal.Decimal `json:"expected_amount,omitempty"`
	PeriodActualAmount  *decimal.Decimal `json:"period_actual_amount,omitempty"`
	PeriodPlannedAmount *decimal.Decimal `json:"period_planned_amount,omitempty"`
}

// redisProgressCache keeps one hash per user; each field holds the snapshots
// computed for one UTC day.
type redisProgressCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProgressCache creates a progress cache backed by Redis.
func NewRedisProgressCache(client *redis.Client, ttl time.Duration) adapter.GoalProgressCache {
	return &redisProgressCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the snapshots cached for the user and day. The generation is
// read before the snapshots so that a Set based on this read fails if an
// invalidation lands in between.
func (c *redisProgressCache) Get(ctx context.Context, userID uuid.UUID, day string) (adapter.ProgressCacheEntry, error) {
	generation, err := readGeneration(ctx, c.client, userID)
	if err != nil {
		return adapter.ProgressCacheEntry{}, err
	}
	entry := adapter.ProgressCacheEntry{Generation: generation}

	raw, err := c.client.HGet(ctx, key(userID), day).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entry, nil
		}
		return adapter.ProgressCacheEntry{}, fmt.Errorf("failed to read progress cache: %w", err)
	}

	var records map[uuid.UUID]snapshotRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return adapter.ProgressCacheEntry{}, fmt.Errorf("failed to decode progress cache: %w", err)
	}

	entry.Snapshots = make(map[uuid.UUID]entity.ProgressSnapshot, len(records))
	for goalID, record := range records {
		entry.Snapshots[goalID] = record.toSnapshot()
	}
	entry.Hit = true
	return entry, nil
}

// Set stores the snapshots for the user and day and refreshes the key TTL.
// The write is dropped with adapter.ErrStaleProgress when the generation moved
// past the one the snapshots were computed under.
func (c *redisProgressCache) Set(ctx context.Context, userID uuid.UUID, day string, generation int64, snapshots map[uuid.UUID]entity.ProgressSnapshot) error {
	records := make(map[uuid.UUID]snapshotRecord, len(snapshots))
	for goalID, snapshot := range snapshots {
		records[goalID] = recordFromSnapshot(snapshot)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode progress cache: %w", err)
	}

	k := key(userID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, userID)
		if err != nil {
			return err
		}
		if current != generation {
			return adapter.ErrStaleProgress
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, k, day, raw)
			if c.ttl > 0 {
				pipe.Expire(ctx, k, c.ttl)
			}
			return nil
		})
		return err
	}, generationKey(userID))

	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrStaleProgress), errors.Is(err, redis.TxFailedErr):
		return adapter.ErrStaleProgress
	default:
		return fmt.Errorf("failed to write progress cache: %w", err)
	}
}

// Invalidate drops every cached day for the user and advances the generation.
func (c *redisProgressCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	gk := generationKey(userID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key(userID))
		pipe.Incr(ctx, gk)
		pipe.Expire(ctx, gk, generationTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate progress cache: %w", err)
	}
	return nil
}

// stringGetter is satisfied by both *redis.Client and *redis.Tx.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, client stringGetter, userID uuid.UUID) (int64, error) {
	generation, err := client.Get(ctx, generationKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read progress cache generation: %w", err)
	}
	return generation, nil
}

func key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

func generationKey(userID uuid.UUID) string {
	return generationKeyPrefix + userID.String()
}

func recordFromSnapshot(s entity.ProgressSnapshot) snapshotRecord {
	return snapshotRecord{
		CurrentAmount:       s.CurrentAmount,
		RemainingAmount:     s.RemainingAmount,
		PercentComplete:     s.PercentComplete,
		IsOnTrack:           s.IsOnTrack,
		PeriodLabel:         s.PeriodLabel,
		PeriodStart:         s.PeriodStart,
		PeriodEnd:           s.PeriodEnd,
		ExpectedAmount:      s.ExpectedAmount,
		PeriodActualAmount:  s.PeriodActualAmount,
		PeriodPlannedAmount: s.PeriodPlannedAmount,
	}
}

func (r snapshotRecord) toSnapshot() entity.ProgressSnapshot {
	return entity.ProgressSnapshot{
		CurrentAmount:       r.CurrentAmount,
		RemainingAmount:     r.RemainingAmount,
		PercentComplete:     r.PercentComplete,
		IsOnTrack:           r.IsOnTrack,
		PeriodLabel:         r.PeriodLabel,
		PeriodStart:         r.PeriodStart.UTC(),
		PeriodEnd:           r.PeriodEnd.UTC(),
		ExpectedAmount:      r.ExpectedAmount,
		PeriodActualAmount:  r.PeriodActualAmount,
		PeriodPlannedAmount: r.PeriodPlannedAmount,
	}
}
