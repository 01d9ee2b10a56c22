// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals   []*entity.GoalWithProgress
	Summary entity.GoalSummary
}

// ListGoalsUseCase handles listing goals with their progress.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	loader   *progressLoader
	cache    adapter.GoalProgressCache // Optional
	now      Clock
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
// cache may be nil, in which case progress is always recomputed.
func NewListGoalsUseCase(
	goalRepo adapter.GoalRepository,
	transactionQuery adapter.TransactionQuery,
	categoryRepo adapter.CategoryRepository,
	cache adapter.GoalProgressCache,
	now Clock,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		loader:   newProgressLoader(transactionQuery, categoryRepo),
		cache:    cache,
		now:      now,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := uc.now()
	day := now.UTC().Format(CacheDayLayout)
	entry, readable := uc.readCache(ctx, input.UserID, day)
	cached := entry.Snapshots
	computed := make(map[uuid.UUID]entity.ProgressSnapshot, len(goals))
	missed := false

	output := &ListGoalsOutput{
		Goals: make([]*entity.GoalWithProgress, 0, len(goals)),
	}

	for _, g := range goals {
		if input.ActiveOnly && !g.IsActive {
			continue
		}

		var withProgress *entity.GoalWithProgress
		if snapshot, ok := cached[g.ID]; ok {
			withProgress = &entity.GoalWithProgress{
				Goal:     g,
				Category: uc.loader.category(ctx, g),
				Progress: snapshot,
			}
		} else {
			withProgress, err = uc.loader.load(ctx, g, now)
			if err != nil {
				return nil, err
			}
			missed = true
		}

		computed[g.ID] = withProgress.Progress
		output.Goals = append(output.Goals, withProgress)
	}

	if missed && readable {
		uc.writeCache(ctx, input.UserID, day, entry.Generation, computed)
	}

	output.Summary = SummarizeGoals(output.Goals)
	return output, nil
}

// readCache reports false when the cache is disabled or unreadable; nothing
// is written back in that case.
func (uc *ListGoalsUseCase) readCache(ctx context.Context, userID uuid.UUID, day string) (adapter.ProgressCacheEntry, bool) {
	if uc.cache == nil {
		return adapter.ProgressCacheEntry{}, false
	}

	entry, err := uc.cache.Get(ctx, userID, day)
	if err != nil {
		slog.Warn("Failed to read goal progress cache",
			"userID", userID,
			"error", err,
		)
		return adapter.ProgressCacheEntry{}, false
	}
	if !entry.Hit {
		entry.Snapshots = nil
	}
	return entry, true
}

func (uc *ListGoalsUseCase) writeCache(ctx context.Context, userID uuid.UUID, day string, generation int64, snapshots map[uuid.UUID]entity.ProgressSnapshot) {
	err := uc.cache.Set(ctx, userID, day, generation, snapshots)
	switch {
	case err == nil:
	case errors.Is(err, adapter.ErrStaleProgress):
		slog.Debug("Skipped caching goal progress computed before an invalidation",
			"userID", userID,
		)
	default:
		slog.Warn("Failed to cache goal progress",
			"userID", userID,
			"error", err,
		)
	}
}

// SummarizeGoals folds individually computed snapshots into counts.
func SummarizeGoals(goals []*entity.GoalWithProgress) entity.GoalSummary {
	var summary entity.GoalSummary

	for _, g := range goals {
		summary.TotalGoals++
		if g.Goal.IsActive {
			summary.ActiveGoals++
		}

		switch g.Goal.Type() {
		case entity.GoalTypeBudget:
			summary.BudgetGoals++
		case entity.GoalTypeSavings:
			summary.SavingsGoals++
		}

		if g.Progress.IsOnTrack {
			summary.OnTrackGoals++
		} else {
			summary.OffTrackGoals++
		}
	}

	return summary
}
