// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
	"github.com/finance-tracker/goals/internal/domain/valueobject"
)

// Clock returns the current instant. Use cases take one so that period math
// can be driven by fixed timestamps.
type Clock func() time.Time

// CacheDayLayout keys cached snapshots by the UTC day they were computed for.
const CacheDayLayout = "2006-01-02"

// progressLoader fetches the transactions a goal needs and computes its progress.
type progressLoader struct {
	transactions adapter.TransactionQuery
	categories   adapter.CategoryRepository
}

func newProgressLoader(transactions adapter.TransactionQuery, categories adapter.CategoryRepository) *progressLoader {
	return &progressLoader{
		transactions: transactions,
		categories:   categories,
	}
}

// load computes a fresh snapshot for the goal.
func (l *progressLoader) load(ctx context.Context, goal *entity.Goal, now time.Time) (*entity.GoalWithProgress, error) {
	progress, err := l.computeProgress(ctx, goal, now)
	if err != nil {
		return nil, err
	}

	return &entity.GoalWithProgress{
		Goal:     goal,
		Category: l.category(ctx, goal),
		Progress: progress,
	}, nil
}

func (l *progressLoader) computeProgress(ctx context.Context, goal *entity.Goal, now time.Time) (entity.ProgressSnapshot, error) {
	window := ContributionWindow(goal, now)

	var (
		transactions []*entity.Transaction
		err          error
	)
	if goal.Type() == entity.GoalTypeBudget {
		transactions, err = l.transactions.FindByDateRange(ctx, goal.UserID, window.Start, window.End)
	} else {
		transactions, err = l.transactions.FindByGoalLink(ctx, goal.UserID, goal.ID, window.Start, window.End)
	}
	if err != nil {
		return entity.ProgressSnapshot{}, fmt.Errorf("failed to load transactions for goal: %w", err)
	}

	matched := MatchTransactions(goal, window, transactions)

	var monthMatched []*entity.Transaction
	if planned := goal.PlannedContribution(); planned != nil && planned.IsPositive() {
		month := valueobject.CurrentMonthRange(now)
		monthTransactions, err := l.transactions.FindByGoalLink(ctx, goal.UserID, goal.ID, month.Start, month.End)
		if err != nil {
			return entity.ProgressSnapshot{}, fmt.Errorf("failed to load monthly contributions for goal: %w", err)
		}
		monthMatched = MatchTransactions(goal, month, monthTransactions)
	}

	return ComputeProgress(goal, now, window, matched, monthMatched), nil
}

// category resolves the budget category for display. A missing category does
// not fail the read.
func (l *progressLoader) category(ctx context.Context, goal *entity.Goal) *entity.Category {
	categoryID := goal.CategoryID()
	if categoryID == nil || l.categories == nil {
		return nil
	}

	category, err := l.categories.FindByID(ctx, *categoryID, goal.UserID)
	if err != nil {
		slog.Debug("Failed to fetch category for goal",
			"goalID", goal.ID,
			"categoryID", *categoryID,
			"error", err,
		)
		return nil
	}
	return category
}

// InvalidateProgressCache drops cached snapshots after a write touching the
// user's goals or transactions. Failures are logged only; the cache TTL bounds
// any staleness.
func InvalidateProgressCache(ctx context.Context, cache adapter.GoalProgressCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate goal progress cache",
			"userID", userID,
			"error", err,
		)
	}
}
