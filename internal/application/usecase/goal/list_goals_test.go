// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

func TestListGoalsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	groceries := &entity.Category{ID: uuid.New(), Name: "Groceries", OwnerID: userID}

	onTrackBudget := newBudget(userID, groceries.ID, "500", entity.GoalPeriodMonthly)
	offTrackSavings := newSavings(userID, "200", fixedNow.AddDate(0, -2, 0), entity.RecurringSavingsGoal{Period: entity.GoalPeriodMonthly})
	inactive := newSavings(userID, "1000", fixedNow.AddDate(0, -2, 0), entity.OpenEndedSavingsGoal{})
	inactive.IsActive = false
	foreign := newSavings(uuid.New(), "50", fixedNow, entity.OpenEndedSavingsGoal{})

	transactions := &fakeTransactionQuery{transactions: []*entity.Transaction{
		newTransaction(userID, fixedNow, "250", entity.TransactionTypeExpense, &groceries.ID, nil),
		newTransaction(userID, fixedNow, "50", entity.TransactionTypeContribution, nil, &offTrackSavings.ID),
	}}

	newUseCase := func(cache *fakeProgressCache) *ListGoalsUseCase {
		return NewListGoalsUseCase(
			newFakeGoalRepository(onTrackBudget, offTrackSavings, inactive, foreign),
			transactions,
			newFakeCategoryRepository(groceries),
			cache,
			fixedClock,
		)
	}

	t.Run("lists only the user's goals with summary", func(t *testing.T) {
		output, err := NewListGoalsUseCase(
			newFakeGoalRepository(onTrackBudget, offTrackSavings, inactive, foreign),
			transactions,
			newFakeCategoryRepository(groceries),
			nil,
			fixedClock,
		).Execute(ctx, ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Goals) != 3 {
			t.Fatalf("expected 3 goals, got %d", len(output.Goals))
		}
		expected := entity.GoalSummary{
			TotalGoals:    3,
			ActiveGoals:   2,
			BudgetGoals:   1,
			SavingsGoals:  2,
			OnTrackGoals:  2,
			OffTrackGoals: 1,
		}
		if output.Summary != expected {
			t.Errorf("expected summary %+v, got %+v", expected, output.Summary)
		}
		if output.Summary.OnTrackGoals+output.Summary.OffTrackGoals != output.Summary.TotalGoals {
			t.Error("on-track and off-track counts must add up to the total")
		}
	})

	t.Run("active only filter", func(t *testing.T) {
		output, err := newUseCase(newFakeProgressCache()).Execute(ctx, ListGoalsInput{UserID: userID, ActiveOnly: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Goals) != 2 {
			t.Fatalf("expected 2 active goals, got %d", len(output.Goals))
		}
		for _, g := range output.Goals {
			if !g.Goal.IsActive {
				t.Errorf("unexpected inactive goal %s", g.Goal.ID)
			}
		}
	})

	t.Run("second listing is served from cache", func(t *testing.T) {
		cache := newFakeProgressCache()
		uc := newUseCase(cache)

		first, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.setCalls != 1 {
			t.Fatalf("expected snapshots to be cached once, got %d", cache.setCalls)
		}

		second, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.setCalls != 1 {
			t.Errorf("expected cache hit without rewrite, got %d set calls", cache.setCalls)
		}
		if first.Summary != second.Summary {
			t.Errorf("expected identical summaries, got %+v and %+v", first.Summary, second.Summary)
		}
	})

	t.Run("cached snapshot wins until invalidated", func(t *testing.T) {
		cache := newFakeProgressCache()
		day := fixedNow.Format(CacheDayLayout)
		stale := entity.ProgressSnapshot{CurrentAmount: dec("1"), IsOnTrack: true, PeriodLabel: "stale"}
		_ = cache.Set(ctx, userID, day, 0, map[uuid.UUID]entity.ProgressSnapshot{
			onTrackBudget.ID:   stale,
			offTrackSavings.ID: stale,
			inactive.ID:        stale,
		})
		uc := newUseCase(cache)

		output, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, g := range output.Goals {
			if g.Progress.PeriodLabel != "stale" {
				t.Errorf("expected cached snapshot for %s", g.Goal.ID)
			}
		}

		InvalidateProgressCache(ctx, cache, userID)

		output, err = uc.Execute(ctx, ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, g := range output.Goals {
			if g.Progress.PeriodLabel == "stale" {
				t.Errorf("expected recomputed snapshot for %s", g.Goal.ID)
			}
		}
	})
}

func TestListGoalsUseCase_InvalidationDuringComputation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	groceries := &entity.Category{ID: uuid.New(), Name: "Groceries", OwnerID: userID}
	budget := newBudget(userID, groceries.ID, "100", entity.GoalPeriodMonthly)

	cache := newFakeProgressCache()
	transactions := &fakeTransactionQuery{}
	// An expense lands after the listing read its transactions but before
	// it stores the computed snapshots.
	transactions.afterRead = func() {
		transactions.transactions = append(transactions.transactions,
			newTransaction(userID, fixedNow, "150", entity.TransactionTypeExpense, &groceries.ID, nil))
		InvalidateProgressCache(ctx, cache, userID)
	}

	uc := NewListGoalsUseCase(newFakeGoalRepository(budget), transactions, newFakeCategoryRepository(groceries), cache, fixedClock)

	first, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Goals[0].Progress.CurrentAmount.IsZero() {
		t.Fatalf("expected the first listing to miss the late expense, got %s", first.Goals[0].Progress.CurrentAmount)
	}
	if cache.staleSets != 1 {
		t.Fatalf("expected the outdated snapshots to be rejected, got %d stale sets", cache.staleSets)
	}

	second, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	progress := second.Goals[0].Progress
	if !progress.CurrentAmount.Equal(dec("150")) || progress.IsOnTrack {
		t.Errorf("expected fresh progress 150 off track, got %s on track %v", progress.CurrentAmount, progress.IsOnTrack)
	}
}

func TestSummarizeGoals_Empty(t *testing.T) {
	summary := SummarizeGoals(nil)
	if summary != (entity.GoalSummary{}) {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}
