// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

func TestGetGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	goal := newSavings(ownerID, "300", fixedNow.AddDate(0, -1, 0), entity.RecurringSavingsGoal{Period: entity.GoalPeriodWeekly})
	transactions := &fakeTransactionQuery{transactions: []*entity.Transaction{
		newTransaction(ownerID, fixedNow.AddDate(0, 0, -1), "100", entity.TransactionTypeContribution, nil, &goal.ID),
		newTransaction(ownerID, fixedNow.AddDate(0, 0, -7), "100", entity.TransactionTypeContribution, nil, &goal.ID),
	}}
	uc := NewGetGoalUseCase(newFakeGoalRepository(goal), transactions, newFakeCategoryRepository(), fixedClock)

	t.Run("owner gets goal with current period progress", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetGoalInput{GoalID: goal.ID, UserID: ownerID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.Progress.CurrentAmount.Equal(dec("100")) {
			t.Errorf("expected this week's 100, got %s", output.Goal.Progress.CurrentAmount)
		}
		if output.Goal.Progress.IsOnTrack {
			t.Error("expected 100 of 300 to be off track")
		}
		if output.Goal.Progress.PercentComplete != 33.3 {
			t.Errorf("expected percent 33.3, got %v", output.Goal.Progress.PercentComplete)
		}
	})

	tests := []struct {
		name   string
		goalID uuid.UUID
		userID uuid.UUID
	}{
		{name: "another user's goal", goalID: goal.ID, userID: uuid.New()},
		{name: "unknown goal", goalID: uuid.New(), userID: ownerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, GetGoalInput{GoalID: tt.goalID, UserID: tt.userID})

			if !errors.Is(err, domainerror.ErrGoalNotFound) {
				t.Fatalf("expected not found error, got %v", err)
			}
			var goalErr *domainerror.GoalError
			if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
				t.Errorf("expected code %s, got %v", domainerror.ErrCodeGoalNotFound, err)
			}
		})
	}
}
