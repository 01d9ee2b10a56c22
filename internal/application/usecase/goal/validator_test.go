// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

func TestValidateGoalDefinition(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	ownedCategory := &entity.Category{ID: uuid.New(), Name: "Groceries", OwnerID: userID}
	foreignCategory := &entity.Category{ID: uuid.New(), Name: "Rent", OwnerID: uuid.New()}
	unknownPeriod := entity.GoalPeriod("fortnightly")

	tests := []struct {
		name          string
		def           GoalDefinition
		expectedErr   error
		expectedCode  domainerror.GoalErrorCode
		expectLookups int
	}{
		{
			name: "valid budget",
			def: GoalDefinition{
				Name: "Groceries", Type: entity.GoalTypeBudget, TargetAmount: dec("500"),
				CategoryID: &ownedCategory.ID, Period: periodPtr(entity.GoalPeriodMonthly),
			},
			expectLookups: 1,
		},
		{
			name: "budget without category",
			def: GoalDefinition{
				Name: "Groceries", Type: entity.GoalTypeBudget, TargetAmount: dec("500"),
				Period: periodPtr(entity.GoalPeriodMonthly),
			},
			expectedErr:  domainerror.ErrMissingGoalCategory,
			expectedCode: domainerror.ErrCodeMissingCategory,
		},
		{
			name: "budget without period",
			def: GoalDefinition{
				Name: "Groceries", Type: entity.GoalTypeBudget, TargetAmount: dec("500"),
				CategoryID: &ownedCategory.ID,
			},
			expectedErr:  domainerror.ErrMissingGoalPeriod,
			expectedCode: domainerror.ErrCodeMissingPeriod,
		},
		{
			name: "budget with period none",
			def: GoalDefinition{
				Name: "Groceries", Type: entity.GoalTypeBudget, TargetAmount: dec("500"),
				CategoryID: &ownedCategory.ID, Period: periodPtr(entity.GoalPeriodNone),
			},
			expectedErr:  domainerror.ErrInvalidGoalPeriod,
			expectedCode: domainerror.ErrCodeInvalidGoalPeriod,
		},
		{
			name: "budget with another user's category",
			def: GoalDefinition{
				Name: "Rent", Type: entity.GoalTypeBudget, TargetAmount: dec("1500"),
				CategoryID: &foreignCategory.ID, Period: periodPtr(entity.GoalPeriodMonthly),
			},
			expectedErr:   domainerror.ErrInvalidGoalCategory,
			expectedCode:  domainerror.ErrCodeInvalidCategory,
			expectLookups: 1,
		},
		{
			name: "unknown period keyword",
			def: GoalDefinition{
				Name: "Coffee", Type: entity.GoalTypeSavings, TargetAmount: dec("50"),
				Period: &unknownPeriod,
			},
			expectedErr:  domainerror.ErrInvalidGoalPeriod,
			expectedCode: domainerror.ErrCodeInvalidGoalPeriod,
		},
		{
			name:         "blank name",
			def:          GoalDefinition{Type: entity.GoalTypeSavings, TargetAmount: dec("50")},
			expectedErr:  domainerror.ErrMissingGoalName,
			expectedCode: domainerror.ErrCodeMissingGoalName,
		},
		{
			name:         "unknown type",
			def:          GoalDefinition{Name: "Trip", Type: "investment", TargetAmount: dec("50")},
			expectedErr:  domainerror.ErrInvalidGoalType,
			expectedCode: domainerror.ErrCodeInvalidGoalType,
		},
		{
			name:         "zero target",
			def:          GoalDefinition{Name: "Trip", Type: entity.GoalTypeSavings, TargetAmount: dec("0")},
			expectedErr:  domainerror.ErrInvalidTargetAmount,
			expectedCode: domainerror.ErrCodeInvalidTargetAmount,
		},
		{
			name: "negative planned contribution",
			def: GoalDefinition{
				Name: "Trip", Type: entity.GoalTypeSavings, TargetAmount: dec("500"),
				PlannedContribution: decPtr("-10"),
			},
			expectedErr:  domainerror.ErrInvalidPlannedContribution,
			expectedCode: domainerror.ErrCodeInvalidPlannedContribution,
		},
		{
			name: "valid one-time savings",
			def: GoalDefinition{
				Name: "Trip", Type: entity.GoalTypeSavings, TargetAmount: dec("500"),
				Deadline: timePtr(fixedNow.AddDate(0, 6, 0)), PlannedContribution: decPtr("100"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := newFakeCategoryRepository(ownedCategory, foreignCategory)

			err := ValidateGoalDefinition(ctx, userID, NormalizeGoalDefinition(tt.def), categories)

			if categories.lookupCalls != tt.expectLookups {
				t.Errorf("expected %d category lookups, got %d", tt.expectLookups, categories.lookupCalls)
			}
			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
			var goalErr *domainerror.GoalError
			if !errors.As(err, &goalErr) || goalErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %v", tt.expectedCode, err)
			}
		})
	}
}

func TestNormalizeGoalDefinition(t *testing.T) {
	categoryID := uuid.New()
	deadline := time.Date(2027, time.March, 1, 18, 45, 0, 0, time.UTC)

	t.Run("savings goal drops category", func(t *testing.T) {
		def := NormalizeGoalDefinition(GoalDefinition{
			Name: "  Vacation  ", Type: entity.GoalTypeSavings, TargetAmount: dec("2000"),
			CategoryID: &categoryID,
		})
		if def.CategoryID != nil {
			t.Error("expected category to be cleared for savings goal")
		}
		if def.Name != "Vacation" {
			t.Errorf("expected trimmed name, got %q", def.Name)
		}
		if _, ok := def.Kind().(entity.OpenEndedSavingsGoal); !ok {
			t.Errorf("expected open-ended savings, got %T", def.Kind())
		}
	})

	t.Run("recurring savings drops deadline and plan", func(t *testing.T) {
		def := NormalizeGoalDefinition(GoalDefinition{
			Name: "Monthly saving", Type: entity.GoalTypeSavings, TargetAmount: dec("200"),
			Period: periodPtr(entity.GoalPeriodMonthly), Deadline: &deadline, PlannedContribution: decPtr("50"),
		})
		if def.Deadline != nil || def.PlannedContribution != nil {
			t.Error("expected deadline and planned contribution to be cleared")
		}
		if _, ok := def.Kind().(entity.RecurringSavingsGoal); !ok {
			t.Errorf("expected recurring savings, got %T", def.Kind())
		}
	})

	t.Run("one-time savings drops period none and truncates deadline", func(t *testing.T) {
		def := NormalizeGoalDefinition(GoalDefinition{
			Name: "Car", Type: entity.GoalTypeSavings, TargetAmount: dec("8000"),
			Period: periodPtr(entity.GoalPeriodNone), Deadline: &deadline,
		})
		if def.Period != nil {
			t.Error("expected period to be cleared for one-time savings")
		}
		kind, ok := def.Kind().(entity.DeadlineSavingsGoal)
		if !ok {
			t.Fatalf("expected deadline savings, got %T", def.Kind())
		}
		if !kind.Deadline.Equal(time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected deadline truncated to day, got %v", kind.Deadline)
		}
	})

	t.Run("budget drops deadline and plan", func(t *testing.T) {
		def := NormalizeGoalDefinition(GoalDefinition{
			Name: "Dining", Type: entity.GoalTypeBudget, TargetAmount: dec("300"),
			CategoryID: &categoryID, Period: periodPtr(entity.GoalPeriodWeekly),
			Deadline: &deadline, PlannedContribution: decPtr("50"),
		})
		if def.Deadline != nil || def.PlannedContribution != nil {
			t.Error("expected deadline and planned contribution to be cleared for budget")
		}
		kind, ok := def.Kind().(entity.BudgetGoal)
		if !ok || kind.CategoryID != categoryID || kind.Period != entity.GoalPeriodWeekly {
			t.Errorf("unexpected budget kind %+v", def.Kind())
		}
	})
}
