// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

// ValidateGoalDefinition enforces the structural invariants of a normalized
// definition. Validation failures are returned as *domainerror.GoalError;
// any other error comes from the category lookup itself.
func ValidateGoalDefinition(ctx context.Context, userID uuid.UUID, def GoalDefinition, categories adapter.CategoryLookup) error {
	if def.Name == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalName,
			"name is required",
			domainerror.ErrMissingGoalName,
		)
	}

	if def.Type != entity.GoalTypeBudget && def.Type != entity.GoalTypeSavings {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"type must be 'budget' or 'savings'",
			domainerror.ErrInvalidGoalType,
		)
	}

	if !def.TargetAmount.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if def.PlannedContribution != nil && !def.PlannedContribution.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidPlannedContribution,
			"planned contribution must be greater than zero",
			domainerror.ErrInvalidPlannedContribution,
		)
	}

	if def.Period != nil && !def.Period.IsValid() {
		return invalidPeriodError()
	}

	if def.Type == entity.GoalTypeSavings {
		return nil
	}

	if def.CategoryID == nil || *def.CategoryID == uuid.Nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingCategory,
			"budget goals require a category",
			domainerror.ErrMissingGoalCategory,
		)
	}

	if def.Period == nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingPeriod,
			"budget goals require a period",
			domainerror.ErrMissingGoalPeriod,
		)
	}

	if !def.Period.IsRecurring() {
		return invalidPeriodError()
	}

	exists, err := categories.ExistsForUser(ctx, *def.CategoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to check category existence: %w", err)
	}
	if !exists {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCategory,
			"category not found",
			domainerror.ErrInvalidGoalCategory,
		)
	}

	return nil
}

func invalidPeriodError() *domainerror.GoalError {
	return domainerror.NewGoalError(
		domainerror.ErrCodeInvalidGoalPeriod,
		"period must be 'daily', 'weekly', 'monthly' or 'yearly'",
		domainerror.ErrInvalidGoalPeriod,
	)
}
