// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID                   uuid.UUID
	UserID                   uuid.UUID
	Name                     *string
	Type                     *entity.GoalType // Changing type replaces category, period and deadline
	TargetAmount             *decimal.Decimal
	CategoryID               *uuid.UUID
	Period                   *entity.GoalPeriod // "none" turns a recurring savings goal into a one-time goal
	Deadline                 *time.Time         // Turns a recurring savings goal into a one-time goal
	ClearDeadline            bool
	StartDate                *time.Time
	PlannedContribution      *decimal.Decimal
	ClearPlannedContribution bool
	IsActive                 *bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.GoalWithProgress
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo         adapter.GoalRepository
	transactionQuery adapter.TransactionQuery
	categoryRepo     adapter.CategoryRepository
	getUseCase       *GetGoalUseCase
	cache            adapter.GoalProgressCache
	now              Clock
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(
	goalRepo adapter.GoalRepository,
	transactionQuery adapter.TransactionQuery,
	categoryRepo adapter.CategoryRepository,
	cache adapter.GoalProgressCache,
	now Clock,
) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:         goalRepo,
		transactionQuery: transactionQuery,
		categoryRepo:     categoryRepo,
		getUseCase:       NewGetGoalUseCase(goalRepo, transactionQuery, categoryRepo, now),
		cache:            cache,
		now:              now,
	}
}

// Execute performs the goal update and returns the goal as re-read after the
// write, so progress always reflects current transactions.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	def := NormalizeGoalDefinition(mergeGoalDefinition(DefinitionFromGoal(goal), input))

	if err := ValidateGoalDefinition(ctx, input.UserID, def, uc.categoryRepo); err != nil {
		return nil, err
	}

	if def.StartDate != nil {
		startDate := entity.TruncateToDay(*def.StartDate)
		if !startDate.Equal(entity.TruncateToDay(goal.StartDate)) {
			if err := uc.ensureStartDateUnlocked(ctx, goal); err != nil {
				return nil, err
			}
			goal.StartDate = startDate
		}
	}

	goal.Name = def.Name
	goal.TargetAmount = def.TargetAmount
	goal.Kind = def.Kind()
	if input.IsActive != nil {
		goal.IsActive = *input.IsActive
	}
	goal.UpdatedAt = uc.now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	InvalidateProgressCache(ctx, uc.cache, input.UserID)

	output, err := uc.getUseCase.Execute(ctx, GetGoalInput{GoalID: goal.ID, UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &UpdateGoalOutput{
		Goal: output.Goal,
	}, nil
}

// ensureStartDateUnlocked rejects start date changes once contributions are linked.
func (uc *UpdateGoalUseCase) ensureStartDateUnlocked(ctx context.Context, goal *entity.Goal) error {
	linked, err := uc.transactionQuery.CountByGoalLink(ctx, goal.UserID, goal.ID)
	if err != nil {
		return fmt.Errorf("failed to count linked transactions: %w", err)
	}
	if linked > 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeStartDateLocked,
			"start date cannot change once contributions are linked",
			domainerror.ErrGoalStartDateLocked,
		)
	}
	return nil
}

// mergeGoalDefinition applies the patch on top of the current definition.
func mergeGoalDefinition(current GoalDefinition, input UpdateGoalInput) GoalDefinition {
	def := current

	if input.Type != nil && *input.Type != current.Type {
		def = GoalDefinition{
			Name:         current.Name,
			Type:         *input.Type,
			TargetAmount: current.TargetAmount,
			StartDate:    current.StartDate,
		}
	}

	if input.Name != nil {
		def.Name = *input.Name
	}
	if input.TargetAmount != nil {
		def.TargetAmount = *input.TargetAmount
	}
	if input.CategoryID != nil {
		def.CategoryID = input.CategoryID
	}
	if input.Period != nil {
		def.Period = input.Period
	}
	if input.Deadline != nil {
		def.Deadline = input.Deadline
		// A deadline turns a savings goal one-time; budgets keep their period.
		if input.Period == nil && def.Type == entity.GoalTypeSavings {
			def.Period = nil
		}
	}
	if input.ClearDeadline {
		def.Deadline = nil
	}
	if input.StartDate != nil {
		def.StartDate = input.StartDate
	}
	if input.PlannedContribution != nil {
		def.PlannedContribution = input.PlannedContribution
	}
	if input.ClearPlannedContribution {
		def.PlannedContribution = nil
	}

	return def
}
