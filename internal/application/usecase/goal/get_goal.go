// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

// GetGoalInput represents the input for getting a goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Goal *entity.GoalWithProgress
}

// GetGoalUseCase handles getting a goal by ID with freshly computed progress.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
	loader   *progressLoader
	now      Clock
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(
	goalRepo adapter.GoalRepository,
	transactionQuery adapter.TransactionQuery,
	categoryRepo adapter.CategoryRepository,
	now Clock,
) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
		loader:   newProgressLoader(transactionQuery, categoryRepo),
		now:      now,
	}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	withProgress, err := uc.loader.load(ctx, goal, uc.now())
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{
		Goal: withProgress,
	}, nil
}

// findOwnedGoal loads a goal through the user-scoped repository query.
// Absent and foreign goals both surface as the same not found error.
func findOwnedGoal(ctx context.Context, goalRepo adapter.GoalRepository, goalID, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := goalRepo.FindByID(ctx, goalID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalNotFoundError()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return goal, nil
}
