// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID     uuid.UUID
	Definition GoalDefinition
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.GoalWithProgress
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
	loader       *progressLoader
	cache        adapter.GoalProgressCache
	now          Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(
	goalRepo adapter.GoalRepository,
	transactionQuery adapter.TransactionQuery,
	categoryRepo adapter.CategoryRepository,
	cache adapter.GoalProgressCache,
	now Clock,
) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
		loader:       newProgressLoader(transactionQuery, categoryRepo),
		cache:        cache,
		now:          now,
	}
}

// Execute performs the goal creation. Nothing is persisted when validation fails.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	def := NormalizeGoalDefinition(input.Definition)

	if err := ValidateGoalDefinition(ctx, input.UserID, def, uc.categoryRepo); err != nil {
		return nil, err
	}

	now := uc.now()
	startDate := now
	if def.StartDate != nil {
		startDate = *def.StartDate
	}

	goal := entity.NewGoal(input.UserID, def.Name, def.TargetAmount, def.Kind(), startDate)
	goal.CreatedAt = now.UTC()
	goal.UpdatedAt = now.UTC()

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	InvalidateProgressCache(ctx, uc.cache, input.UserID)

	slog.Info("Goal created",
		"goalID", goal.ID,
		"userID", goal.UserID,
		"type", goal.Type(),
	)

	withProgress, err := uc.loader.load(ctx, goal, now)
	if err != nil {
		return nil, err
	}

	return &CreateGoalOutput{
		Goal: withProgress,
	}, nil
}
