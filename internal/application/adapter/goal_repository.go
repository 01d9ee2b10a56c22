// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// Lookups are always scoped by the owning user.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID for the given owner.
	// Returns domainerror.ErrGoalNotFound when absent or owned by someone else.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal owned by the given user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
