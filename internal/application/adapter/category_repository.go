// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// CategoryLookup is the narrow capability goal validation needs.
type CategoryLookup interface {
	// ExistsForUser checks whether the category exists and belongs to the user.
	ExistsForUser(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

// CategoryRepository defines the interface for category read operations.
type CategoryRepository interface {
	CategoryLookup

	// FindByID retrieves a category by its ID for the given owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)
}
