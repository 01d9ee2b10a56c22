// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// TransactionQuery is the read-only view of transactions used by goal progress.
type TransactionQuery interface {
	// FindByDateRange retrieves all transactions of a user dated within [startDate, endDate].
	FindByDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Transaction, error)

	// FindByGoalLink retrieves the user's transactions linked to a goal dated within [startDate, endDate].
	FindByGoalLink(ctx context.Context, userID, goalID uuid.UUID, startDate, endDate time.Time) ([]*entity.Transaction, error)

	// CountByGoalLink counts the user's transactions linked to a goal.
	CountByGoalLink(ctx context.Context, userID, goalID uuid.UUID) (int64, error)
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	TransactionQuery

	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID for the given owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// Delete soft-deletes a transaction owned by the given user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
