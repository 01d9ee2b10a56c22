// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
	// TransactionTypeContribution moves money toward a savings goal. It is
	// never counted as spending or earning.
	TransactionTypeContribution TransactionType = "contribution"
)

// IsValid reports whether the transaction type is known.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome || t == TransactionTypeContribution
}

// Transaction represents a financial transaction in the Finance Tracker system.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal // Always positive; Type carries the direction
	Type        TransactionType
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	GoalID      *uuid.UUID // Set only for contributions
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID *uuid.UUID,
	goalID *uuid.UUID,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		GoalID:      goalID,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsLinkedTo reports whether the transaction is linked to the given goal.
func (t *Transaction) IsLinkedTo(goalID uuid.UUID) bool {
	return t.GoalID != nil && *t.GoalID == goalID
}

// IsInCategory reports whether the transaction is assigned to the given category.
func (t *Transaction) IsInCategory(categoryID uuid.UUID) bool {
	return t.CategoryID != nil && *t.CategoryID == categoryID
}
