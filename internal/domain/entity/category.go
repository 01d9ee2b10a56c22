// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category represents a transaction category owned by a user.
// Categories are managed elsewhere; goals only reference them.
type Category struct {
	ID      uuid.UUID
	Name    string
	Color   string
	Icon    string
	OwnerID uuid.UUID
	Type    CategoryType
}
