// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/application/usecase/goal"
	"github.com/finance-tracker/goals/internal/domain/entity"
	"github.com/finance-tracker/goals/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
// Without dates the current calendar month is listed.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	GoalID    *uuid.UUID
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  *uuid.UUID
	Category    *CategoryOutput
	GoalID      *uuid.UUID
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryOutput represents category information in transaction output.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Color string
	Icon  string
	Type  entity.CategoryType
}

// TotalsOutput represents aggregated totals in the output.
type TotalsOutput struct {
	IncomeTotal       decimal.Decimal
	ExpenseTotal      decimal.Decimal
	ContributionTotal decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	StartDate    time.Time
	EndDate      time.Time
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	now             goal.Clock
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	now goal.Clock,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		now:             now,
	}
}

// Execute performs the transaction listing, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	window := valueobject.CurrentMonthRange(uc.now())
	start, end := window.Start, window.End
	if input.StartDate != nil {
		start = entity.TruncateToDay(*input.StartDate)
	}
	if input.EndDate != nil {
		end = entity.TruncateToDay(*input.EndDate).Add(24*time.Hour - time.Nanosecond)
	}

	var (
		transactions []*entity.Transaction
		err          error
	)
	if input.GoalID != nil {
		transactions, err = uc.transactionRepo.FindByGoalLink(ctx, input.UserID, *input.GoalID, start, end)
	} else {
		transactions, err = uc.transactionRepo.FindByDateRange(ctx, input.UserID, start, end)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if input.Type != nil && tx.Type != *input.Type {
			continue
		}
		filtered = append(filtered, tx)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, len(filtered)),
		StartDate:    start,
		EndDate:      end,
		Totals: TotalsOutput{
			IncomeTotal:       decimal.Zero,
			ExpenseTotal:      decimal.Zero,
			ContributionTotal: decimal.Zero,
		},
	}

	categories := make(map[uuid.UUID]*entity.Category)
	for _, tx := range filtered {
		output.Transactions = append(output.Transactions, newTransactionOutput(tx, uc.category(ctx, tx, categories)))

		switch tx.Type {
		case entity.TransactionTypeIncome:
			output.Totals.IncomeTotal = output.Totals.IncomeTotal.Add(tx.Amount.Abs())
		case entity.TransactionTypeExpense:
			output.Totals.ExpenseTotal = output.Totals.ExpenseTotal.Add(tx.Amount.Abs())
		case entity.TransactionTypeContribution:
			output.Totals.ContributionTotal = output.Totals.ContributionTotal.Add(tx.Amount.Abs())
		}
	}

	return output, nil
}

// category resolves a transaction's category once per listing.
func (uc *ListTransactionsUseCase) category(ctx context.Context, tx *entity.Transaction, seen map[uuid.UUID]*entity.Category) *entity.Category {
	if tx.CategoryID == nil {
		return nil
	}
	if cat, ok := seen[*tx.CategoryID]; ok {
		return cat
	}

	cat, err := uc.categoryRepo.FindByID(ctx, *tx.CategoryID, tx.UserID)
	if err != nil {
		slog.Debug("Failed to fetch category for transaction",
			"transactionID", tx.ID,
			"categoryID", *tx.CategoryID,
			"error", err,
		)
		cat = nil
	}
	seen[*tx.CategoryID] = cat
	return cat
}

func newTransactionOutput(tx *entity.Transaction, category *entity.Category) *TransactionOutput {
	output := &TransactionOutput{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        tx.Type,
		CategoryID:  tx.CategoryID,
		GoalID:      tx.GoalID,
		Notes:       tx.Notes,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}

	if category != nil {
		output.Category = &CategoryOutput{
			ID:    category.ID,
			Name:  category.Name,
			Color: category.Color,
			Icon:  category.Icon,
			Type:  category.Type,
		}
	}

	return output
}
