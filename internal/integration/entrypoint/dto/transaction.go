// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required"`
	CategoryID  *string         `json:"category_id,omitempty" binding:"omitempty,uuid"`
	GoalID      *string         `json:"goal_id,omitempty" binding:"omitempty,uuid"`
	Notes       string          `json:"notes,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction response.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	CategoryID  *string                      `json:"category_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	GoalID      *string                      `json:"goal_id,omitempty"`
	Notes       string                       `json:"notes"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal       string `json:"income_total"`
	ExpenseTotal      string `json:"expense_total"`
	ContributionTotal string `json:"contribution_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	StartDate    string                    `json:"start_date"`
	EndDate      string                    `json:"end_date"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Date:        txn.Date.Format(DateLayout),
		Description: txn.Description,
		Amount:      formatAmount(txn.Amount),
		Type:        string(txn.Type),
		Notes:       txn.Notes,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.CategoryID != nil {
		categoryID := txn.CategoryID.String()
		response.CategoryID = &categoryID
	}
	if txn.GoalID != nil {
		goalID := txn.GoalID.String()
		response.GoalID = &goalID
	}
	if txn.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    txn.Category.ID.String(),
			Name:  txn.Category.Name,
			Color: txn.Category.Color,
			Icon:  txn.Category.Icon,
			Type:  string(txn.Category.Type),
		}
	}

	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, 0, len(output.Transactions))
	for _, txn := range output.Transactions {
		transactions = append(transactions, ToTransactionResponse(txn))
	}

	return TransactionListResponse{
		Transactions: transactions,
		StartDate:    output.StartDate.Format(DateLayout),
		EndDate:      output.EndDate.Format(DateLayout),
		Totals: TransactionTotalsResponse{
			IncomeTotal:       formatAmount(output.Totals.IncomeTotal),
			ExpenseTotal:      formatAmount(output.Totals.ExpenseTotal),
			ContributionTotal: formatAmount(output.Totals.ContributionTotal),
		},
	}
}
