// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/application/adapter"
	"github.com/finance-tracker/goals/internal/application/usecase/goal"
	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  *uuid.UUID
	GoalID      *uuid.UUID // Required for contributions, rejected otherwise
	Notes       string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	goalRepo        adapter.GoalRepository
	cache           adapter.GoalProgressCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	goalRepo adapter.GoalRepository,
	cache adapter.GoalProgressCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		goalRepo:        goalRepo,
		cache:           cache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	input.Description = strings.TrimSpace(input.Description)

	if input.Description == "" || input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"date and description are required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if len(input.Notes) > MaxNotesLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense', 'income' or 'contribution'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	var category *entity.Category
	if input.CategoryID != nil {
		cat, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFoundForTransaction) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeTxnCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotFoundForTransaction,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		category = cat
	}

	if err := uc.validateGoalLink(ctx, input); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Date.UTC(),
		input.Description,
		input.Amount.Round(2),
		input.Type,
		input.CategoryID,
		input.GoalID,
		input.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	goal.InvalidateProgressCache(ctx, uc.cache, input.UserID)

	slog.Info("Transaction created",
		"transactionID", transaction.ID,
		"userID", transaction.UserID,
		"type", transaction.Type,
	)

	return &CreateTransactionOutput{
		Transaction: newTransactionOutput(transaction, category),
	}, nil
}

// validateGoalLink enforces that exactly contributions carry a goal link and
// that the linked goal is one of the user's savings goals.
func (uc *CreateTransactionUseCase) validateGoalLink(ctx context.Context, input CreateTransactionInput) error {
	if input.Type != entity.TransactionTypeContribution {
		if input.GoalID != nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeGoalLinkNotAllowed,
				"only contributions can be linked to a goal",
				domainerror.ErrGoalLinkNotAllowed,
			)
		}
		return nil
	}

	if input.GoalID == nil || *input.GoalID == uuid.Nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeContributionGoalRequired,
			"contributions must be linked to a savings goal",
			domainerror.ErrContributionGoalRequired,
		)
	}

	linked, err := uc.goalRepo.FindByID(ctx, *input.GoalID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return contributionGoalInvalidError()
		}
		return fmt.Errorf("failed to find goal: %w", err)
	}
	if linked.Type() != entity.GoalTypeSavings {
		return contributionGoalInvalidError()
	}

	return nil
}

func contributionGoalInvalidError() *domainerror.TransactionError {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeContributionGoalInvalid,
		"linked goal must be one of your savings goals",
		domainerror.ErrContributionGoalInvalid,
	)
}
