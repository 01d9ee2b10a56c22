// Package goal contains goal-related use cases.
package goal

import (
	"fmt"
	"time"

	"github.com/finance-tracker/goals/internal/domain/entity"
	"github.com/finance-tracker/goals/internal/domain/valueobject"
)

// OpenEndedLabel labels one-time savings goals without a deadline.
const OpenEndedLabel = "Open-ended"

// ContributionWindow returns the window a goal's progress is measured over.
// Recurring goals use the current period; one-time savings goals accumulate
// from their start date through today.
func ContributionWindow(goal *entity.Goal, now time.Time) valueobject.PeriodRange {
	switch kind := goal.Kind.(type) {
	case entity.BudgetGoal:
		return valueobject.ResolvePeriodRange(kind.Period, now)
	case entity.RecurringSavingsGoal:
		return valueobject.ResolvePeriodRange(kind.Period, now)
	case entity.DeadlineSavingsGoal:
		window := valueobject.CumulativeRange(goal.StartDate, now)
		window.Label = fmt.Sprintf("By %s", kind.Deadline.UTC().Format(valueobject.DisplayDateLayout))
		return window
	default:
		window := valueobject.CumulativeRange(goal.StartDate, now)
		window.Label = OpenEndedLabel
		return window
	}
}

// MatchTransactions filters transactions down to those counting toward the goal
// inside window. Budgets match expenses in their category; savings goals match
// contributions linked to them. The input slice is neither modified nor assumed
// to be sorted, and matches keep their input order.
func MatchTransactions(goal *entity.Goal, window valueobject.PeriodRange, transactions []*entity.Transaction) []*entity.Transaction {
	matched := make([]*entity.Transaction, 0, len(transactions))

	for _, tx := range transactions {
		if tx == nil || !window.Contains(tx.Date) {
			continue
		}

		switch kind := goal.Kind.(type) {
		case entity.BudgetGoal:
			if tx.Type == entity.TransactionTypeExpense && tx.IsInCategory(kind.CategoryID) {
				matched = append(matched, tx)
			}
		case entity.RecurringSavingsGoal, entity.DeadlineSavingsGoal, entity.OpenEndedSavingsGoal:
			if tx.Type == entity.TransactionTypeContribution && tx.IsLinkedTo(goal.ID) {
				matched = append(matched, tx)
			}
		}
	}

	return matched
}
