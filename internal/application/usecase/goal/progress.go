// Package goal contains goal-related use cases.
package goal

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/domain/entity"
	"github.com/finance-tracker/goals/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

const (
	// amountPlaces is the display resolution of money amounts.
	amountPlaces = 2
	// percentPlaces is the display resolution of percentages.
	percentPlaces = 1
)

// ComputeProgress builds the progress snapshot of a goal from its already
// matched transactions. monthMatched holds this calendar month's linked
// contributions and is only read for one-time savings goals with a positive
// planned contribution.
//
// All rounding is half away from zero. The function is pure: the same inputs
// always yield the same snapshot.
func ComputeProgress(
	goal *entity.Goal,
	now time.Time,
	window valueobject.PeriodRange,
	matched []*entity.Transaction,
	monthMatched []*entity.Transaction,
) entity.ProgressSnapshot {
	snapshot := entity.ProgressSnapshot{
		CurrentAmount: sumAmounts(matched),
		PeriodLabel:   window.Label,
		PeriodStart:   window.Start,
		PeriodEnd:     window.End,
	}

	switch kind := goal.Kind.(type) {
	case entity.BudgetGoal:
		computeBudgetProgress(&snapshot, goal)
	case entity.RecurringSavingsGoal:
		computeRecurringSavingsProgress(&snapshot, goal)
	case entity.DeadlineSavingsGoal:
		computeDeadlineSavingsProgress(&snapshot, goal, kind, now)
		applyMonthlyPlan(&snapshot, kind.PlannedContribution, monthMatched)
	case entity.OpenEndedSavingsGoal:
		snapshot.IsOnTrack = true
		applyMonthlyPlan(&snapshot, kind.PlannedContribution, monthMatched)
	}

	applyCompletion(&snapshot, goal)
	return snapshot
}

// Budgets are a ceiling: spending equal to the target is still on track.
func computeBudgetProgress(snapshot *entity.ProgressSnapshot, goal *entity.Goal) {
	snapshot.IsOnTrack = snapshot.CurrentAmount.LessThanOrEqual(goal.TargetAmount)
}

// Recurring savings are a floor per period; the target doubles as the plan.
func computeRecurringSavingsProgress(snapshot *entity.ProgressSnapshot, goal *entity.Goal) {
	snapshot.IsOnTrack = snapshot.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)

	actual := snapshot.CurrentAmount
	planned := goal.TargetAmount
	snapshot.PeriodActualAmount = &actual
	snapshot.PeriodPlannedAmount = &planned
}

// Deadline savings are paced linearly between start date and deadline.
// A deadline on or before the start date skips pacing and counts as on track.
func computeDeadlineSavingsProgress(
	snapshot *entity.ProgressSnapshot,
	goal *entity.Goal,
	kind entity.DeadlineSavingsGoal,
	now time.Time,
) {
	start := entity.TruncateToDay(goal.StartDate)
	deadline := entity.TruncateToDay(kind.Deadline)
	if !deadline.After(start) {
		snapshot.IsOnTrack = true
		return
	}

	totalDays := daysBetween(start, deadline)
	elapsedDays := daysBetween(start, entity.TruncateToDay(now))
	if elapsedDays < 0 {
		elapsedDays = 0
	}
	if elapsedDays > totalDays {
		elapsedDays = totalDays
	}

	expected := goal.TargetAmount.
		Mul(decimal.NewFromInt(elapsedDays)).
		Div(decimal.NewFromInt(totalDays))

	snapshot.IsOnTrack = snapshot.CurrentAmount.GreaterThanOrEqual(expected)
	rounded := expected.Round(amountPlaces)
	snapshot.ExpectedAmount = &rounded
}

// applyMonthlyPlan layers the monthly pacing view over a lifetime goal.
func applyMonthlyPlan(snapshot *entity.ProgressSnapshot, planned *decimal.Decimal, monthMatched []*entity.Transaction) {
	if planned == nil || !planned.IsPositive() {
		return
	}

	actual := sumAmounts(monthMatched)
	plannedAmount := planned.Round(amountPlaces)
	snapshot.PeriodActualAmount = &actual
	snapshot.PeriodPlannedAmount = &plannedAmount
}

// applyCompletion fills the remaining amount and the clamped percentage.
func applyCompletion(snapshot *entity.ProgressSnapshot, goal *entity.Goal) {
	target := goal.TargetAmount

	snapshot.RemainingAmount = decimal.Max(decimal.Zero, target.Sub(snapshot.CurrentAmount)).Round(amountPlaces)

	if !target.IsPositive() {
		slog.Warn("Goal with non-positive target reached progress computation",
			"goalID", goal.ID,
			"targetAmount", target.String(),
		)
		snapshot.PercentComplete = 0
		return
	}

	percent := snapshot.CurrentAmount.Mul(hundred).Div(target).Round(percentPlaces)
	percent = decimal.Min(hundred, decimal.Max(decimal.Zero, percent))
	snapshot.PercentComplete = percent.InexactFloat64()
}

func sumAmounts(transactions []*entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Amount.Abs())
	}
	return total.Round(amountPlaces)
}

// daysBetween counts whole days between two UTC midnights.
func daysBetween(from, to time.Time) int64 {
	return int64(to.Sub(from).Hours() / 24)
}
