// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the kind of target a goal tracks.
type GoalType string

const (
	GoalTypeBudget  GoalType = "budget"
	GoalTypeSavings GoalType = "savings"
)

// GoalPeriod represents the recurrence window of a goal.
type GoalPeriod string

const (
	GoalPeriodDaily   GoalPeriod = "daily"
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodMonthly GoalPeriod = "monthly"
	GoalPeriodYearly  GoalPeriod = "yearly"
	GoalPeriodNone    GoalPeriod = "none"
)

// IsValid reports whether the period is one of the known keywords.
func (p GoalPeriod) IsValid() bool {
	switch p {
	case GoalPeriodDaily, GoalPeriodWeekly, GoalPeriodMonthly, GoalPeriodYearly, GoalPeriodNone:
		return true
	}
	return false
}

// IsRecurring reports whether the period describes an actual recurrence.
func (p GoalPeriod) IsRecurring() bool {
	return p.IsValid() && p != GoalPeriodNone
}

// GoalKind is the closed set of goal variants. Each variant carries only the
// fields that are meaningful for it.
type GoalKind interface {
	GoalType() GoalType
	goalKind()
}

// BudgetGoal is a spending ceiling on one category within a recurring period.
type BudgetGoal struct {
	CategoryID uuid.UUID
	Period     GoalPeriod
}

// RecurringSavingsGoal is a contribution floor that resets every period.
type RecurringSavingsGoal struct {
	Period GoalPeriod
}

// DeadlineSavingsGoal is a lifetime contribution target paced against a deadline.
type DeadlineSavingsGoal struct {
	Deadline            time.Time
	PlannedContribution *decimal.Decimal // Optional monthly plan
}

// OpenEndedSavingsGoal is a lifetime contribution target with no deadline.
type OpenEndedSavingsGoal struct {
	PlannedContribution *decimal.Decimal // Optional monthly plan
}

func (BudgetGoal) GoalType() GoalType { return GoalTypeBudget }
func (RecurringSavingsGoal) GoalType() GoalType { return GoalTypeSavings }
func (DeadlineSavingsGoal) GoalType() GoalType { return GoalTypeSavings }
func (OpenEndedSavingsGoal) GoalType() GoalType { return GoalTypeSavings }

func (BudgetGoal) goalKind() {}
func (RecurringSavingsGoal) goalKind() {}
func (DeadlineSavingsGoal) goalKind() {}
func (OpenEndedSavingsGoal) goalKind() {}

// NewGoalKind rebuilds a goal variant from its flat representation.
// For savings goals a recurring period wins over a deadline.
// Returns nil when the combination cannot describe any variant.
func NewGoalKind(
	goalType GoalType,
	categoryID *uuid.UUID,
	period *GoalPeriod,
	deadline *time.Time,
	plannedContribution *decimal.Decimal,
) GoalKind {
	switch goalType {
	case GoalTypeBudget:
		if categoryID == nil || period == nil {
			return nil
		}
		return BudgetGoal{CategoryID: *categoryID, Period: *period}
	case GoalTypeSavings:
		if period != nil && period.IsRecurring() {
			return RecurringSavingsGoal{Period: *period}
		}
		if deadline != nil {
			return DeadlineSavingsGoal{Deadline: *deadline, PlannedContribution: plannedContribution}
		}
		return OpenEndedSavingsGoal{PlannedContribution: plannedContribution}
	default:
		return nil
	}
}

// Goal represents a user's financial target in the Finance Tracker system.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	StartDate    time.Time
	IsActive     bool
	Kind         GoalKind
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGoal creates a new active Goal entity.
// A zero startDate defaults to the creation day.
func NewGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, kind GoalKind, startDate time.Time) *Goal {
	now := time.Now().UTC()
	if startDate.IsZero() {
		startDate = now
	}

	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		StartDate:    TruncateToDay(startDate),
		IsActive:     true,
		Kind:         kind,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Type returns the goal type derived from its variant.
func (g *Goal) Type() GoalType {
	if g.Kind == nil {
		return ""
	}
	return g.Kind.GoalType()
}

// CategoryID returns the budget category, or nil for savings goals.
func (g *Goal) CategoryID() *uuid.UUID {
	if k, ok := g.Kind.(BudgetGoal); ok {
		id := k.CategoryID
		return &id
	}
	return nil
}

// Period returns the recurrence period, or nil for one-time savings goals.
func (g *Goal) Period() *GoalPeriod {
	switch k := g.Kind.(type) {
	case BudgetGoal:
		p := k.Period
		return &p
	case RecurringSavingsGoal:
		p := k.Period
		return &p
	}
	return nil
}

// Deadline returns the deadline of a deadline savings goal, or nil.
func (g *Goal) Deadline() *time.Time {
	if k, ok := g.Kind.(DeadlineSavingsGoal); ok {
		d := k.Deadline
		return &d
	}
	return nil
}

// PlannedContribution returns the monthly plan of a one-time savings goal, or nil.
func (g *Goal) PlannedContribution() *decimal.Decimal {
	switch k := g.Kind.(type) {
	case DeadlineSavingsGoal:
		return k.PlannedContribution
	case OpenEndedSavingsGoal:
		return k.PlannedContribution
	}
	return nil
}

// IsRecurring reports whether progress is measured per period.
func (g *Goal) IsRecurring() bool {
	switch g.Kind.(type) {
	case BudgetGoal, RecurringSavingsGoal:
		return true
	}
	return false
}

// TruncateToDay returns midnight UTC of the given instant's UTC date.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ProgressSnapshot is the derived progress of a goal at a point in time.
// It is computed on every read and never persisted.
type ProgressSnapshot struct {
	CurrentAmount       decimal.Decimal
	RemainingAmount     decimal.Decimal
	PercentComplete     float64
	IsOnTrack           bool
	PeriodLabel         string
	PeriodStart         time.Time
	PeriodEnd           time.Time
	ExpectedAmount      *decimal.Decimal
	PeriodActualAmount  *decimal.Decimal
	PeriodPlannedAmount *decimal.Decimal
}

// GoalWithProgress represents a goal with its category and current progress.
type GoalWithProgress struct {
	Goal     *Goal
	Category *Category // Only set for budget goals
	Progress ProgressSnapshot
}

// GoalSummary aggregates progress verdicts over a set of goals.
type GoalSummary struct {
	TotalGoals    int
	ActiveGoals   int
	BudgetGoals   int
	SavingsGoals  int
	OnTrackGoals  int
	OffTrackGoals int
}
