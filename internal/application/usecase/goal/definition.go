// Package goal contains goal-related use cases.
package goal

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// GoalDefinition is the flat, user-supplied description of a goal before it
// is turned into one of the entity.GoalKind variants.
type GoalDefinition struct {
	Name                string
	Type                entity.GoalType
	TargetAmount        decimal.Decimal
	CategoryID          *uuid.UUID
	Period              *entity.GoalPeriod
	Deadline            *time.Time
	StartDate           *time.Time
	PlannedContribution *decimal.Decimal
}

// NormalizeGoalDefinition reconciles the fields that are mutually exclusive
// per goal type:
//   - budget goals drop deadline and planned contribution
//   - savings goals drop the category
//   - recurring savings (a real period) drop deadline and planned contribution
//   - one-time savings (no period or "none") drop the period
//
// Unknown period keywords are kept so validation can reject them.
func NormalizeGoalDefinition(def GoalDefinition) GoalDefinition {
	def.Name = strings.TrimSpace(def.Name)

	if def.Period != nil && *def.Period == "" {
		def.Period = nil
	}

	switch def.Type {
	case entity.GoalTypeBudget:
		def.Deadline = nil
		def.PlannedContribution = nil

	case entity.GoalTypeSavings:
		def.CategoryID = nil
		if def.Period != nil && def.Period.IsRecurring() {
			def.Deadline = nil
			def.PlannedContribution = nil
		} else if def.Period == nil || *def.Period == entity.GoalPeriodNone {
			def.Period = nil
		}
	}

	if def.Deadline != nil {
		deadline := entity.TruncateToDay(*def.Deadline)
		def.Deadline = &deadline
	}

	return def
}

// Kind builds the goal variant described by a normalized, validated definition.
func (d GoalDefinition) Kind() entity.GoalKind {
	return entity.NewGoalKind(d.Type, d.CategoryID, d.Period, d.Deadline, d.PlannedContribution)
}

// DefinitionFromGoal flattens an existing goal back into a definition.
func DefinitionFromGoal(g *entity.Goal) GoalDefinition {
	startDate := g.StartDate
	return GoalDefinition{
		Name:                g.Name,
		Type:                g.Type(),
		TargetAmount:        g.TargetAmount,
		CategoryID:          g.CategoryID(),
		Period:              g.Period(),
		Deadline:            g.Deadline(),
		StartDate:           &startDate,
		PlannedContribution: g.PlannedContribution(),
	}
}
