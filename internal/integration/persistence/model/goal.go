// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
// Variant fields are stored flat; only those meaningful for the goal's kind are set.
type GoalModel struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name                string           `gorm:"type:varchar(100);not null"`
	Type                string           `gorm:"type:varchar(10);not null"`
	TargetAmount        decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	CategoryID          *uuid.UUID       `gorm:"type:uuid;index"`
	Period              *string          `gorm:"type:varchar(10)"`
	Deadline            *time.Time       `gorm:"index"`
	PlannedContribution *decimal.Decimal `gorm:"type:decimal(15,2)"`
	StartDate           time.Time        `gorm:"not null"`
	IsActive            bool             `gorm:"not null;default:true"`
	CreatedAt           time.Time        `gorm:"not null"`
	UpdatedAt           time.Time        `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var period *entity.GoalPeriod
	if m.Period != nil {
		p := entity.GoalPeriod(*m.Period)
		period = &p
	}

	return &entity.Goal{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		StartDate:    m.StartDate.UTC(),
		IsActive:     m.IsActive,
		Kind:         entity.NewGoalKind(entity.GoalType(m.Type), m.CategoryID, period, utcPtr(m.Deadline), m.PlannedContribution),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var period *string
	if p := goal.Period(); p != nil {
		s := string(*p)
		period = &s
	}

	return &GoalModel{
		ID:                  goal.ID,
		UserID:              goal.UserID,
		Name:                goal.Name,
		Type:                string(goal.Type()),
		TargetAmount:        goal.TargetAmount,
		CategoryID:          goal.CategoryID(),
		Period:              period,
		Deadline:            goal.Deadline(),
		PlannedContribution: goal.PlannedContribution(),
		StartDate:           goal.StartDate,
		IsActive:            goal.IsActive,
		CreatedAt:           goal.CreatedAt,
		UpdatedAt:           goal.UpdatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
