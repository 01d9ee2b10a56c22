// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
// Amounts accept either JSON numbers or decimal strings.
type CreateGoalRequest struct {
	Name                string           `json:"name"`
	Type                string           `json:"type" binding:"required"`
	TargetAmount        decimal.Decimal  `json:"target_amount"`
	CategoryID          *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Period              *string          `json:"period,omitempty"`
	Deadline            *string          `json:"deadline,omitempty"`
	StartDate           *string          `json:"start_date,omitempty"`
	PlannedContribution *decimal.Decimal `json:"planned_contribution,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
// Omitted fields are left unchanged.
type UpdateGoalRequest struct {
	Name                     *string          `json:"name,omitempty"`
	Type                     *string          `json:"type,omitempty"`
	TargetAmount             *decimal.Decimal `json:"target_amount,omitempty"`
	CategoryID               *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Period                   *string          `json:"period,omitempty"`
	Deadline                 *string          `json:"deadline,omitempty"`
	ClearDeadline            bool             `json:"clear_deadline,omitempty"`
	StartDate                *string          `json:"start_date,omitempty"`
	PlannedContribution      *decimal.Decimal `json:"planned_contribution,omitempty"`
	ClearPlannedContribution bool             `json:"clear_planned_contribution,omitempty"`
	IsActive                 *bool            `json:"is_active,omitempty"`
}

// GoalCategoryResponse represents the budget category embedded in a goal response.
type GoalCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// GoalResponse represents a goal together with its current progress.
type GoalResponse struct {
	ID                  string                `json:"id"`
	UserID              string                `json:"user_id"`
	Name                string                `json:"name"`
	Type                string                `json:"type"`
	TargetAmount        string                `json:"target_amount"`
	CategoryID          *string               `json:"category_id,omitempty"`
	Category            *GoalCategoryResponse `json:"category,omitempty"`
	Period              *string               `json:"period,omitempty"`
	Deadline            *string               `json:"deadline,omitempty"`
	PlannedContribution *string               `json:"planned_contribution,omitempty"`
	StartDate           string                `json:"start_date"`
	IsActive            bool                  `json:"is_active"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`

	// Progress
	CurrentAmount       string  `json:"current_amount"`
	RemainingAmount     string  `json:"remaining_amount"`
	PercentComplete     float64 `json:"percent_complete"`
	IsOnTrack           bool    `json:"is_on_track"`
	PeriodLabel         string  `json:"period_label"`
	PeriodStart         string  `json:"period_start"`
	PeriodEnd           string  `json:"period_end"`
	ExpectedAmount      *string `json:"expected_amount,omitempty"`
	PeriodActualAmount  *string `json:"period_actual_amount,omitempty"`
	PeriodPlannedAmount *string `json:"period_planned_amount,omitempty"`
}

// GoalSummaryResponse represents aggregate goal counts.
type GoalSummaryResponse struct {
	TotalGoals    int `json:"total_goals"`
	ActiveGoals   int `json:"active_goals"`
	BudgetGoals   int `json:"budget_goals"`
	SavingsGoals  int `json:"savings_goals"`
	OnTrackGoals  int `json:"on_track_goals"`
	OffTrackGoals int `json:"off_track_goals"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals   []GoalResponse      `json:"goals"`
	Summary GoalSummaryResponse `json:"summary"`
}

// ToGoalResponse converts a goal with progress to a GoalResponse DTO.
func ToGoalResponse(gp *entity.GoalWithProgress) GoalResponse {
	g := gp.Goal
	p := gp.Progress

	response := GoalResponse{
		ID:                  g.ID.String(),
		UserID:              g.UserID.String(),
		Name:                g.Name,
		Type:                string(g.Type()),
		TargetAmount:        formatAmount(g.TargetAmount),
		PlannedContribution: formatAmountPtr(g.PlannedContribution()),
		StartDate:           g.StartDate.Format(DateLayout),
		IsActive:            g.IsActive,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
		CurrentAmount:       formatAmount(p.CurrentAmount),
		RemainingAmount:     formatAmount(p.RemainingAmount),
		PercentComplete:     p.PercentComplete,
		IsOnTrack:           p.IsOnTrack,
		PeriodLabel:         p.PeriodLabel,
		PeriodStart:         p.PeriodStart.Format(DateLayout),
		PeriodEnd:           p.PeriodEnd.Format(DateLayout),
		ExpectedAmount:      formatAmountPtr(p.ExpectedAmount),
		PeriodActualAmount:  formatAmountPtr(p.PeriodActualAmount),
		PeriodPlannedAmount: formatAmountPtr(p.PeriodPlannedAmount),
	}

	if categoryID := g.CategoryID(); categoryID != nil {
		id := categoryID.String()
		response.CategoryID = &id
	}
	if period := g.Period(); period != nil {
		value := string(*period)
		response.Period = &value
	}
	if deadline := g.Deadline(); deadline != nil {
		value := deadline.Format(DateLayout)
		response.Deadline = &value
	}
	if gp.Category != nil {
		response.Category = &GoalCategoryResponse{
			ID:    gp.Category.ID.String(),
			Name:  gp.Category.Name,
			Color: gp.Category.Color,
			Icon:  gp.Category.Icon,
		}
	}

	return response
}

// ToGoalListResponse converts goals and their summary to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.GoalWithProgress, summary entity.GoalSummary) GoalListResponse {
	responses := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, ToGoalResponse(g))
	}

	return GoalListResponse{
		Goals: responses,
		Summary: GoalSummaryResponse{
			TotalGoals:    summary.TotalGoals,
			ActiveGoals:   summary.ActiveGoals,
			BudgetGoals:   summary.BudgetGoals,
			SavingsGoals:  summary.SavingsGoals,
			OnTrackGoals:  summary.OnTrackGoals,
			OffTrackGoals: summary.OffTrackGoals,
		},
	}
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatAmountPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := formatAmount(*d)
	return &s
}
