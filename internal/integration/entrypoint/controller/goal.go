// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/goals/internal/application/usecase/goal"
	"github.com/finance-tracker/goals/internal/domain/entity"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/middleware"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goals requests.
// Query: active=true restricts the listing to active goals.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := goal.ListGoalsInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals, output.Summary))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badGoalRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	def := goal.GoalDefinition{
		Name:                req.Name,
		Type:                entity.GoalType(req.Type),
		TargetAmount:        req.TargetAmount,
		PlannedContribution: req.PlannedContribution,
	}

	var err error
	if def.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		badGoalRequest(ctx, "Invalid category ID format")
		return
	}
	if req.Period != nil {
		period := entity.GoalPeriod(*req.Period)
		def.Period = &period
	}
	if def.Deadline, err = parseOptionalDate(req.Deadline); err != nil {
		badGoalRequest(ctx, "Invalid deadline format, expected YYYY-MM-DD")
		return
	}
	if def.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		badGoalRequest(ctx, "Invalid start date format, expected YYYY-MM-DD")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:     userID,
		Definition: def,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badGoalRequest(ctx, "Invalid goal ID format")
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badGoalRequest(ctx, "Invalid goal ID format")
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badGoalRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:                   goalID,
		UserID:                   userID,
		Name:                     req.Name,
		TargetAmount:             req.TargetAmount,
		ClearDeadline:            req.ClearDeadline,
		PlannedContribution:      req.PlannedContribution,
		ClearPlannedContribution: req.ClearPlannedContribution,
		IsActive:                 req.IsActive,
	}

	if req.Type != nil {
		goalType := entity.GoalType(*req.Type)
		input.Type = &goalType
	}
	if input.CategoryID, err = parseOptionalUUID(req.CategoryID); err != nil {
		badGoalRequest(ctx, "Invalid category ID format")
		return
	}
	if req.Period != nil {
		period := entity.GoalPeriod(*req.Period)
		input.Period = &period
	}
	if input.Deadline, err = parseOptionalDate(req.Deadline); err != nil {
		badGoalRequest(ctx, "Invalid deadline format, expected YYYY-MM-DD")
		return
	}
	if input.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		badGoalRequest(ctx, "Invalid start date format, expected YYYY-MM-DD")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badGoalRequest(ctx, "Invalid goal ID format")
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(getStatusCodeForGoalError(goalErr), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	slog.Error("Goal request failed",
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal errors to HTTP status codes.
func getStatusCodeForGoalError(err *domainerror.GoalError) int {
	if err.Code == domainerror.ErrCodeGoalNotFound {
		return http.StatusNotFound
	}
	if err.IsValidation() {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func badGoalRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeMissingGoalFields),
	})
}

// requireUserID reads the authenticated user, answering 401 when absent.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := time.Parse(dto.DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
