// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal does not exist or is not owned by the caller.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidGoalCategory is returned when the referenced category does not exist for the user.
	ErrInvalidGoalCategory = errors.New("invalid category")

	// ErrMissingGoalCategory is returned when a budget goal has no category.
	ErrMissingGoalCategory = errors.New("missing category")

	// ErrMissingGoalPeriod is returned when a budget goal has no period.
	ErrMissingGoalPeriod = errors.New("missing period")

	// ErrInvalidGoalPeriod is returned when the goal period is invalid.
	ErrInvalidGoalPeriod = errors.New("invalid goal period")

	// ErrInvalidGoalType is returned when the goal type is neither budget nor savings.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrMissingGoalName is returned when the goal name is empty.
	ErrMissingGoalName = errors.New("missing goal name")

	// ErrInvalidPlannedContribution is returned when the planned contribution is zero or negative.
	ErrInvalidPlannedContribution = errors.New("invalid planned contribution")

	// ErrGoalStartDateLocked is returned when changing the start date of a goal with linked contributions.
	ErrGoalStartDateLocked = errors.New("start date cannot change once contributions are linked")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound               GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount        GoalErrorCode = "GOL-010003"
	ErrCodeInvalidCategory            GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalPeriod          GoalErrorCode = "GOL-010007"
	ErrCodeMissingGoalFields          GoalErrorCode = "GOL-010008"
	ErrCodeMissingGoalName            GoalErrorCode = "GOL-010009"
	ErrCodeInvalidGoalType            GoalErrorCode = "GOL-010010"
	ErrCodeInvalidPlannedContribution GoalErrorCode = "GOL-010011"
	ErrCodeMissingCategory            GoalErrorCode = "GOL-010012"
	ErrCodeMissingPeriod              GoalErrorCode = "GOL-010013"
	ErrCodeStartDateLocked            GoalErrorCode = "GOL-010014"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the error is caller-fixable.
func (e *GoalError) IsValidation() bool {
	return e.Code != ErrCodeGoalNotFound
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewGoalNotFoundError returns the generic not found error used for both
// missing goals and goals owned by another user.
func NewGoalNotFoundError() *GoalError {
	return NewGoalError(ErrCodeGoalNotFound, "goal not found", ErrGoalNotFound)
}
