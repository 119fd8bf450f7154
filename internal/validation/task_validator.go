package validation

import (
	"time"
)

// TaskValidator provides validation for new-task input.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithClock creates a new task validator with an injectable clock.
func NewTaskValidatorWithClock(now func() time.Time) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithClock(now),
	}
}

// ValidateNewTask checks proposed task input against the admission
// rules, in order: empty name, missing deadline, invalid or past
// deadline. Only the first failing rule is reported. A nil return
// means the input is valid; the check is pure and has no side effects.
func (tv *TaskValidator) ValidateNewTask(name string, deadlineInput string) error {
	if !tv.validator.IsNonEmptyString(name) {
		validationError := NewValidationError()
		validationError.Code = CodeEmptyName
		validationError.AddRequiredError("name", "Task name must not be empty.")
		return validationError
	}

	if !tv.validator.IsNonEmptyString(deadlineInput) {
		validationError := NewValidationError()
		validationError.Code = CodeMissingDeadline
		validationError.AddRequiredError("deadline", "Task deadline is required.")
		return validationError
	}

	deadline, err := tv.validator.ParseDeadline(deadlineInput)
	if err != nil || tv.validator.IsPastDay(deadline) {
		validationError := NewValidationError()
		validationError.Code = CodeInvalidOrPastDeadline
		validationError.AddInvalidValueError("deadline", deadlineInput, "Deadline is invalid or has already passed.")
		return validationError
	}

	return nil
}

// GetValidDeadline parses a deadline input that already passed
// ValidateNewTask, normalized to day granularity.
func (tv *TaskValidator) GetValidDeadline(deadlineInput string) (time.Time, error) {
	return tv.validator.ParseDeadline(deadlineInput)
}

// GetValidTaskName returns the cleaned task name.
func (tv *TaskValidator) GetValidTaskName(name string) string {
	return tv.validator.TrimAndValidateString(name)
}
