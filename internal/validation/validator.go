package validation

import (
	"strings"
	"time"

	"taskdeck/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	now func() time.Time
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		now: time.Now,
	}
}

// NewValidatorWithClock creates a new validator instance with an
// injectable clock for deterministic date comparisons in tests.
func NewValidatorWithClock(now func() time.Time) *Validator {
	return &Validator{
		now: now,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// ParseDeadline parses a calendar date in the deadline input format.
func (v *Validator) ParseDeadline(input string) (time.Time, error) {
	return time.ParseInLocation(domain.DeadlineFormat, strings.TrimSpace(input), time.UTC)
}

// IsPastDay checks if a date falls strictly before the current
// calendar day. Time-of-day is ignored on both sides; a deadline of
// today is not past.
func (v *Validator) IsPastDay(t time.Time) bool {
	return domain.DayOf(t).Before(domain.DayOf(v.now()))
}
