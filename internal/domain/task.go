package domain

import (
	"time"
)

// DeadlineFormat is the calendar date layout used for deadline input and storage.
const DeadlineFormat = "2006-01-02"

// DefaultCourse is the sentinel category assigned when no course is given.
const DefaultCourse = "General"

// Task represents a tracked unit of work in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID        int64
	Name      string
	Course    string
	Deadline  time.Time
	Completed bool
}

// NewTask creates a new incomplete Task with the given fields.
// An empty course defaults to DefaultCourse and the deadline is
// normalized to day granularity.
func NewTask(id int64, name string, course string, deadline time.Time) Task {
	if course == "" {
		course = DefaultCourse
	}
	return Task{
		ID:       id,
		Name:     name,
		Course:   course,
		Deadline: DayOf(deadline),
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID > 0 && t.Name != "" && !t.Deadline.IsZero()
}

// IsOverdue reports whether the task's deadline day has passed without
// completion. Overdue is a derived display fact recomputed per query;
// it is never stored and never re-validated after creation.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	return t.Deadline.Before(DayOf(now))
}

// IsDueToday reports whether the task's deadline falls on the current day.
func (t Task) IsDueToday(now time.Time) bool {
	return t.Deadline.Equal(DayOf(now))
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// DayOf truncates a time to its calendar day in UTC.
// All deadline comparisons happen at day granularity.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
