package domain

import (
	"fmt"
	"time"

	"taskdeck/internal/store"
)

// TaskMapper handles conversion between domain and persisted Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to a persisted record.
func (m *TaskMapper) ToRecord(task Task) store.TaskRecord {
	return store.TaskRecord{
		ID:          task.ID,
		Name:        task.Name,
		Course:      task.Course,
		Deadline:    task.Deadline.Format(DeadlineFormat),
		IsCompleted: task.Completed,
	}
}

// FromRecord converts a persisted record to a domain Task.
// A record whose deadline does not parse as a calendar date is
// corrupt; callers decide the recovery policy.
func (m *TaskMapper) FromRecord(record store.TaskRecord) (Task, error) {
	deadline, err := time.ParseInLocation(DeadlineFormat, record.Deadline, time.UTC)
	if err != nil {
		return Task{}, fmt.Errorf("task %d has invalid deadline %q: %w", record.ID, record.Deadline, err)
	}
	return Task{
		ID:        record.ID,
		Name:      record.Name,
		Course:    record.Course,
		Deadline:  deadline,
		Completed: record.IsCompleted,
	}, nil
}

// ToRecordSlice converts a slice of domain Tasks to persisted records.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []store.TaskRecord {
	records := make([]store.TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecordSlice converts a slice of persisted records to domain Tasks.
// The first conversion failure aborts the whole slice.
func (m *TaskMapper) FromRecordSlice(records []store.TaskRecord) ([]Task, error) {
	tasks := make([]Task, len(records))
	for i, record := range records {
		task, err := m.FromRecord(record)
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}

// Mapper provides access to all domain mappers.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all mappers initialized.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
