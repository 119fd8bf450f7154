package api

import (
	"context"

	"taskdeck/internal/domain"
	"taskdeck/internal/logging"
	"taskdeck/internal/query"
	"taskdeck/internal/store"
	"taskdeck/internal/validation"
)

// API defines the interface for all task lifecycle and view operations.
// It is the only component that mutates the task collection; every
// successful mutation is followed by a full persistence flush.
type API interface {
	// Load hydrates the collection from the persistent store.
	// Called once at startup, before any other operation.
	Load(ctx context.Context) error

	// Lifecycle operations (the only mutators)
	Create(ctx context.Context, name string, course string, deadline string) (*domain.Task, error)
	ToggleComplete(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error

	// Read-only view operations
	View(ctx context.Context, status domain.FilterStatus, course string) ([]domain.Task, error)
	IncompleteCount(ctx context.Context) (int, error)
}

type apiImpl struct {
	state         *store.StateStore
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	defaultCourse string

	// tasks is the authoritative in-memory collection, exclusively
	// owned here. View operations only ever see snapshot copies.
	tasks []domain.Task

	// lastID is the high-water mark of assigned ids. It only grows,
	// so ids are never reused even after the newest task is deleted.
	lastID int64
}

// New creates a new API instance.
func New(state *store.StateStore) API {
	return &apiImpl{
		state:         state,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		defaultCourse: domain.DefaultCourse,
	}
}

// NewWithDefaultCourse creates a new API instance that assigns the
// given course to tasks created without one.
func NewWithDefaultCourse(state *store.StateStore, defaultCourse string) API {
	if defaultCourse == "" {
		defaultCourse = domain.DefaultCourse
	}
	return &apiImpl{
		state:         state,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		defaultCourse: defaultCourse,
	}
}

// NewWithValidator creates a new API instance with the given task
// validator, so tests can inject a fixed clock.
func NewWithValidator(state *store.StateStore, taskValidator *validation.TaskValidator) API {
	return &apiImpl{
		state:         state,
		mapper:        domain.NewMapper(),
		taskValidator: taskValidator,
		defaultCourse: domain.DefaultCourse,
	}
}

// Load reads the persisted collection. Records that fail conversion
// are corrupt state: the collection starts empty and the bad payload
// is overwritten on the next successful mutation.
func (a *apiImpl) Load(ctx context.Context) error {
	records, err := a.state.Load(ctx)
	if err != nil {
		return err
	}

	tasks, err := a.mapper.Task.FromRecordSlice(records)
	if err != nil {
		logging.Debugf("recovering from corrupt task records: %v\n", err)
		tasks = []domain.Task{}
	}

	a.tasks = tasks
	a.lastID = 0
	for _, task := range tasks {
		if task.ID > a.lastID {
			a.lastID = task.ID
		}
	}
	return nil
}

// Create validates the proposed input and, on success, admits a new
// incomplete task and persists the full collection. On validation
// failure the collection is untouched and the failure is returned.
func (a *apiImpl) Create(ctx context.Context, name string, course string, deadline string) (*domain.Task, error) {
	if err := a.taskValidator.ValidateNewTask(name, deadline); err != nil {
		return nil, err
	}

	cleanName := a.taskValidator.GetValidTaskName(name)
	dueDate, err := a.taskValidator.GetValidDeadline(deadline)
	if err != nil {
		return nil, err
	}

	cleanCourse := a.taskValidator.GetValidTaskName(course)
	if cleanCourse == "" {
		cleanCourse = a.defaultCourse
	}

	task := domain.NewTask(a.nextID(), cleanName, cleanCourse, dueDate)
	a.tasks = append(a.tasks, task)

	if err := a.persist(ctx); err != nil {
		return nil, err
	}

	return &task, nil
}

// ToggleComplete flips the completion flag of the task with the given
// id and persists. An absent id is a silent no-op: in the
// single-threaded model "already gone" is the only cause and it is
// not exceptional.
func (a *apiImpl) ToggleComplete(ctx context.Context, id int64) error {
	for i := range a.tasks {
		if a.tasks[i].ID == id {
			a.tasks[i].Completed = !a.tasks[i].Completed
			return a.persist(ctx)
		}
	}
	return nil
}

// Delete removes the task with the given id and persists. Idempotent:
// deleting a non-existent id is a no-op. Confirmation gating is a
// rendering-layer concern.
func (a *apiImpl) Delete(ctx context.Context, id int64) error {
	for i := range a.tasks {
		if a.tasks[i].ID == id {
			a.tasks = append(a.tasks[:i], a.tasks[i+1:]...)
			return a.persist(ctx)
		}
	}
	return nil
}

// View returns the filtered, searched, sorted projection of the
// collection. Read-only; operates on a snapshot copy.
func (a *apiImpl) View(ctx context.Context, status domain.FilterStatus, course string) ([]domain.Task, error) {
	opts := domain.ViewOptions{
		Status: status,
		Course: course,
	}
	return query.View(a.snapshot(), opts), nil
}

// IncompleteCount returns the number of tasks not yet completed,
// recomputed on every call.
func (a *apiImpl) IncompleteCount(ctx context.Context) (int, error) {
	return query.IncompleteCount(a.tasks), nil
}

// nextID returns a fresh monotonically increasing id. Creation is
// synchronous and single-threaded, so ties are impossible.
func (a *apiImpl) nextID() int64 {
	a.lastID++
	return a.lastID
}

// persist rewrites the entire collection to the persistent store.
func (a *apiImpl) persist(ctx context.Context) error {
	return a.state.Save(ctx, a.mapper.Task.ToRecordSlice(a.tasks))
}

// snapshot returns a copy of the collection so callers can never
// mutate the owned slice.
func (a *apiImpl) snapshot() []domain.Task {
	tasks := make([]domain.Task, len(a.tasks))
	copy(tasks, a.tasks)
	return tasks
}
