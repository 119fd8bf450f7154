package cli

import (
	"context"
	"fmt"

	"taskdeck/internal/api"
	"taskdeck/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command with the given status filter and
// course search term.
func (c *ListCommand) Execute(ctx context.Context, statusArg string, course string) error {
	status, err := domain.ParseFilterStatus(statusArg)
	if err != nil {
		return err
	}

	tasks, err := c.api.View(ctx, status, course)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	count, err := c.api.IncompleteCount(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	c.printTasks(tasks)
	fmt.Printf("%d task(s) remaining\n", count)
	return nil
}

// printTasks prints one line per task in the format:
// [x] id: name (course) - deadline
// Incomplete tasks past their deadline day carry the overdue marker.
func (c *ListCommand) printTasks(tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks match the current filter")
		return
	}

	now := timeNow()
	for _, task := range tasks {
		check := " "
		if task.Completed {
			check = "x"
		}

		line := fmt.Sprintf("[%s] %d: %s (%s) - %s", check, task.ID, task.Name, task.Course, task.Deadline.Format(c.app.deadlineFormat()))
		if task.IsOverdue(now) {
			line += " " + c.app.overdueMarker()
		}
		fmt.Println(line)
	}
}
