package cli

import (
	"context"
	"fmt"

	"taskdeck/internal/api"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. The name is required, the course is
// optional (empty defaults to the sentinel category), and the
// deadline is a calendar date in YYYY-MM-DD form.
func (c *AddCommand) Execute(ctx context.Context, name string, course string, deadline string) error {
	task, err := c.api.Create(ctx, name, course, deadline)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	count, err := c.api.IncompleteCount(ctx)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task %d: %s (%s)\n", task.ID, task.Name, task.Course)
	fmt.Printf("%d task(s) remaining\n", count)
	return nil
}
