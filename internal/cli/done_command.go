package cli

import (
	"context"
	"fmt"
	"strconv"

	"taskdeck/internal/api"
)

// DoneCommand handles the done command, which toggles a task's
// completion flag. Toggling an id that no longer exists is a quiet
// no-op, matching the core's lifecycle semantics.
type DoneCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: td done <task-id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q: must be a number", args[0])
	}

	if err := c.api.ToggleComplete(ctx, id); err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	count, err := c.api.IncompleteCount(ctx)
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	fmt.Printf("Toggled task %d\n", id)
	fmt.Printf("%d task(s) remaining\n", count)
	return nil
}
