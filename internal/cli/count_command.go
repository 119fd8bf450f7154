package cli

import (
	"context"
	"fmt"

	"taskdeck/internal/api"
)

// CountCommand handles the count command
type CountCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewCountCommand creates a new count command handler
func NewCountCommand(app *App) *CountCommand {
	return &CountCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the count command
func (c *CountCommand) Execute(ctx context.Context) error {
	count, err := c.api.IncompleteCount(ctx)
	if err != nil {
		return c.errorHandler.Handle("count tasks", err)
	}

	fmt.Printf("%d task(s) remaining\n", count)
	return nil
}
