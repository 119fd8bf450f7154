package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"taskdeck/internal/api"
)

// DeleteCommand handles the delete command. Deletion is gated behind
// a confirmation prompt here in the rendering layer; the core's
// delete operation itself is unconditional and idempotent.
type DeleteCommand struct {
	api          api.API
	errorHandler *ErrorHandler

	// confirm asks the user before deleting; replaced in tests
	confirm func(id int64) bool
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		confirm:      promptForConfirmation,
	}
}

// Execute runs the delete command. With skipConfirm set (the --yes
// flag) the prompt is bypassed.
func (c *DeleteCommand) Execute(ctx context.Context, args []string, skipConfirm bool) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: td delete <task-id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q: must be a number", args[0])
	}

	if !skipConfirm && !c.confirm(id) {
		fmt.Println("Delete cancelled")
		return nil
	}

	if err := c.api.Delete(ctx, id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task %d\n", id)
	return nil
}

// promptForConfirmation asks the user to confirm a deletion on stdin
func promptForConfirmation(id int64) bool {
	fmt.Printf("Are you sure you want to delete task %d? [y/N] ", id)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
