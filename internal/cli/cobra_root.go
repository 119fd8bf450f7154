package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with all subcommands attached
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{
		app: app,
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A command-line personal task tracker",
		Long: `Taskdeck (td) is a command-line application for tracking tasks with
deadlines and course categories.

FEATURES:
  • Add tasks with a name, an optional course, and a deadline
  • Toggle tasks complete and delete them (with confirmation)
  • Filter by completion status and search by course
  • Deterministic ordering: incomplete tasks first, earliest deadline first
  • Submit product reviews to a remote analysis service

EXAMPLES:
  td add "Essay" --course Math --deadline 2026-09-15    # Add a task
  td list                                               # List all tasks
  td list --status incomplete --course phys             # Filter and search
  td done 3                                             # Toggle task 3 complete
  td delete 3 --yes                                     # Delete without prompting
  td count                                              # Show remaining task count
  td review add "Laptop" "Great battery life"           # Analyze a review

CONFIGURATION:
  All settings come from TD_* environment variables, e.g. TD_DB_DIR,
  TD_STORE_DEFAULT_COURSE, TD_REVIEW_BASE_URL. Set TD_DEBUG for
  diagnostic output.`,
		SilenceUsage: true,
	}

	root.addSubcommands()
	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command returns the underlying cobra command, for tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addSubcommands attaches all subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var addCourse, addDeadline string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new task",
		Long: `Add a new task with a name, an optional course category, and a
required deadline.

The deadline is a calendar date in YYYY-MM-DD form and may not be in
the past (today is allowed). An omitted course defaults to the
configured sentinel category.

Examples:
  td add "Essay" --deadline 2026-09-15
  td add "Lab report" --course Physics --deadline 2026-09-20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewAddCommand(r.app).Execute(ctx, args[0], addCourse, addDeadline)
		},
	}
	addCmd.Flags().StringVarP(&addCourse, "course", "c", "", "course category for the task")
	addCmd.Flags().StringVarP(&addDeadline, "deadline", "d", "", "deadline date (YYYY-MM-DD)")

	doneCmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a task's completion status",
		Long: `Toggle the completion flag of the task with the given id.

Running done twice returns the task to its original state. An id that
no longer exists is silently ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewDoneCommand(r.app).Execute(ctx, args)
		},
	}

	var deleteYes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Long: `Delete the task with the given id.

You will be asked for confirmation unless --yes is given. Deleting an
id that no longer exists is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewDeleteCommand(r.app).Execute(ctx, args, deleteYes)
		},
	}
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")

	var listStatus, listCourse string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered by completion status and searched
by course category.

The course search is a case-insensitive substring match. Tasks are
always ordered with incomplete tasks first, then by earliest deadline.

Examples:
  td list                                  # All tasks
  td list --status incomplete              # Only unfinished tasks
  td list --status completed --course math # Finished Math tasks`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewListCommand(r.app).Execute(ctx, listStatus, listCourse)
		},
	}
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "all", "status filter: all, incomplete, or completed")
	listCmd.Flags().StringVarP(&listCourse, "course", "c", "", "search term matched against course names")

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Show the number of incomplete tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewCountCommand(r.app).Execute(ctx)
		},
	}

	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Submit and browse product review analyses",
		Long: `Submit free-text product reviews to the remote analysis service and
browse the returned sentiment, confidence, and key points.

The service endpoint is configured via TD_REVIEW_BASE_URL.`,
	}

	reviewAddCmd := &cobra.Command{
		Use:   "add <product> <text>",
		Short: "Analyze a product review",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewReviewCommand(r.app).Analyze(ctx, args[0], args[1])
		},
	}

	reviewListCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the review history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewReviewCommand(r.app).History(ctx)
		},
	}

	reviewClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the review history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewReviewCommand(r.app).Clear(ctx)
		},
	}

	reviewCmd.AddCommand(reviewAddCmd, reviewListCmd, reviewClearCmd)

	r.cmd.AddCommand(
		addCmd,
		doneCmd,
		deleteCmd,
		listCmd,
		countCmd,
		reviewCmd,
	)
}

// commandContext creates a context with the configured application timeout
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	timeout := 60 * time.Second
	if r.app.config != nil {
		timeout = r.app.config.Application.Timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}
