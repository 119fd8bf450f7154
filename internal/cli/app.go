package cli

import (
	"time"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/review"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api    api.API
	review *review.Client
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, reviewClient *review.Client, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		review: reviewClient,
		config: cfg,
	}
}

// deadlineFormat returns the configured deadline display format
func (a *App) deadlineFormat() string {
	if a.config != nil {
		return a.config.Display.DeadlineFormat
	}
	return "Mon, 02 Jan 2006"
}

// overdueMarker returns the configured overdue marker text
func (a *App) overdueMarker() string {
	if a.config != nil {
		return a.config.Display.OverdueMarker
	}
	return "OVERDUE"
}
