package main

import (
	"context"
	"fmt"
	"os"

	"taskdeck/internal/api"
	"taskdeck/internal/cli"
	"taskdeck/internal/config"
	"taskdeck/internal/review"
	"taskdeck/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create repository factory based on environment
	factory := NewRepositoryFactory(GetEnvironment(), cfg)

	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	apiInstance := api.NewWithDefaultCourse(store.NewWithSlot(repo, cfg.Store.Slot), cfg.Store.DefaultCourse)

	// The collection is loaded once at startup; every mutation
	// rewrites it in full.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()
	if err := apiInstance.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tasks: %v\n", err)
		os.Exit(1)
	}

	reviewClient := review.NewClient(cfg.Review.BaseURL, cfg.Review.Timeout)

	app := cli.NewApp(apiInstance, reviewClient, cfg)
	root := cli.NewRootCommand(app)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
