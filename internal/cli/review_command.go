package cli

import (
	"context"
	"fmt"
	"strings"

	"taskdeck/internal/review"
)

// ReviewCommand handles the review command group, a thin front for
// the remote review analysis service.
type ReviewCommand struct {
	client       *review.Client
	errorHandler *ErrorHandler
}

// NewReviewCommand creates a new review command handler
func NewReviewCommand(app *App) *ReviewCommand {
	return &ReviewCommand{
		client:       app.review,
		errorHandler: NewErrorHandler(),
	}
}

// Analyze submits a review for analysis and prints the result
func (c *ReviewCommand) Analyze(ctx context.Context, productName string, reviewText string) error {
	result, err := c.client.Analyze(ctx, review.AnalyzeRequest{
		ProductName: productName,
		ReviewText:  reviewText,
	})
	if err != nil {
		return c.errorHandler.Handle("analyze review", err)
	}

	printReview(*result)
	return nil
}

// History fetches and prints the accumulated review history
func (c *ReviewCommand) History(ctx context.Context) error {
	reviews, err := c.client.History(ctx)
	if err != nil {
		return c.errorHandler.Handle("fetch reviews", err)
	}

	if len(reviews) == 0 {
		fmt.Println("No reviews yet")
		return nil
	}

	for _, r := range reviews {
		printReview(r)
	}
	return nil
}

// Clear deletes the accumulated review history
func (c *ReviewCommand) Clear(ctx context.Context) error {
	if err := c.client.Clear(ctx); err != nil {
		return c.errorHandler.Handle("clear reviews", err)
	}

	fmt.Println("Review history cleared")
	return nil
}

func printReview(r review.Review) {
	fmt.Printf("%s: %s (%.0f%%)\n", r.ProductName, r.Sentiment, r.Confidence*100)
	if len(r.KeyPoints) > 0 {
		fmt.Printf("  key points: %s\n", strings.Join(r.KeyPoints, "; "))
	}
}
