// Package review is a pass-through client for the remote review
// analysis service. Sentiment, confidence, and key points are derived
// server-side; this client carries no analysis logic of its own.
package review

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"taskdeck/internal/errors"
)

const (
	defaultBaseURL = "http://localhost:6543"
	maxRetries     = 3
	initialDelay   = 1 * time.Second
)

// Client talks to the review analysis service
type Client struct {
	baseURL    string
	client     *http.Client
	retryDelay time.Duration
}

// AnalyzeRequest is the payload for a review submission
type AnalyzeRequest struct {
	ProductName string `json:"product_name"`
	ReviewText  string `json:"review_text"`
}

// Review is an analyzed review as returned by the service
type Review struct {
	ID          int64    `json:"id"`
	ProductName string   `json:"product_name"`
	ReviewText  string   `json:"review_text"`
	Sentiment   string   `json:"sentiment"`
	Confidence  float64  `json:"confidence"`
	KeyPoints   []string `json:"key_points"`
	CreatedAt   string   `json:"created_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewClient creates a new review service client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: timeout},
		retryDelay: initialDelay,
	}
}

// Analyze submits a review for analysis and returns the analyzed result
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*Review, error) {
	var result Review
	if err := c.do(ctx, http.MethodPost, "/api/analyze-review", req, &result); err != nil {
		return nil, errors.NewExternalError("review service", "analyze review", err)
	}
	return &result, nil
}

// History fetches the accumulated review history, newest first
func (c *Client) History(ctx context.Context) ([]Review, error) {
	var result []Review
	if err := c.do(ctx, http.MethodGet, "/api/reviews", nil, &result); err != nil {
		return nil, errors.NewExternalError("review service", "fetch reviews", err)
	}
	return result, nil
}

// Clear deletes the accumulated review history
func (c *Client) Clear(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/clear-reviews", nil, nil); err != nil {
		return errors.NewExternalError("review service", "clear reviews", err)
	}
	return nil
}

// do performs one request with bounded retry on transient failures
// (429 and 5xx), with exponential backoff between attempts.
func (c *Client) do(ctx context.Context, method string, path string, payload interface{}, result interface{}) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	var lastErr error
	delay := c.retryDelay

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		retryable, err := c.doOnce(ctx, method, path, body, result)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}

	return fmt.Errorf("after %d attempts: %w", maxRetries, lastErr)
}

func (c *Client) doOnce(ctx context.Context, method string, path string, body []byte, result interface{}) (retryable bool, err error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return true, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500

		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return retryable, fmt.Errorf("status %d: %s", resp.StatusCode, errResp.Error)
		}
		return retryable, fmt.Errorf("status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return false, fmt.Errorf("decode response: %w", err)
		}
	}

	return false, nil
}
