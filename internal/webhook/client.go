// Package webhook posts message payloads to incoming-webhook endpoints.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"slacks-cli/internal/interfaces"
)

// DefaultTimeout bounds a single webhook request
const DefaultTimeout = 10 * time.Second

// ErrUnexpectedStatus is returned for non-2xx responses
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Client implements the Poster interface with resty
type Client struct {
	http *resty.Client
}

// NewClient creates a client; a non-positive timeout falls back to DefaultTimeout
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		http: resty.New().SetTimeout(timeout),
	}
}

// Post sends payload as JSON to url and expects a 2xx response
func (c *Client) Post(ctx context.Context, url string, payload interfaces.Payload) (interfaces.PostResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		return interfaces.PostResult{}, fmt.Errorf("failed to post to Slack: %w", err)
	}

	result := interfaces.PostResult{
		URL:        resp.Request.URL,
		StatusCode: resp.StatusCode(),
	}

	if !resp.IsSuccess() {
		return result, fmt.Errorf("failed to post to Slack: %w: %d %s",
			ErrUnexpectedStatus, resp.StatusCode(), resp.String())
	}

	return result, nil
}
