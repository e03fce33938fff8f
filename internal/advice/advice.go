// Package advice fetches a short "tip of the day" string from an
// unauthenticated public endpoint. The endpoint is best-effort only: any
// failure yields a fixed local tip so the screen always has content.
package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://api.adviceslip.com"

// FallbackTip is shown whenever the advice endpoint is unreachable or returns
// something unusable.
const FallbackTip = "Moisturize immediately after showering to lock in hydration and prevent dryness."

type Client struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewClient returns a client for the advice endpoint at baseURL; an empty
// baseURL selects the public default.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client:  &http.Client{},
		baseURL: baseURL,
		logger:  logger,
	}
}

// TipOfTheDay returns one short advice string. It never fails: errors are
// logged and the fixed fallback tip is returned instead.
func (c *Client) TipOfTheDay(ctx context.Context) string {
	tip, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warn("advice fetch failed, using fallback tip", "error", err)
		return FallbackTip
	}
	return tip
}

func (c *Client) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/advice", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call advice endpoint: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close advice response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advice endpoint returned status %d", resp.StatusCode)
	}

	var respBody struct {
		Slip struct {
			Advice string `json:"advice"`
		} `json:"slip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	tip := strings.TrimSpace(respBody.Slip.Advice)
	if tip == "" {
		return "", fmt.Errorf("advice endpoint returned empty tip")
	}
	return tip, nil
}
