// Package cartclient talks to the external cart service over HTTP.
package cartclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"rental/internal/core/domain/model/kernel"
)

// Client implements ports.CartService against the cart service's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a cart client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Clear empties the user's cart. Callers treat failures as non-fatal: the
// order is already committed and an uncleaned cart is only a cosmetic issue.
func (c *Client) Clear(ctx context.Context, userID kernel.UUID) error {
	url := fmt.Sprintf("%s/carts/%s", c.baseURL, userID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
