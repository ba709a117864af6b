package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lvtran/mindbrew/internal/client/models"
)

// RESTClient talks JSON to the storefront API.
type RESTClient struct {
	base string
	http *http.Client
}

// NewRESTClient builds a client for the API rooted at base,
// e.g. "http://localhost:3000/api/v1".
func NewRESTClient(base string) *RESTClient {
	return &RESTClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *RESTClient) ListStores(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	if err := c.getJSON(ctx, "/stores", &stores); err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

func (c *RESTClient) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.getJSON(ctx, "/items", &items); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// createUserResponse matches the API's response shape, field spelling
// included.
type createUserResponse struct {
	IsSuccessful bool   `json:"isSucessful"`
	Error        string `json:"error,omitempty"`
}

func (c *RESTClient) CreateUser(ctx context.Context, user models.NewUser) error {
	body, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/users/create", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("create user: %w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("create user: %w: status %s", ErrRejected, resp.Status)
	}

	var out createUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("create user: decode response: %w", err)
	}
	if !out.IsSuccessful {
		return fmt.Errorf("create user: %w: %s", ErrRejected, out.Error)
	}
	return nil
}

func (c *RESTClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *RESTClient) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %s", ErrRejected, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
