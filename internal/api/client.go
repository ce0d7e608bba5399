// Package api is the HTTP client for the restaurant backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/terracotta-tales/terracotta/internal/model"
)

// APIError is a non-2xx response. Message is the server-provided error text
// when the body carried one, so it can be shown to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Menu fetches the full catalog.
func (c *Client) Menu(ctx context.Context) (model.Menu, error) {
	var m model.Menu
	if err := c.getJSON(ctx, "/api/menu", &m); err != nil {
		return model.Menu{}, fmt.Errorf("fetch menu: %w", err)
	}
	return m, nil
}

// Checkout places an order. On failure the returned error carries the
// server's message when one was provided.
func (c *Client) Checkout(ctx context.Context, req model.CheckoutRequest) (model.CheckoutResponse, error) {
	var res model.CheckoutResponse
	if err := c.postJSON(ctx, "/api/checkout", req, &res); err != nil {
		return model.CheckoutResponse{}, err
	}
	return res, nil
}

// Health pings the backend.
func (c *Client) Health(ctx context.Context) error {
	var out map[string]any
	return c.getJSON(ctx, "/api/health", &out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return apiError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError pulls {"error": "..."} out of a failed response, falling back to
// the HTTP status text.
func apiError(res *http.Response) error {
	msg := fmt.Sprintf("HTTP %d %s", res.StatusCode, http.StatusText(res.StatusCode))
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &APIError{StatusCode: res.StatusCode, Message: msg}
}
