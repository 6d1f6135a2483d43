// Package client is a typed client for the heladería HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"heladeria/internal/model"
)

// APIError is an application-level failure the server reported with a
// human-readable message body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	client  *http.Client
}

// New builds a client for the API at baseURL. A nil httpClient falls
// back to a plain http.Client; callers that need cookies or a caching
// transport inject their own.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, client: httpClient}
}

func (c *Client) Menu(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := c.getJSON(ctx, "/api/menu", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Cart(ctx context.Context) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := c.getJSON(ctx, "/api/cart", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart sends the full item payload; the server merges it into the
// cart and returns the updated cart.
func (c *Client) AddToCart(ctx context.Context, item model.MenuItem) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := c.doJSON(ctx, http.MethodPost, "/api/cart", item, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) RemoveFromCart(ctx context.Context, itemID int64) ([]model.CartItem, error) {
	var items []model.CartItem
	body := struct {
		ID int64 `json:"id"`
	}{ID: itemID}
	if err := c.doJSON(ctx, http.MethodDelete, "/api/cart", body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.getJSON(ctx, "/api/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Confirm submits the table number. It returns the server's confirmation
// message; a rejected confirmation comes back as *APIError carrying the
// server's message.
func (c *Client) Confirm(ctx context.Context, tableNumber int) (string, error) {
	body := struct {
		TableNumber int `json:"table_number"`
	}{TableNumber: tableNumber}
	return c.doMessage(ctx, http.MethodPost, "/api/confirm", body)
}

// Deliver marks the order delivered. Message semantics match Confirm.
func (c *Client) Deliver(ctx context.Context, orderID int64) (string, error) {
	return c.doMessage(ctx, http.MethodPost, fmt.Sprintf("/api/orders/%d/deliver", orderID), nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	resp, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) doMessage(ctx context.Context, method, path string, in any) (string, error) {
	resp, err := c.do(ctx, method, path, in)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var msg struct {
		Message string `json:"message"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&msg)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr != nil || msg.Message == "" {
			return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
		}
		return "", &APIError{Status: resp.StatusCode, Message: msg.Message}
	}

	if decodeErr != nil {
		return "", fmt.Errorf("decode response: %w", decodeErr)
	}
	return msg.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}
