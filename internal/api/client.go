// Package api implements the HTTP client for the BloomFi backend.
//
// The client never retries: a failed request surfaces to the UI as a
// dismissible error and the user triggers any reload themselves.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Body)
}

// Client talks to one BloomFi backend.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a client for baseURL. token may be empty for the auth endpoints.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of c authenticated with token.
func (c *Client) WithToken(token string) *Client {
	out := *c
	out.token = token
	return &out
}

// Accounts fetches the caller's accounts.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	var out []Account
	if err := c.getJSON(ctx, "/api/accounts", &out); err != nil {
		return nil, fmt.Errorf("fetch accounts: %w", err)
	}
	return out, nil
}

// Transactions fetches the caller's transactions across all accounts.
func (c *Client) Transactions(ctx context.Context) ([]Transaction, error) {
	var out []Transaction
	if err := c.getJSON(ctx, "/api/transactions", &out); err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	return out, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	var out Session
	body := map[string]string{"username": username, "password": password}
	if err := c.postJSON(ctx, "/api/auth/login", body, &out); err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}
	return out, nil
}

// Register creates a new user and returns a session for it.
func (c *Client) Register(ctx context.Context, username, email, password string) (Session, error) {
	var out Session
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.postJSON(ctx, "/api/auth/register", body, &out); err != nil {
		return Session{}, fmt.Errorf("register: %w", err)
	}
	return out, nil
}

// RequestPasswordReset asks the backend to mail a reset link. The backend
// answers 200 whether or not the address exists.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := c.postJSON(ctx, "/api/auth/forgot-password", body, nil); err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(snippet))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
