// Package api implements the HTTP client for the QRKeeper backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/qrkeeper/qrkeeper/internal/client/models"
)

// Client talks JSON over HTTP to the backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the given base URL (including the /api prefix).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-200 answer from the server, carrying the decoded
// message from the JSON error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// AuthResult is the answer to register and login calls.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
		} else {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Ping probes server reachability.
func (c *Client) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/ping", "", nil, nil)
}

// Register creates an account and returns the user summary plus a token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", "",
		map[string]string{"name": name, "email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and returns the user summary plus a token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", "",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword requests a reset link and returns the server's generic
// acknowledgment message.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", "",
		map[string]string{"email": email}, &out)
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListQRs returns the account's records, newest first.
func (c *Client) ListQRs(ctx context.Context, token string) ([]models.Record, error) {
	var out []models.Record
	if err := c.doJSON(ctx, http.MethodGet, "/qr", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateQR stores a new record and returns it with the server-assigned id.
func (c *Client) CreateQR(ctx context.Context, token, content, image, logo string) (*models.Record, error) {
	var out models.Record
	body := map[string]string{"content": content, "image": image}
	if logo != "" {
		body["logo"] = logo
	}
	if err := c.doJSON(ctx, http.MethodPost, "/qr", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteQR removes a record by id.
func (c *Client) DeleteQR(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/qr/"+id, token, nil, nil)
}
