// Package chat talks to the FinanceWatcher backend. The backend exposes
// POST /api/chat taking {"message": ...} and answering {"response": ...}
// (or {"error": ...} with a non-200 status), plus GET / as a health probe.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ============================================================================
// Errors
// ============================================================================

// ErrKind classifies client failures
type ErrKind int

const (
	ErrKindConnection ErrKind = iota
	ErrKindTimeout
	ErrKindStatus
	ErrKindDecode
)

// ClientError wraps a backend call failure with its kind
type ClientError struct {
	Kind    ErrKind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ============================================================================
// Client
// ============================================================================

// Doer is the minimal HTTP client surface, injectable for tests
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the backend chat client
type Client struct {
	baseURL string
	http    Doer
}

// NewClient creates a client for the given backend base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// WithDoer sets a custom HTTP doer (useful for testing)
func (c *Client) WithDoer(d Doer) *Client {
	c.http = d
	return c
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Send posts a user message and returns the backend's full response text.
// The call is atomic from the caller's point of view: it yields the whole
// text or an error, never a partial stream.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", &ClientError{Kind: ErrKindDecode, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Kind: ErrKindConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &ClientError{Kind: ErrKindTimeout, Message: "backend request timed out"}
		}
		return "", &ClientError{Kind: ErrKindConnection, Message: "backend unreachable", Cause: err}
	}
	defer resp.Body.Close()

	var decoded chatResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&decoded)

	if resp.StatusCode != http.StatusOK {
		// Error bodies carry {"error": ...} when the backend produced
		// them; anything else falls back to the HTTP status line.
		msg := decoded.Error
		if msg == "" {
			msg = "unexpected status from backend: " + resp.Status
		}
		return "", &ClientError{Kind: ErrKindStatus, Message: msg}
	}
	if decodeErr != nil {
		return "", &ClientError{Kind: ErrKindDecode, Message: "failed to decode response", Cause: decodeErr}
	}

	return decoded.Response, nil
}

// CheckHealth probes the backend root endpoint. A nil return means the
// backend answered 200.
func (c *Client) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return &ClientError{Kind: ErrKindConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &ClientError{Kind: ErrKindTimeout, Message: "health check timed out"}
		}
		return &ClientError{Kind: ErrKindConnection, Message: "backend unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ClientError{Kind: ErrKindStatus, Message: "unexpected status from backend: " + resp.Status}
	}
	return nil
}
