// Package api implements the domain repository interfaces over the backend's
// REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gestionpyme/ventas-console/internal/config"
	"github.com/gestionpyme/ventas-console/pkg/apperror"
	"github.com/gestionpyme/ventas-console/pkg/loading"
	"github.com/google/uuid"
)

// Client is the shared HTTP client for all remote operations. Every request
// acquires the loading gauge before dispatch and releases it on every exit
// path, and carries the session's bearer token once one is set.
type Client struct {
	baseURL string
	httpc   *http.Client
	gauge   *loading.Gauge

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the configured backend
func NewClient(cfg *config.APIConfig, gauge *loading.Gauge) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
		gauge:   gauge,
	}
}

// SetToken stores the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token, if any
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorEnvelope mirrors the backend's failure body
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// do issues one request and decodes the response into out. Network failures and
// 5xx responses come back as TransportError; 4xx responses are decoded into
// AppError, preserving the backend's per-field validation messages.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	c.gauge.Acquire()
	defer c.gauge.Release()

	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &apperror.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperror.TransportError{Op: op, Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return &apperror.TransportError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
		}
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		env := errorEnvelope{}
		if err := json.Unmarshal(raw, &env); err != nil || env.Message == "" {
			env.Message = http.StatusText(resp.StatusCode)
		}
		return &apperror.AppError{Code: resp.StatusCode, Message: env.Message, Errors: env.Errors}
	default:
		return &apperror.TransportError{Op: op, Err: fmt.Errorf("server returned %d", resp.StatusCode)}
	}
}

// listEnvelope mirrors the backend's paginated list body
type listEnvelope[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}
