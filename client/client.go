// Package client is a Go client for the deepwork HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ayoisaiah/deepwork/models"
)

// DefaultBaseURL is the address `deepwork serve` listens on by default.
const DefaultBaseURL = "http://127.0.0.1:8000"

// APIError is returned for non-2xx responses.
type APIError struct {
	Detail     string `json:"detail"`
	StatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("deepwork api: %d: %s", e.StatusCode, e.Detail)
}

// Client talks to a deepwork API server.
type Client struct {
	http    *http.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New returns a Client for baseURL. An empty baseURL uses DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateSessionRequest holds the fields of a new session.
type CreateSessionRequest struct {
	Goal              *string `json:"goal"`
	Title             string  `json:"title"`
	ScheduledDuration int     `json:"scheduled_duration"`
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body, out any,
) error {
	var rd io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}

		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Detail = http.StatusText(resp.StatusCode)
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	if w, ok := out.(io.Writer); ok {
		_, err = io.Copy(w, resp.Body)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func (c *Client) session(
	ctx context.Context,
	method, path string,
	body any,
) (*models.Session, error) {
	var sess models.Session
	if err := c.do(ctx, method, path, body, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

func (c *Client) CreateSession(
	ctx context.Context,
	req CreateSessionRequest,
) (*models.Session, error) {
	return c.session(ctx, http.MethodPost, "/sessions/", req)
}

func (c *Client) StartSession(ctx context.Context, id int64) (*models.Session, error) {
	return c.session(ctx, http.MethodPatch, fmt.Sprintf("/sessions/%d/start", id), nil)
}

func (c *Client) PauseSession(
	ctx context.Context,
	id int64,
	reason string,
) (*models.Session, error) {
	return c.session(
		ctx,
		http.MethodPatch,
		fmt.Sprintf("/sessions/%d/pause", id),
		map[string]string{"reason": reason},
	)
}

func (c *Client) ResumeSession(ctx context.Context, id int64) (*models.Session, error) {
	return c.session(ctx, http.MethodPatch, fmt.Sprintf("/sessions/%d/resume", id), nil)
}

func (c *Client) CompleteSession(ctx context.Context, id int64) (*models.Session, error) {
	return c.session(ctx, http.MethodPatch, fmt.Sprintf("/sessions/%d/complete", id), nil)
}

// History returns every session with its metrics.
func (c *Client) History(ctx context.Context) ([]HistoryEntry, error) {
	var entries []HistoryEntry

	err := c.do(ctx, http.MethodGet, "/sessions/history", nil, &entries)

	return entries, err
}

// WeeklyReport returns the counts for the current ISO week.
func (c *Client) WeeklyReport(ctx context.Context) ([]WeeklyReport, error) {
	var report []WeeklyReport

	err := c.do(ctx, http.MethodGet, "/sessions/weekly-report", nil, &report)

	return report, err
}

// ExportCSV streams the CSV export into w.
func (c *Client) ExportCSV(ctx context.Context, w io.Writer) error {
	return c.do(ctx, http.MethodGet, "/sessions/export", nil, w)
}
