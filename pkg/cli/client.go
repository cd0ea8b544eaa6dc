package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// APIError is a non-2xx response from the duty board API.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (HTTP %d): %s", e.HTTPStatus, e.Message)
}

// Client is a minimal HTTP client for the duty board API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Duty mirrors the wire shape of one duty log entry.
type Duty struct {
	User      string    `json:"user"`
	Task      string    `json:"task"`
	Timestamp time.Time `json:"timestamp"`
}

// UserTotal mirrors one row of the total-per-user view.
type UserTotal struct {
	User  string `json:"user"`
	Total int64  `json:"total"`
}

// UserDateCount mirrors one row of the per-user-per-date view.
type UserDateCount struct {
	User  string `json:"user"`
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return &APIError{HTTPStatus: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) ListUsers(ctx context.Context) ([]string, error) {
	var names []string
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &names)
	return names, err
}

func (c *Client) AddUser(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/api/users", map[string]string{"name": name}, nil)
}

func (c *Client) DeleteUser(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(name), nil, nil)
}

func (c *Client) ListTasks(ctx context.Context) ([]string, error) {
	var names []string
	err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &names)
	return names, err
}

func (c *Client) AddTask(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/api/tasks", map[string]string{"name": name}, nil)
}

func (c *Client) DeleteTask(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(name), nil, nil)
}

func (c *Client) AddDuty(ctx context.Context, user, task, timestamp string) error {
	return c.do(ctx, http.MethodPost, "/api/add-duty", map[string]string{
		"user":      user,
		"task":      task,
		"timestamp": timestamp,
	}, nil)
}

func (c *Client) ListDuties(ctx context.Context) ([]Duty, error) {
	var duties []Duty
	err := c.do(ctx, http.MethodGet, "/api/get-duties", nil, &duties)
	return duties, err
}

func (c *Client) TotalPerUser(ctx context.Context) ([]UserTotal, error) {
	var totals []UserTotal
	err := c.do(ctx, http.MethodGet, "/api/stats/total-per-user", nil, &totals)
	return totals, err
}

func (c *Client) PerUserPerDate(ctx context.Context) ([]UserDateCount, error) {
	var counts []UserDateCount
	err := c.do(ctx, http.MethodGet, "/api/stats/per-user-per-date", nil, &counts)
	return counts, err
}
