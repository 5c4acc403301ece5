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

	"github.com/rs/zerolog/log"
)

// Client talks to the movie API. Methods return *Error for non-2xx responses
// and plain errors for transport failures. Nothing is retried: every failure
// is terminal and the caller decides whether to re-trigger.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient wraps a base URL with a timeout-bounded HTTP client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// List fetches one page of movies for the given query.
func (c *Client) List(ctx context.Context, q ListQuery) (*PageResult, error) {
	var out PageResult
	if err := c.do(ctx, http.MethodGet, "/api/movies?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single movie by id.
func (c *Client) Get(ctx context.Context, id int64) (*Movie, error) {
	var out Movie
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/movies/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a new movie and returns the created record.
func (c *Client) Create(ctx context.Context, p MoviePayload) (*Movie, error) {
	var out Movie
	if err := c.do(ctx, http.MethodPost, "/api/movies", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the movie's editable fields and returns the updated record.
func (c *Client) Update(ctx context.Context, id int64, p MoviePayload) (*Movie, error) {
	var out Movie
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/movies/%d", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a movie. A 204/empty-body success is expected.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/movies/%d", id), nil, nil)
}

// GetStats fetches the aggregate stats, echoing the client's page size.
func (c *Client) GetStats(ctx context.Context, pageSize int) (*Stats, error) {
	var out Stats
	path := "/api/stats?pageSize=" + fmt.Sprint(NormalizePageSize(pageSize))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug().Str("method", method).Str("url", url).Msg("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Str("method", method).Str("url", url).Err(err).Msg("api request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Debug().Str("method", method).Str("url", url).Int("status", resp.StatusCode).Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError reads a non-2xx body best-effort. A body that is not the
// expected {message, errors} shape falls back to a status-coded message.
func decodeError(resp *http.Response) error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("request failed (%d)", resp.StatusCode),
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(b) == 0 {
		return apiErr
	}

	var wire struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return apiErr
	}
	if strings.TrimSpace(wire.Message) != "" {
		apiErr.Message = wire.Message
	}
	if len(wire.Errors) > 0 {
		apiErr.Fields = wire.Errors
		if strings.TrimSpace(wire.Message) == "" {
			apiErr.Message = "Please fix the form errors."
		}
	}
	return apiErr
}
