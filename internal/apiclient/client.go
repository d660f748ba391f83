// Package apiclient consumes the portfolio JSON API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	companydomain "github.com/bartal/portfolio/internal/companies/domain"
	projectdomain "github.com/bartal/portfolio/internal/projects/domain"
)

const (
	DefaultTimeout = 10 * time.Second

	projectsPath  = "/api/projects"
	companiesPath = "/api/companies"

	maxBodyBytes = 4 << 20
)

// ErrNotArray is returned when a list endpoint answers with anything other
// than a JSON array.
var ErrNotArray = errors.New("response is not a JSON array")

// StatusError is a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// Client fetches the projects and companies documents.
type Client struct {
	baseURL string
	http    *http.Client
	retries uint
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client; its timeout is kept as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRetries retries transient failures (timeouts, 5xx) with exponential
// backoff. The default is a single attempt.
func WithRetries(n uint) Option {
	return func(c *Client) { c.retries = n }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) FetchProjects(ctx context.Context) ([]projectdomain.Project, error) {
	var out []projectdomain.Project
	if err := c.getList(ctx, projectsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchCompanies(ctx context.Context) ([]companydomain.Company, error) {
	var out []companydomain.Company
	if err := c.getList(ctx, companiesPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getList(ctx context.Context, path string, dst any) error {
	op := func() ([]byte, error) {
		body, err := c.get(ctx, path)
		if err != nil && !transient(err) {
			return nil, backoff.Permanent(err)
		}
		return body, err
	}

	var (
		body []byte
		err  error
	)
	if c.retries == 0 {
		body, err = c.get(ctx, path)
	} else {
		body, err = backoff.Retry(ctx, op,
			backoff.WithBackOff(backoff.NewExponentialBackOff()),
			backoff.WithMaxTries(c.retries+1),
		)
	}
	if err != nil {
		return err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return ErrNotArray
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func transient(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	return IsTimeout(err)
}

// IsTimeout reports whether err is a client or context deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
