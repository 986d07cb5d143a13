// Package omdb is a thin client for the OMDb media catalog. Responses are
// returned verbatim; the caller decides how to relay them.
package omdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/xyz-asif/filmdeck/pkg/errors"
)

const (
	DefaultTimeout = 15 * time.Second
	// maxBodySize bounds how much of an upstream body is buffered.
	maxBodySize = 5 << 20
)

// ErrBodyTooLarge is returned, wrapped in a TransportError, when an upstream
// body exceeds the buffer limit. A cut body is never relayed.
var ErrBodyTooLarge = errors.New("upstream body exceeds 5 MiB")

// Result is an upstream response. A non-2xx status is a Result, not an error.
type Result struct {
	StatusCode  int
	Reason      string
	ContentType string
	Body        []byte
}

// OK reports a 2xx status.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// TransportError means no upstream response was received: dial, DNS, TLS,
// timeout or cancellation. It matches apperrors.ErrTransport.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == apperrors.ErrTransport }

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client issues one GET per lookup and never retries.
type Client struct {
	base   *url.URL
	apiKey string
	http   *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid catalog base url %q", cfg.BaseURL)
	}
	if base.Path == "" {
		base.Path = "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		base:   base,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: timeout},
	}, nil
}

// ByID looks up a title by IMDb id with the full plot.
func (c *Client) ByID(ctx context.Context, id string) (*Result, error) {
	return c.get(ctx, "by_id", url.Values{
		"i":    {id},
		"plot": {"full"},
	})
}

// ByTitle looks up a title by name, optionally narrowed to a release year.
func (c *Client) ByTitle(ctx context.Context, title, year string) (*Result, error) {
	q := url.Values{
		"t":    {title},
		"plot": {"full"},
	}
	if year != "" {
		q.Set("y", year)
	}
	return c.get(ctx, "by_title", q)
}

// BySearch runs a free-text search.
func (c *Client) BySearch(ctx context.Context, query string, page int) (*Result, error) {
	return c.get(ctx, "search", url.Values{
		"s":    {query},
		"page": {strconv.Itoa(page)},
	})
}

// ByTypeAndCategory searches within one media type (movie, series, episode).
func (c *Client) ByTypeAndCategory(ctx context.Context, mediaType, category string, page int) (*Result, error) {
	return c.get(ctx, "list", url.Values{
		"type": {mediaType},
		"s":    {category},
		"page": {strconv.Itoa(page)},
	})
}

// Ping checks the catalog answers at all. Any HTTP response counts.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.get(ctx, "ping", url.Values{})
	return err
}

func (c *Client) get(ctx context.Context, op string, q url.Values) (*Result, error) {
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	u := *c.base
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: scrubURL(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if len(body) > maxBodySize {
		return nil, &TransportError{Op: op, Err: ErrBodyTooLarge}
	}

	return &Result{
		StatusCode:  resp.StatusCode,
		Reason:      reason(resp),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// reason extracts the phrase from "404 Not Found".
func reason(resp *http.Response) string {
	if phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))); phrase != "" {
		return phrase
	}
	return http.StatusText(resp.StatusCode)
}

// scrubURL drops the request URL, which carries the api key, from client errors.
func scrubURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
