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
	"time"

	"github.com/google/uuid"
)

// Client talks to the LifeLink content API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	token     string
	userAgent string
}

const (
	defaultUserAgent = "lifelink/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. token may be empty for
// unauthenticated deployments; when set it is sent as a bearer credential.
func NewClient(baseURL, token string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		token:     strings.TrimSpace(token),
		userAgent: defaultUserAgent,
	}, nil
}

// List fetches one page of a collection. The query values come from the query
// package's Params.Encode.
func List[T any](ctx context.Context, c *Client, collection string, values url.Values) (ListResult[T], error) {
	if c == nil {
		return ListResult[T]{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/" + collection, RawQuery: values.Encode()}
	var payload listEnvelope[T]
	if err := c.do(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return ListResult[T]{}, err
	}
	return ListResult[T]{Items: payload.Data, Meta: payload.Meta.Pagination.normalized()}, nil
}

// Get fetches a single record by id.
func Get[T any](ctx context.Context, c *Client, collection, id string, values url.Values) (T, error) {
	var zero T
	if c == nil {
		return zero, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/" + collection + "/" + id, RawQuery: values.Encode()}
	var payload envelope[T]
	if err := c.do(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return zero, err
	}
	return payload.Data, nil
}

// Create posts a new record. The payload is wrapped in the API's {data: ...}
// envelope; the created record comes back the same way.
func Create[T any](ctx context.Context, c *Client, collection string, payload any, values url.Values) (T, error) {
	var zero T
	if c == nil {
		return zero, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/" + collection, RawQuery: values.Encode()}
	var out envelope[T]
	if err := c.do(ctx, http.MethodPost, rel, envelope[any]{Data: payload}, &out); err != nil {
		return zero, err
	}
	return out.Data, nil
}

// Update replaces fields of an existing record.
func Update[T any](ctx context.Context, c *Client, collection, id string, payload any, values url.Values) (T, error) {
	var zero T
	if c == nil {
		return zero, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/" + collection + "/" + id, RawQuery: values.Encode()}
	var out envelope[T]
	if err := c.do(ctx, http.MethodPut, rel, envelope[any]{Data: payload}, &out); err != nil {
		return zero, err
	}
	return out.Data, nil
}

// Action invokes a custom status-transition endpoint such as
// PATCH /blood-transfers/<id>/approve or /courses/<id>/enroll-status. The
// payload shape is action-specific and passed through untouched.
func Action[T any](ctx context.Context, c *Client, collection, id, action string, payload any) (T, error) {
	var zero T
	if c == nil {
		return zero, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/" + collection + "/" + id + "/" + action}
	var out envelope[T]
	if err := c.do(ctx, http.MethodPatch, rel, payload, &out); err != nil {
		return zero, err
	}
	return out.Data, nil
}

// Delete removes a record. The API returns an empty body on success.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/" + collection + "/" + id}
	return c.do(ctx, http.MethodDelete, rel, nil, nil)
}

// DeleteMedia removes a previously uploaded asset.
func (c *Client) DeleteMedia(ctx context.Context, id string) error {
	return c.Delete(ctx, "media", id)
}

func (c *Client) do(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	// Join rather than resolve so a base URL carrying a path prefix
	// (e.g. https://host/api) keeps it.
	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + rel.Path
	reqURL.RawQuery = rel.RawQuery

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return normalizeError(rel.Path, resp)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("api base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
