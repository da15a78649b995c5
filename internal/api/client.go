package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	applog "github.com/hafizsameer11/optyshop-admin-sub000/internal/log"
)

// TokenSource yields the current admin bearer token; empty means anonymous.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, mainly for tests.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client talks to the OptyShop backend REST API. All methods are
// context-first and return *Error for upstream failures.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	me     MeCache // optional; see auth.go
}

func New(baseURL string, timeout time.Duration, tokens TokenSource) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: bad base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: bad base url %q", baseURL)
	}
	return &Client{
		base:   u,
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
	}, nil
}

// WithMeCache installs the auth-check cache (10-minute TTL reads of /auth/me).
func (c *Client) WithMeCache(cache MeCache) *Client {
	c.me = cache
	return c
}

// BaseURL reports the configured upstream root.
func (c *Client) BaseURL() string { return c.base.String() }

// do executes one request and hands back the raw response body. A transport
// failure (no response) maps to KindUnavailable; any 4xx/5xx maps through
// kindForStatus with the message dug out of the body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (json.RawMessage, error) {
	op := method + " " + path

	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("api: %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Op: op, Message: "backend unavailable", cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Op: op, Message: "backend unavailable", cause: err}
	}

	if resp.StatusCode >= 400 {
		return nil, &Error{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Op:      op,
			Message: errorMessage(raw, resp.StatusCode),
		}
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return nil, fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
	}
	return c.do(ctx, method, path, nil, &buf, "application/json")
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return err
}

// Upload is one file part of a multipart request.
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Reader      io.Reader
}

// sendMultipart posts form fields plus file parts (banner, testimonial and
// product image endpoints take multipart/form-data).
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]string, files []Upload) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("api: multipart %s %s: %w", method, path, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return nil, fmt.Errorf("api: multipart %s %s: %w", method, path, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, fmt.Errorf("api: multipart %s %s: %w", method, path, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("api: multipart %s %s: %w", method, path, err)
	}
	return c.do(ctx, method, path, nil, &buf, w.FormDataContentType())
}

// decodeList applies envelope normalization and unmarshals the payload array
// into out. Per the fetcher contract, a missing/malformed array is logged and
// left as the zero slice rather than surfaced as an error.
func decodeList(raw json.RawMessage, out any, names ...string) {
	arr, ok := findArray(raw, names...)
	if !ok {
		applog.Warn(nil, "api.envelope.no_array", nil, map[string]any{"names": names})
		return
	}
	if err := json.Unmarshal(arr, out); err != nil {
		applog.Warn(nil, "api.envelope.decode", err, map[string]any{"names": names})
	}
}

// decodeRecord unwraps a single-record envelope into out.
func decodeRecord(raw json.RawMessage, out any, names ...string) error {
	obj, ok := findObject(raw, names...)
	if !ok {
		return fmt.Errorf("api: no record in response")
	}
	return json.Unmarshal(obj, out)
}
