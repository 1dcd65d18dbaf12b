// Package api is the HTTP client of the EduShare REST backend.
//
// Every request carries an X-Request-ID and, when the TokenSource has one,
// an "Authorization: Bearer <token>" header. Failures come back as:
//   - *Error for non-2xx responses (matches ErrUnauthorized / ErrNotFound by status),
//   - an error wrapping ErrUnavailable when no response was received.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/common"
	"github.com/dmitrijs2005/edushare/internal/logging"
	"github.com/dmitrijs2005/edushare/internal/netx"
	"github.com/google/uuid"
)

// Client is the backend contract used by the client services.
type Client interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	ListResources(ctx context.Context, filters models.Filters) ([]models.Resource, error)
	GetResource(ctx context.Context, id int64) (*models.Resource, error)
	CreateResource(ctx context.Context, req models.UploadRequest) (*models.Resource, error)
	DeleteResource(ctx context.Context, id int64) error
	ApproveResource(ctx context.Context, id int64) (*models.Resource, error)
}

// TokenSource yields the bearer token of the current session, if any.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, bool)

func (f TokenFunc) Token(ctx context.Context) (string, bool) { return f(ctx) }

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
	newID   func() string
}

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithTimeout bounds each request, body included.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

// WithLogger sets the request logger.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient validates baseURL (e.g. "http://localhost:8000/api/v1") and
// builds a client.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  TokenFunc(func(context.Context) (string, bool) { return "", false }),
		log:     logging.Nop(),
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("login: response has no access token")
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPost, "/users/", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListResources(ctx context.Context, filters models.Filters) ([]models.Resource, error) {
	path := "/resources/"
	if q := filters.Query().Encode(); q != "" {
		path += "?" + q
	}

	var out []models.Resource
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Resource{}
	}
	return out, nil
}

func (c *HTTPClient) GetResource(ctx context.Context, id int64) (*models.Resource, error) {
	var r models.Resource
	if err := c.doJSON(ctx, http.MethodGet, resourcePath(id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) DeleteResource(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, resourcePath(id), nil, nil)
}

func (c *HTTPClient) ApproveResource(ctx context.Context, id int64) (*models.Resource, error) {
	var r models.Resource
	if err := c.doJSON(ctx, http.MethodPut, resourcePath(id)+"/approve", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func resourcePath(id int64) string {
	return "/resources/" + strconv.FormatInt(id, 10)
}

// doJSON sends body (if not nil) as JSON and decodes a 2xx answer into out
// (if not nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, reader, contentType, out)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := c.newID()
	req.Header.Set(common.RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := c.tokens.Token(ctx); ok && token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	log := c.log.With("request_id", requestID, "method", method, "path", path)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "err", err)
		if netx.IsTransportError(err) {
			return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w: %w", method, path, ErrUnavailable, err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
