// Package apiclient is a thin JSON-over-HTTP client with a fixed base URL,
// default headers and request/response interceptors.
package apiclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rog-golang-buddies/userboard/pkg/logger"
)

const (
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"
	DefaultTimeout = 10 * time.Second

	RequestIDHeader = "X-Request-ID"

	// error bodies larger than this are not inspected
	maxErrorBody = 1 << 20
)

type (
	RequestInterceptor  func(*http.Request) (*http.Request, error)
	ResponseInterceptor func(*http.Response) (*http.Response, error)
)

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithHTTPClient replaces the transport client. Its own Timeout is left as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func WithRequestInterceptor(f RequestInterceptor) Option {
	return func(c *Client) { c.onRequest = append(c.onRequest, f) }
}

func WithResponseInterceptor(f ResponseInterceptor) Option {
	return func(c *Client) { c.onResponse = append(c.onResponse, f) }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

type Client struct {
	baseURL    string
	timeout    time.Duration
	headers    http.Header
	hc         *http.Client
	onRequest  []RequestInterceptor
	onResponse []ResponseInterceptor
	log        *zap.Logger
}

func New(opts ...Option) *Client {
	c := Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		headers: http.Header{"Content-Type": []string{"application/json"}},
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.hc == nil {
		c.hc = &http.Client{Timeout: c.timeout}
	}

	if c.log == nil {
		c.log = zap.NewNop()
	}

	return &c
}

func (c *Client) BaseURL() string { return c.baseURL }

// Get issues a GET against the base URL and decodes a 2xx JSON body into v.
func (c *Client) Get(ctx context.Context, path string, v any) error {
	return c.Do(ctx, http.MethodGet, path, nil, v)
}

// Do sends a request and decodes a 2xx JSON body into v when v is non-nil.
// Non-2xx responses are returned as *ResponseError.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, v any) error {
	rid := uuid.NewString()
	ctx = context.WithValue(ctx, logger.RequestIDKey, rid)
	log := logger.WithContext(ctx, c.log).With(zap.String("method", method), zap.String("path", path))

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}

	for k, vs := range c.headers {
		for _, hv := range vs {
			req.Header.Add(k, hv)
		}
	}
	req.Header.Set(RequestIDHeader, rid)

	for _, f := range c.onRequest {
		if req, err = f(req); err != nil {
			return errors.Wrap(err, "request interceptor")
		}
	}

	start := time.Now()
	res, err := c.hc.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer func() { _ = res.Body.Close() }()

	for _, f := range c.onResponse {
		if res, err = f(res); err != nil {
			return errors.Wrap(err, "response interceptor")
		}
	}

	log.Debug("response received",
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newResponseError(res)
	}

	if v == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return errors.Wrap(err, "decoding response body")
	}

	return nil
}
