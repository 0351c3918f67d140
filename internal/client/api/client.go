// Package api is the request dispatcher for the vehicle management API. It
// composes URLs against a fixed base, applies the JSON headers and the
// bearer token, and turns responses into decoded values or typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/dmitrijs2005/vehiclehub/internal/common"
	"github.com/dmitrijs2005/vehiclehub/internal/logging"
	"github.com/google/uuid"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means "send no Authorization header".
type TokenSource interface {
	Token() string
}

// Client issues JSON requests against one API base URL. A nil TokenSource
// produces unauthenticated requests, which is what sign-in and sign-up use.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient returns an http.Client with a cookie jar, so cookies set by
// the API are sent back on every later request.
func NewHTTPClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{Jar: jar}
}

func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource, log logging.Logger) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// WithTokens returns a Client sharing c's base URL, transport and cookies
// but reading tokens from ts.
func (c *Client) WithTokens(ts TokenSource) *Client {
	cp := *c
	cp.tokens = ts
	return &cp
}

type requestOptions struct {
	headers    http.Header
	allowEmpty bool
}

// Option adjusts a single request.
type Option func(*requestOptions)

// WithHeader sets a request header, overriding the defaults (including
// Content-Type and Accept).
func WithHeader(key, value string) Option {
	return func(o *requestOptions) {
		o.headers.Set(key, value)
	}
}

// AllowEmptyBody accepts a 2xx response without a body even when out is
// non-nil; out is then left untouched.
func AllowEmptyBody() Option {
	return func(o *requestOptions) {
		o.allowEmpty = true
	}
}

// Do sends method to base+endpoint. body, when non-nil, is sent as JSON.
// On 2xx the response is decoded into out. A nil out ignores the body. An
// empty body with a non-nil out is a *DecodeError wrapping
// io.ErrUnexpectedEOF unless AllowEmptyBody is given.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any, opts ...Option) error {
	ro := requestOptions{headers: http.Header{}}
	for _, opt := range opts {
		opt(&ro)
	}

	req, err := c.newRequest(ctx, method, endpoint, body, ro)
	if err != nil {
		return err
	}

	reqID := req.Header.Get(common.RequestIDHeaderName)
	log := c.log.With("method", method, "endpoint", endpoint, "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := newHTTPError(resp.StatusCode, data)
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", herr.Message)
		return herr
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "bytes", len(data))

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		if ro.allowEmpty {
			return nil
		}
		log.Warn(ctx, "empty response body", "status", resp.StatusCode)
		return &DecodeError{Status: resp.StatusCode, Err: io.ErrUnexpectedEOF}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Status: resp.StatusCode, Err: err}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body any, ro requestOptions) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, rdr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}
	for k, v := range ro.headers {
		req.Header[k] = v
	}

	return req, nil
}

// newHTTPError reads the "message" field of an error body. Bodies that are
// not JSON objects are treated as {}.
func newHTTPError(status int, body []byte) *HTTPError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		payload.Message = ""
	}
	msg := payload.Message
	if msg == "" {
		msg = fmt.Sprintf("request failed: %d", status)
	}
	return &HTTPError{Status: status, Message: msg}
}

func (c *Client) Get(ctx context.Context, endpoint string, out any, opts ...Option) error {
	return c.Do(ctx, http.MethodGet, endpoint, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, endpoint string, body, out any, opts ...Option) error {
	return c.Do(ctx, http.MethodPost, endpoint, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, endpoint string, body, out any, opts ...Option) error {
	return c.Do(ctx, http.MethodPut, endpoint, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, endpoint string, out any, opts ...Option) error {
	return c.Do(ctx, http.MethodDelete, endpoint, nil, out, opts...)
}

// Message returns the human-readable part of err for display.
func Message(err error) string {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.Message
	}
	return err.Error()
}
