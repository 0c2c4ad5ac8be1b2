package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// Meta carries response metadata alongside the normalized payload.
type Meta struct {
	Status    int
	RequestID string
}

// Response is the uniform shape every operation receives, regardless of
// which envelope the backend endpoint wrapped the payload in.
type Response[T any] struct {
	Data T
	Meta Meta
}

// Client is the boundary to the REST backend. One Client is shared by all
// domain endpoint sets.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// NewClient builds a client for the given base URL. A zero timeout leaves
// requests unbounded, mirroring the observed behaviour of the system this
// layer fronts.
func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Get issues a GET and normalizes the payload through the given envelope.
func Get[T any](ctx context.Context, c *Client, path string, env Envelope) (Response[T], error) {
	return do[T](ctx, c, http.MethodGet, path, nil, env)
}

// Post issues a POST with a JSON body.
func Post[T any](ctx context.Context, c *Client, path string, body any, env Envelope) (Response[T], error) {
	return do[T](ctx, c, http.MethodPost, path, body, env)
}

// Put issues a PUT with a JSON body.
func Put[T any](ctx context.Context, c *Client, path string, body any, env Envelope) (Response[T], error) {
	return do[T](ctx, c, http.MethodPut, path, body, env)
}

// Delete issues a DELETE.
func Delete[T any](ctx context.Context, c *Client, path string, env Envelope) (Response[T], error) {
	return do[T](ctx, c, http.MethodDelete, path, nil, env)
}

func do[T any](ctx context.Context, c *Client, method, path string, body any, env Envelope) (Response[T], error) {
	var zero Response[T]

	target, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return zero, wrapTransport(err)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return zero, wrapTransport(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return zero, wrapTransport(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, wrapTransport(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && c.log != nil {
			c.log.WithError(cerr).Warn("transport: closing response body")
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, wrapTransport(err)
	}

	meta := Meta{Status: resp.StatusCode, RequestID: requestID}
	if echoed := resp.Header.Get(requestIDHeader); echoed != "" {
		meta.RequestID = echoed
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.log != nil {
			c.log.WithFields(logrus.Fields{
				"method":     method,
				"path":       path,
				"status":     resp.StatusCode,
				"request_id": meta.RequestID,
			}).Debug("transport: request rejected")
		}
		return zero, normalizeError(resp.StatusCode, raw)
	}

	data, err := decode[T](raw, env)
	if err != nil {
		return zero, err
	}
	return Response[T]{Data: data, Meta: meta}, nil
}
