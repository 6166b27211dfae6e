// Package upload pushes finished diagram documents to a remote endpoint.
//
// A typical target is an internal wiki or asset store that accepts a raw
// .excalidraw document via HTTP POST. Transient failures (network errors,
// 5xx responses) are retried with exponential backoff.
package upload

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/robtaylor/excalidraw-diagrams/pkg/errors"
	"github.com/robtaylor/excalidraw-diagrams/pkg/excalidraw"
)

const (
	defaultRetryMax = 3
	defaultTimeout  = 30 * time.Second
	contentType     = "application/json"
)

// Client uploads documents to a fixed endpoint.
type Client struct {
	endpoint string
	http     *retryablehttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithRetryMax overrides the number of retries for transient failures.
func WithRetryMax(n int) Option {
	return func(c *Client) { c.http.RetryMax = n }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.HTTPClient.Timeout = d }
}

// WithLogger routes the retry client's internal logging to logger at
// debug level. Without it the client is silent.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.http.Logger = debugLogger{logger} }
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = defaultRetryMax
	rc.HTTPClient.Timeout = defaultTimeout
	rc.Logger = nil

	c := &Client{endpoint: endpoint, http: rc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upload serializes the diagram and POSTs it to the endpoint. It returns
// the response body, which endpoints typically use to echo back a share
// URL or asset id.
func (c *Client) Upload(ctx context.Context, d *excalidraw.Diagram) ([]byte, error) {
	data, err := d.JSON()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUploadFailed, err, "serialize document")
	}
	return c.Push(ctx, data)
}

// Push POSTs an already-serialized document to the endpoint.
func (c *Client) Push(ctx context.Context, document []byte) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(document))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUploadFailed, err, "build request for %s", c.endpoint)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUploadFailed, err, "post %s", c.endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUploadFailed, err, "read response from %s", c.endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(errors.ErrCodeUploadFailed, "post %s: status %d: %s", c.endpoint, resp.StatusCode, body)
	}
	return body, nil
}

// debugLogger adapts charmbracelet/log to retryablehttp's LeveledLogger.
// All retry chatter is demoted to debug so it only shows up with -v.
type debugLogger struct {
	logger *log.Logger
}

func (l debugLogger) Error(msg string, kv ...any) { l.logger.Debug(msg, kv...) }
func (l debugLogger) Warn(msg string, kv ...any)  { l.logger.Debug(msg, kv...) }
func (l debugLogger) Info(msg string, kv ...any)  { l.logger.Debug(msg, kv...) }
func (l debugLogger) Debug(msg string, kv ...any) { l.logger.Debug(msg, kv...) }

var _ retryablehttp.LeveledLogger = debugLogger{}
