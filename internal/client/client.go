package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	serviceerrors "storefront/internal/service"
	"storefront/pkg/lib/logger/sl"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	HeaderRequestID = "X-Request-ID"

	maxErrorBody = 4 << 10
)

// Request describes a single call. An empty Token sends no Authorization header.
type Request struct {
	Method string
	Path   string
	Token  string
	Body   any
}

type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
}

// New builds a client whose transport propagates trace context.
// A zero timeout leaves requests bounded only by their context.
func New(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(log, baseURL, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func NewWithHTTPClient(log *slog.Logger, baseURL string, hc *http.Client) *Client {
	return &Client{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// Do sends req and decodes the response body into out (which may be nil).
// It reports empty when the server answered 2xx with a falsy body: nothing,
// null, false, 0 or "".
func (c *Client) Do(ctx context.Context, req Request, out any) (bool, error) {
	const op = "client.Do"
	log := c.log.With("op", op, "method", req.Method, "path", req.Path)

	select {
	case <-ctx.Done():
		return false, contextError(ctx.Err())
	default:
	}

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		log.Error("Failed to build request", sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Warn("Request failed", sl.Err(err))
		return false, transportError(err)
	}
	defer resp.Body.Close()

	log.Debug("Response received",
		"status", resp.StatusCode,
		"request_id", httpReq.Header.Get(HeaderRequestID),
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, statusError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("Cannot read response body", sl.Err(err))
		return false, transportError(err)
	}

	if isFalsy(body) {
		return true, nil
	}

	if out == nil {
		return false, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		log.Error("Cannot unmarshal response body", sl.Err(err))
		return false, fmt.Errorf("%w: malformed response: %w", serviceerrors.ErrUnavailable, err)
	}

	return false, nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("cannot marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(HeaderRequestID, uuid.NewString())

	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	return httpReq, nil
}

func isFalsy(body []byte) bool {
	switch string(bytes.TrimSpace(body)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}

func contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", serviceerrors.ErrUnavailable, serviceerrors.ErrDeadlineExceeded)
	}
	return fmt.Errorf("%w: %w", serviceerrors.ErrUnavailable, serviceerrors.ErrContextCanceled)
}

func transportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return contextError(context.Canceled)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return contextError(context.DeadlineExceeded)
	}

	return fmt.Errorf("%w: %w", serviceerrors.ErrUnavailable, err)
}

// statusError keeps the server's message when the body carries one.
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &envelope); err == nil {
		switch {
		case envelope.Message != "":
			msg = envelope.Message
		case envelope.Error != "":
			msg = envelope.Error
		}
	}

	return &serviceerrors.StatusError{Code: resp.StatusCode, Body: msg}
}
