package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultTimeout bounds a single HTTP exchange of the default transport
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent by the default transport
	DefaultUserAgent = "tmdbctl"
)

// Transport performs the network exchange for a built request and returns the raw body
type Transport interface {
	Fetch(ctx context.Context, req Request) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface
type TransportFunc func(ctx context.Context, req Request) ([]byte, error)

// Fetch calls f(ctx, req)
func (f TransportFunc) Fetch(ctx context.Context, req Request) ([]byte, error) {
	return f(ctx, req)
}

// HTTPTransport is the default Transport, backed by resty
type HTTPTransport struct {
	client *resty.Client
}

// NewHTTPTransport creates a resty backed transport
func NewHTTPTransport(timeout time.Duration, userAgent string) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &HTTPTransport{client: client}
}

// NewHTTPTransportWithClient wraps an existing http.Client
func NewHTTPTransportWithClient(hc *http.Client) *HTTPTransport {
	return &HTTPTransport{client: resty.NewWithClient(hc).SetHeader("User-Agent", DefaultUserAgent)}
}

// Fetch implements Transport
func (t *HTTPTransport) Fetch(ctx context.Context, req Request) ([]byte, error) {
	r := t.client.R().SetContext(ctx)

	var (
		resp *resty.Response
		err  error
	)
	switch req.Method {
	case MethodPost:
		resp, err = r.SetFormDataFromValues(req.Form).Post(req.URL)
	case MethodGet, "":
		resp, err = r.Get(req.URL)
	default:
		return nil, fmt.Errorf("unsupported method %q", req.Method)
	}
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.String(),
		}
	}

	return resp.Body(), nil
}
