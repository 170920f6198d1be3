package tmdb

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	config    Config
	transport Transport
	timeout   time.Duration
	userAgent string
}

// WithTransport replaces the HTTP transport, e.g. with a fake in tests.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// WithHTTPClient sends requests through an existing http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		if hc != nil {
			o.transport = NewHTTPTransportWithClient(hc)
		}
	}
}

// WithHTTPTimeout sets the timeout of the default transport.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets the user agent of the default transport.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithBaseURL points the client at another API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.config.BaseURL = baseURL
		}
	}
}

// WithAPIVersion sets the API version path segment.
func WithAPIVersion(version string) Option {
	return func(o *clientOptions) {
		if version != "" {
			o.config.APIVersion = version
		}
	}
}

// WithFormat sets the initial response format. Unrecognized values are ignored.
func WithFormat(format string) Option {
	return func(o *clientOptions) {
		if f, ok := ParseFormat(format); ok {
			o.config.Format = f
		}
	}
}

// WithLanguage sets the preferred language.
func WithLanguage(language string) Option {
	return func(o *clientOptions) {
		if language != "" {
			o.config.Language = language
		}
	}
}
