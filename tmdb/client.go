package tmdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the root of the TMDb API
	DefaultBaseURL = "http://api.themoviedb.org/"
	// DefaultAPIVersion is the API version addressed by the client
	DefaultAPIVersion = "2.1"
	// DefaultLanguage is the language requested when none is configured
	DefaultLanguage = "en"
)

// Config is the snapshot read when a request is built
type Config struct {
	APIKey     string
	Format     Format
	Language   string
	BaseURL    string
	APIVersion string
}

// DefaultConfig returns the configuration used by NewClient before options apply
func DefaultConfig() Config {
	return Config{
		Format:     FormatJSON,
		Language:   DefaultLanguage,
		BaseURL:    DefaultBaseURL,
		APIVersion: DefaultAPIVersion,
	}
}

// Client is a TMDb API client. Its configuration never changes after construction;
// the With* methods return modified copies, so a Client can be shared freely.
type Client struct {
	cfg       Config
	transport Transport
	logger    zerolog.Logger
}

// NewClient creates a new TMDb client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	o := clientOptions{
		config:    DefaultConfig(),
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	o.config.APIKey = apiKey

	for _, opt := range opts {
		opt(&o)
	}

	transport := o.transport
	if transport == nil {
		transport = NewHTTPTransport(o.timeout, o.userAgent)
	}

	return &Client{
		cfg:       o.config,
		transport: transport,
		logger:    logger,
	}
}

// Config returns the configuration snapshot
func (c *Client) Config() Config {
	return c.cfg
}

// APIKey returns the configured API key
func (c *Client) APIKey() string {
	return c.cfg.APIKey
}

// Format returns the configured response format
func (c *Client) Format() Format {
	return c.cfg.Format
}

// Language returns the preferred language
func (c *Client) Language() string {
	return c.cfg.Language
}

// WithAPIKey returns a client using apiKey
func (c *Client) WithAPIKey(apiKey string) *Client {
	clone := *c
	clone.cfg.APIKey = apiKey
	return &clone
}

// WithFormat returns a client using format. Unrecognized formats are ignored and
// the returned client keeps the current format.
func (c *Client) WithFormat(format string) *Client {
	clone := *c
	if f, ok := ParseFormat(format); ok {
		clone.cfg.Format = f
	}
	return &clone
}

// WithLanguage returns a client using language
func (c *Client) WithLanguage(language string) *Client {
	clone := *c
	clone.cfg.Language = language
	return &clone
}

// BuildRequest returns the wire request for op without sending it
func (c *Client) BuildRequest(op Operation) (Request, error) {
	req, _, err := buildRequest(c.cfg, op)
	return req, err
}

// Do builds, sends and decodes a single operation. The per-call format override,
// when set, is used both on the wire and for decoding.
func (c *Client) Do(ctx context.Context, op Operation) (Result, error) {
	req, format, err := buildRequest(c.cfg, op)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build %s request: %w", op.Name, err)
	}

	c.logger.Debug().
		Str("operation", op.Name).
		Str("method", string(req.Method)).
		Str("format", format.String()).
		Str("url", redactURL(req.URL, keyPrefix(c.cfg, op.Name, format), c.cfg.APIKey)).
		Msg("Making TMDb API request")

	body, err := c.transport.Fetch(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op.Name, err)
	}

	result, err := decodeResult(format, body)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op.Name, err)
	}

	c.logger.Trace().
		Str("operation", op.Name).
		Int("bytes", len(body)).
		Str("kind", result.Kind().String()).
		Msg("Decoded TMDb response")

	return result, nil
}

// get issues a GET for name with params in the client format
func (c *Client) get(ctx context.Context, name string, params Params) (Result, error) {
	return c.Do(ctx, Operation{Name: name, Params: params})
}

// isAuthOperation reports whether name is addressed without a language segment
func isAuthOperation(name string) bool {
	return strings.HasPrefix(name, authPrefix)
}
