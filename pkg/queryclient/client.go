/*
queryclient implements the ARK query API client: query resource CRUD,
chat submission, status polling and SSE chat streaming.
*/
package queryclient

import (
	"log/slog"
	"net/http"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	ark "github.com/mckinsey/ark-go"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is an ARK API client. CRUD calls go through the wrapped base
// client; streaming chat requests own their response body and bypass it.
type Client struct {
	*client.Client

	endpoint   string
	stream     *http.Client
	tracer     trace.Tracer
	logger     *slog.Logger
	clientOpts []client.ClientOpt
}

// Opt is a functional option for configuring the client
type Opt func(*Client) error

///////////////////////////////////////////////////////////////////////////////
// INTERFACE CHECKS

var (
	_ ark.Queries = (*Client)(nil)
	_ ark.Chatter  = (*Client)(nil)
	_ ark.Streamer = (*Client)(nil)
	_ ark.Watcher = (*Client)(nil)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the ARK API server at the given base URL,
// e.g. "http://localhost:8080".
func New(url string, opts ...Opt) (*Client, error) {
	if url == "" {
		return nil, ark.ErrBadParameter.With("endpoint is required")
	}

	// Create the client
	c := &Client{
		endpoint: strings.TrimRight(url, "/"),
		stream:   new(http.Client),
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Create the base client for CRUD requests
	base, err := client.New(append(c.clientOpts, client.OptEndpoint(c.endpoint))...)
	if err != nil {
		return nil, err
	}
	c.Client = base

	// Return the client
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithClientOpts appends options for the underlying base HTTP client.
func WithClientOpts(opts ...client.ClientOpt) Opt {
	return func(c *Client) error {
		c.clientOpts = append(c.clientOpts, opts...)
		return nil
	}
}

// WithTracer sets the tracer used to create spans around client
// operations. Without it no spans are emitted.
func WithTracer(tracer trace.Tracer) Opt {
	return func(c *Client) error {
		c.tracer = tracer
		return nil
	}
}

// WithLogger sets the structured logger used for non-fatal events, such
// as swallowed poll fetch failures. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Opt {
	return func(c *Client) error {
		if logger == nil {
			return ark.ErrBadParameter.With("logger is required")
		}
		c.logger = logger
		return nil
	}
}

// WithStreamClient sets the HTTP client used for streaming chat
// requests. Defaults to a client without timeout, since a stream stays
// open for the duration of the response.
func WithStreamClient(stream *http.Client) Opt {
	return func(c *Client) error {
		if stream == nil {
			return ark.ErrBadParameter.With("stream client is required")
		}
		c.stream = stream
		return nil
	}
}
