/*
ark is a client library for the ARK query API. A query is a server-owned
resource representing one unit of conversational work against a target
(an agent, model or team); the client creates queries, polls them to a
terminal phase, and streams chat responses as server-sent events.
*/
package ark

import (
	"context"
	"time"

	// Packages
	schema "github.com/mckinsey/ark-go/pkg/schema"
	sse "github.com/mckinsey/ark-go/pkg/sse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Queries is the interface that wraps query resource CRUD methods
type Queries interface {
	// CreateQuery creates a new query resource and returns the server
	// representation. The target type is normalised to lowercase.
	CreateQuery(ctx context.Context, query schema.Query) (*schema.Query, error)

	// GetQuery returns the query with the given name, or nil when the
	// query does not exist.
	GetQuery(ctx context.Context, name string) (*schema.Query, error)

	// ListQueries returns all queries in server order.
	ListQueries(ctx context.Context) ([]schema.Query, error)

	// UpdateQuery applies a partial update to the named query. Returns
	// nil when the query does not exist.
	UpdateQuery(ctx context.Context, name string, query schema.Query) (*schema.Query, error)

	// DeleteQuery removes the named query. Returns false when the query
	// does not exist.
	DeleteQuery(ctx context.Context, name string) (bool, error)
}

// Chatter is an interface for submitting chat queries and reading back
// their results and history
type Chatter interface {
	// SubmitChatQuery creates a chat query against the given target and
	// returns the created query.
	SubmitChatQuery(ctx context.Context, messages []schema.Message, targetType, targetName string, opts ...ChatOpt) (*schema.Query, error)

	// GetChatHistory returns all chat queries for a session, sorted
	// ascending by name.
	GetChatHistory(ctx context.Context, sessionID string) ([]schema.Query, error)

	// GetQueryResult projects the named query into a result summary.
	GetQueryResult(ctx context.Context, name string) schema.QueryResult
}

// Streamer is an interface for reading a chat response as it is
// generated
type Streamer interface {
	// StreamChatResponse opens a streaming chat completion against the
	// given target and returns a stream of response chunks.
	StreamChatResponse(ctx context.Context, messages []schema.Message, targetType, targetName string, opts ...ChatOpt) (*sse.Stream, error)
}

// Watcher is an interface for observing a query until it reaches a
// terminal phase
type Watcher interface {
	// PollQueryStatus invokes onUpdate with the query status on each
	// poll tick until a terminal phase is observed or the returned
	// poller is cancelled.
	PollQueryStatus(ctx context.Context, name string, onUpdate func(schema.QueryStatus), interval time.Duration) *Poller
}

// ChatOpt is a functional option for chat query submission
type ChatOpt func(*ChatOptions) error

// ChatOptions holds the optional fields of a chat query submission.
// The zero value omits all optional fields from the transmitted spec.
type ChatOptions struct {
	SessionID string
	Timeout   time.Duration
	Streaming *bool
}

// Poller is the cancellation handle returned by PollQueryStatus
type Poller struct {
	cancel func()
	done   chan struct{}
}

///////////////////////////////////////////////////////////////////////////////
// CHAT OPTIONS

// WithSessionID groups the query into an existing conversation session.
func WithSessionID(id string) ChatOpt {
	return func(o *ChatOptions) error {
		if id == "" {
			return ErrBadParameter.With("session ID is required")
		}
		o.SessionID = id
		return nil
	}
}

// WithTimeout sets the server-side evaluation timeout for the query.
func WithTimeout(d time.Duration) ChatOpt {
	return func(o *ChatOptions) error {
		if d <= 0 {
			return ErrBadParameter.With("timeout must be positive")
		}
		o.Timeout = d
		return nil
	}
}

// WithStreamingEnabled sets the streaming annotation on the query
// metadata. When this option is not used, no annotation is attached.
func WithStreamingEnabled(enabled bool) ChatOpt {
	return func(o *ChatOptions) error {
		o.Streaming = &enabled
		return nil
	}
}

// ApplyChatOpts collects chat options into a ChatOptions value.
func ApplyChatOpts(opts ...ChatOpt) (*ChatOptions, error) {
	o := new(ChatOptions)
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

///////////////////////////////////////////////////////////////////////////////
// POLLER

// NewPoller wraps a cancellation function and completion channel into a
// poller handle. The cancel function must be safe to call more than once.
func NewPoller(cancel func(), done chan struct{}) *Poller {
	return &Poller{cancel: cancel, done: done}
}

// Cancel stops the poll loop. No further status updates are delivered
// after Cancel returns, although a fetch already in flight is allowed
// to complete. Safe to call more than once.
func (p *Poller) Cancel() {
	p.cancel()
}

// Done returns a channel which is closed once the poll loop has exited,
// whether by cancellation, context expiry or a terminal phase.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}
