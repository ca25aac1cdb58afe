package queryclient

import (
	"context"
	"time"

	// Packages
	ark "github.com/mckinsey/ark-go"
	schema "github.com/mckinsey/ark-go/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// DefaultPollInterval is used when no positive interval is given.
const DefaultPollInterval = 2 * time.Second

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// PollQueryStatus starts polling the named query, invoking onUpdate
// with the raw status on each tick until a terminal phase is observed.
// The first tick fires immediately, then every interval. Fetch failures
// are logged and polling continues; a query which is not yet visible is
// skipped without an update. Polling also stops when ctx is cancelled
// or the returned poller's Cancel is invoked; after cancellation no new
// tick is scheduled and an in-flight result is not applied.
func (c *Client) PollQueryStatus(ctx context.Context, name string, onUpdate func(schema.QueryStatus), interval time.Duration) *ark.Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer cancel()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if stop := c.pollOnce(ctx, name, onUpdate); stop {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return ark.NewPoller(cancel, done)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// pollOnce performs a single poll tick. It returns true when polling
// should stop: the observed phase is terminal, or the context was
// cancelled while the fetch was in flight.
func (c *Client) pollOnce(ctx context.Context, name string, onUpdate func(schema.QueryStatus)) bool {
	query, err := c.GetQuery(ctx, name)

	// Suppress a result that arrived after cancellation
	if ctx.Err() != nil {
		return true
	}

	// Transient failures keep the poll alive
	if err != nil {
		c.logger.Warn("query status fetch failed",
			"query", name,
			"error", err,
		)
		return false
	}

	// Not yet visible, keep waiting
	if query == nil {
		return false
	}

	var status schema.QueryStatus
	if query.Status != nil {
		status = *query.Status
	}
	onUpdate(status)

	return query.Phase().Terminal()
}
