package queryclient

import (
	"context"
	"sort"
	"strconv"

	// Packages
	uuid "github.com/google/uuid"
	ark "github.com/mckinsey/ark-go"
	schema "github.com/mckinsey/ark-go/pkg/schema"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	types "github.com/mutablelogic/go-server/pkg/types"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SubmitChatQuery creates a chat query against the given target. The
// query name is generated with the chat prefix and the messages are
// transmitted verbatim, including any multimodal content parts. Use
// WithSessionID, WithTimeout and WithStreamingEnabled to set the
// optional fields; unset fields are left off the transmitted spec.
func (c *Client) SubmitChatQuery(ctx context.Context, messages []schema.Message, targetType, targetName string, opts ...ark.ChatOpt) (result *schema.Query, err error) {
	if targetType == "" || targetName == "" {
		return nil, ark.ErrBadParameter.With("target type and name are required")
	}

	// Apply options
	o, err := ark.ApplyChatOpts(opts...)
	if err != nil {
		return nil, err
	}

	// Otel span
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "SubmitChatQuery",
		attribute.String("target", targetType+"/"+targetName),
	)
	defer func() { endSpan(err) }()

	// Build the query spec
	query := schema.Query{
		Name:      schema.ChatQueryPrefix + uuid.New().String(),
		Type:      schema.TypeMessages,
		Input:     messages,
		Target:    &schema.QueryTarget{Type: targetType, Name: targetName},
		SessionID: o.SessionID,
	}
	if o.Timeout > 0 {
		query.Timeout = o.Timeout.String()
	}
	if o.Streaming != nil {
		query.Metadata = &schema.Metadata{
			Annotations: map[string]string{
				schema.AnnotationStreamingEnabled: strconv.FormatBool(*o.Streaming),
			},
		}
	}

	// Create the query
	return c.CreateQuery(ctx, query)
}

// GetChatHistory returns the chat queries belonging to a session,
// stamped with the session ID and sorted ascending by name. Name order
// stands in for chronological order; callers relying on chronology need
// lexicographically monotonic name suffixes.
func (c *Client) GetChatHistory(ctx context.Context, sessionID string) (result []schema.Query, err error) {
	// Otel span
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "GetChatHistory",
		attribute.String("session", sessionID),
	)
	defer func() { endSpan(err) }()

	// Fetch all queries
	queries, err := c.ListQueries(ctx)
	if err != nil {
		return nil, err
	}

	// Filter to chat queries, attaching the session ID
	history := make([]schema.Query, 0, len(queries))
	for _, query := range queries {
		if !query.IsChatQuery() {
			continue
		}
		query.SessionID = sessionID
		history = append(history, query)
	}

	// Sort ascending by name
	sort.Slice(history, func(i, j int) bool {
		return history[i].Name < history[j].Name
	})

	// Return the history
	return history, nil
}

// GetQueryResult projects the named query into a result summary. An
// absent query is treated as not yet visible (unknown, non-terminal,
// keep waiting) whereas a fetch failure is terminal; neither carries a
// response. A present query carries its response content, or
// "No response" when none has been produced.
func (c *Client) GetQueryResult(ctx context.Context, name string) schema.QueryResult {
	query, err := c.GetQuery(ctx, name)
	if err != nil {
		return schema.QueryResult{Status: schema.PhaseError, Terminal: true}
	}
	if query == nil {
		return schema.QueryResult{Status: schema.PhaseUnknown, Terminal: false}
	}

	phase := query.Phase()
	content := schema.NoResponse
	if query.Status != nil && query.Status.Response != nil {
		content = query.Status.Response.Content
	}
	return schema.QueryResult{
		Status:   phase,
		Terminal: phase.Terminal(),
		Response: types.Ptr(content),
	}
}
