package schema

import (
	"encoding/json"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Query is a server-owned resource representing one unit of
// conversational work. The client never caches query state; every read
// fetches current server truth.
type Query struct {
	Name      string       `json:"name,omitempty"`
	Type      string       `json:"type,omitempty"`
	Input     any          `json:"input,omitempty"`
	Target    *QueryTarget `json:"target,omitempty"`
	Status    *QueryStatus `json:"status,omitempty"`
	SessionID string       `json:"sessionId,omitempty"`
	Timeout   string       `json:"timeout,omitempty"`
	Metadata  *Metadata    `json:"metadata,omitempty"`
}

// QueryTarget addresses the resource the query is evaluated against.
type QueryTarget struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// QueryStatus is the server-maintained status of a query.
type QueryStatus struct {
	Phase    string         `json:"phase,omitempty"`
	Response *QueryResponse `json:"response,omitempty"`
}

// QueryResponse carries the textual response of a completed query.
type QueryResponse struct {
	Content string `json:"content,omitempty"`
}

// Metadata is a free-form annotation map attached to a query.
type Metadata struct {
	Annotations map[string]string `json:"annotations,omitempty"`
}

// QueryList is the collection shape returned by the list endpoint.
type QueryList struct {
	Items []Query `json:"items"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// TypeMessages is the query type for chat-originated queries.
	TypeMessages = "messages"

	// ChatQueryPrefix prefixes the generated name of every chat query.
	ChatQueryPrefix = "chat-query-"

	// AnnotationStreamingEnabled marks a query for streamed evaluation.
	// The value is the string "true" or "false".
	AnnotationStreamingEnabled = "ark.mckinsey.com/streaming-enabled"
)

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (q Query) String() string {
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Phase returns the parsed status phase, or PhaseUnknown when the query
// carries no status.
func (q Query) Phase() Phase {
	if q.Status == nil {
		return PhaseUnknown
	}
	return ParsePhase(q.Status.Phase)
}

// IsChatQuery returns true when the query name carries the chat prefix.
func (q Query) IsChatQuery() bool {
	return strings.HasPrefix(q.Name, ChatQueryPrefix)
}
