package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	schema "github.com/mckinsey/ark-go/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_query_001(t *testing.T) {
	// Unset optional fields are omitted from the wire form
	assert := assert.New(t)
	data, err := json.Marshal(schema.Query{
		Name: "chat-query-1",
		Type: schema.TypeMessages,
	})
	assert.NoError(err)
	assert.JSONEq(`{"name":"chat-query-1","type":"messages"}`, string(data))
}

func Test_query_002(t *testing.T) {
	// Session ID travels as sessionId
	assert := assert.New(t)
	data, err := json.Marshal(schema.Query{
		Name:      "chat-query-2",
		SessionID: "session-abc",
	})
	assert.NoError(err)

	var raw map[string]any
	assert.NoError(json.Unmarshal(data, &raw))
	assert.Equal("session-abc", raw["sessionId"])
	assert.NotContains(raw, "sessionID")
}

func Test_query_003(t *testing.T) {
	// Message content may be a string or content parts
	assert := assert.New(t)

	message := schema.NewTextMessage(schema.RoleUser, "hello")
	assert.Equal(schema.RoleUser, message.Role)
	assert.Equal("hello", message.Content)

	parts := []schema.ContentPart{
		schema.NewTextPart("describe this"),
		schema.NewImagePart("https://example.com/cat.png"),
	}
	assert.Equal(schema.PartText, parts[0].Type)
	assert.Equal(schema.PartImageURL, parts[1].Type)
	assert.Equal("https://example.com/cat.png", parts[1].ImageURL.URL)
}

func Test_query_004(t *testing.T) {
	// Phase reads through the status
	assert := assert.New(t)
	query := schema.Query{
		Name:   "chat-query-4",
		Status: &schema.QueryStatus{Phase: "running"},
	}
	assert.Equal(schema.PhaseRunning, query.Phase())
}
