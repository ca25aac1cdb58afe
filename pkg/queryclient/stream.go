package queryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	// Packages
	ark "github.com/mckinsey/ark-go"
	schema "github.com/mckinsey/ark-go/pkg/schema"
	sse "github.com/mckinsey/ark-go/pkg/sse"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// completionRequest is the body of a streaming chat request against the
// OpenAI-compatible endpoint. Metadata is always transmitted as an
// object; session and timeout keys are present only when provided.
type completionRequest struct {
	Model    string            `json:"model"`
	Messages []schema.Message  `json:"messages"`
	Stream   bool              `json:"stream"`
	Metadata map[string]string `json:"metadata"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const completionsPath = "/api/openai/v1/chat/completions"

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// StreamChatResponse issues a streaming chat request and returns a
// stream of response chunks in arrival order. The caller owns the
// returned stream and must drain it to io.EOF or close it; the stream
// releases the network connection on every exit path. WithSessionID and
// WithTimeout attach the corresponding metadata keys.
func (c *Client) StreamChatResponse(ctx context.Context, messages []schema.Message, targetType, targetName string, opts ...ark.ChatOpt) (result *sse.Stream, err error) {
	if targetType == "" || targetName == "" {
		return nil, ark.ErrBadParameter.With("target type and name are required")
	}

	// Apply options
	o, err := ark.ApplyChatOpts(opts...)
	if err != nil {
		return nil, err
	}

	// Otel span covers the stream set-up, not its consumption
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "StreamChatResponse",
		attribute.String("target", targetType+"/"+targetName),
	)
	defer func() { endSpan(err) }()

	// Build the request body
	metadata := map[string]string{}
	if o.SessionID != "" {
		metadata["sessionId"] = o.SessionID
	}
	if o.Timeout > 0 {
		metadata["timeout"] = o.Timeout.String()
	}
	body, err := json.Marshal(completionRequest{
		Model:    targetType + "/" + targetName,
		Messages: messages,
		Stream:   true,
		Metadata: metadata,
	})
	if err != nil {
		return nil, err
	}

	// Open the stream
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+completionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.stream.Do(req)
	if err != nil {
		return nil, ark.ErrStreamConnection.Withf("%v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, ark.ErrStreamConnection.Withf("%s", resp.Status)
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		return nil, ark.ErrStreamNoBody
	}

	// Hand ownership of the body to the stream
	return sse.NewStream(resp.Body), nil
}
