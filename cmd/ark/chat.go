package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	ark "github.com/mckinsey/ark-go"
	schema "github.com/mckinsey/ark-go/pkg/schema"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	Target  string        `name:"target" default:"agent/default" help:"Target as type/name, e.g. agent/weather"`
	Session string        `name:"session" help:"Session ID (defaults to the stored session)"`
	New     bool          `name:"new" help:"Start a new session"`
	Stream  bool          `name:"stream" negatable:"" default:"true" help:"Stream the response"`
	Timeout time.Duration `name:"timeout" help:"Server-side evaluation timeout"`
	Message string        `arg:"" help:"Message to send"`
}

// delta is the minimal shape read out of a streamed completion chunk.
type delta struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand",
		attribute.String("target", cmd.Target),
	)
	defer func() { endSpan(err) }()

	targetType, targetName, found := strings.Cut(cmd.Target, "/")
	if !found {
		return fmt.Errorf("target must be of the form type/name, got %q", cmd.Target)
	}

	// Determine session ID: explicit flag > stored default > new
	sessionID := cmd.Session
	if sessionID == "" && !cmd.New {
		sessionID = ctx.settings.GetString("session")
	}
	if sessionID == "" {
		sessionID = "session-" + uuid.New().String()
	}
	if err := ctx.settings.Set("session", sessionID); err != nil {
		return err
	}

	messages := []schema.Message{
		schema.NewTextMessage(schema.RoleUser, cmd.Message),
	}
	opts := []ark.ChatOpt{ark.WithSessionID(sessionID)}
	if cmd.Timeout > 0 {
		opts = append(opts, ark.WithTimeout(cmd.Timeout))
	}

	if cmd.Stream && ctx.settings.GetBool("streaming") {
		return cmd.runStreaming(ctx, parent, messages, targetType, targetName, opts)
	}
	return cmd.runPolling(ctx, parent, messages, targetType, targetName, opts)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// runStreaming streams the chat response, printing content deltas as
// they arrive.
func (cmd *ChatCmd) runStreaming(ctx *Globals, parent context.Context, messages []schema.Message, targetType, targetName string, opts []ark.ChatOpt) error {
	stream, err := ctx.client.StreamChatResponse(parent, messages, targetType, targetName, opts...)
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		var d delta
		if json.Unmarshal(chunk, &d) == nil && len(d.Choices) > 0 {
			fmt.Print(d.Choices[0].Delta.Content)
		}
	}
	fmt.Println()
	return nil
}

// runPolling submits a query and polls it to a terminal phase, then
// renders the response as markdown.
func (cmd *ChatCmd) runPolling(ctx *Globals, parent context.Context, messages []schema.Message, targetType, targetName string, opts []ark.ChatOpt) error {
	opts = append(opts, ark.WithStreamingEnabled(false))
	query, err := ctx.client.SubmitChatQuery(parent, messages, targetType, targetName, opts...)
	if err != nil {
		return err
	}

	poller := ctx.client.PollQueryStatus(parent, query.Name, func(status schema.QueryStatus) {
		if ctx.Verbose {
			fmt.Fprintf(os.Stderr, "%s\n", renderPhase(schema.ParsePhase(status.Phase)))
		}
	}, 2*time.Second)
	defer poller.Cancel()

	select {
	case <-poller.Done():
	case <-parent.Done():
		return parent.Err()
	}

	result := ctx.client.GetQueryResult(parent, query.Name)
	if result.Response == nil {
		return fmt.Errorf("query %q: %s", query.Name, result.Status)
	}
	return renderMarkdown(*result.Response)
}

////////////////////////////////////////////////////////////////////////////////
// HISTORY

type HistoryCmd struct {
	Session string `name:"session" help:"Session ID (defaults to the stored session)"`
}

func (cmd *HistoryCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "HistoryCommand")
	defer func() { endSpan(err) }()

	sessionID := cmd.Session
	if sessionID == "" {
		sessionID = ctx.settings.GetString("session")
	}
	if sessionID == "" {
		return fmt.Errorf("no session: pass --session or start a chat first")
	}

	queries, err := ctx.client.GetChatHistory(parent, sessionID)
	if err != nil {
		return err
	}
	for _, query := range queries {
		fmt.Printf("%-40s %s\n", query.Name, renderPhase(query.Phase()))
	}
	return nil
}
