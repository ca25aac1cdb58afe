package main

import (
	"fmt"
	"time"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"

	schema "github.com/mckinsey/ark-go/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type WatchCmd struct {
	Name     string        `arg:"" help:"Query name to watch"`
	Interval time.Duration `name:"interval" default:"2s" help:"Polling interval"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *WatchCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "WatchCommand",
		attribute.String("query", cmd.Name),
	)
	defer func() { endSpan(err) }()

	poller := ctx.client.PollQueryStatus(parent, cmd.Name, func(status schema.QueryStatus) {
		fmt.Printf("%s  %s\n", time.Now().Format(time.TimeOnly), renderPhase(schema.ParsePhase(status.Phase)))
	}, cmd.Interval)
	defer poller.Cancel()

	select {
	case <-poller.Done():
	case <-parent.Done():
		return parent.Err()
	}

	result := ctx.client.GetQueryResult(parent, cmd.Name)
	if result.Response != nil {
		return renderMarkdown(*result.Response)
	}
	return nil
}
