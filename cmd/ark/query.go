package main

import (
	"encoding/json"
	"fmt"
	"os"

	// Packages
	schema "github.com/mckinsey/ark-go/pkg/schema"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ListQueriesCmd struct{}

type GetQueryCmd struct {
	Name string `arg:"" help:"Query name"`
}

type CreateQueryCmd struct {
	File string `name:"file" short:"f" required:"" help:"Path to a YAML query spec"`
}

type DeleteQueryCmd struct {
	Name string `arg:"" help:"Query name"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListQueriesCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListQueriesCommand")
	defer func() { endSpan(err) }()

	queries, err := ctx.client.ListQueries(parent)
	if err != nil {
		return err
	}
	for _, query := range queries {
		fmt.Printf("%-40s %-10s %s\n", query.Name, renderPhase(query.Phase()), query.SessionID)
	}
	if len(queries) == 0 {
		fmt.Println("No queries")
	}
	return nil
}

func (cmd *GetQueryCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetQueryCommand")
	defer func() { endSpan(err) }()

	query, err := ctx.client.GetQuery(parent, cmd.Name)
	if err != nil {
		return err
	}
	if query == nil {
		return fmt.Errorf("query %q not found", cmd.Name)
	}
	fmt.Println(query)
	return nil
}

func (cmd *CreateQueryCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CreateQueryCommand")
	defer func() { endSpan(err) }()

	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return err
	}
	// Decode via YAML then JSON so the wire tags apply
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %q: %w", cmd.File, err)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	var query schema.Query
	if err := json.Unmarshal(encoded, &query); err != nil {
		return fmt.Errorf("parsing %q: %w", cmd.File, err)
	}

	created, err := ctx.client.CreateQuery(parent, query)
	if err != nil {
		return err
	}
	fmt.Println(created)
	return nil
}

func (cmd *DeleteQueryCmd) Run(ctx *Globals) (err error) {
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "DeleteQueryCommand")
	defer func() { endSpan(err) }()

	deleted, err := ctx.client.DeleteQuery(parent, cmd.Name)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("query %q not found", cmd.Name)
	}
	fmt.Printf("query %q deleted\n", cmd.Name)
	return nil
}
