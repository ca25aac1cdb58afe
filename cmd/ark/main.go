package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	queryclient "github.com/mckinsey/ark-go/pkg/queryclient"
	settings "github.com/mckinsey/ark-go/pkg/settings"
	client "github.com/mutablelogic/go-client"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Server
	Server string `env:"ARK_SERVER" default:"http://localhost:8080" help:"ARK API server URL"`

	// Context
	ctx      context.Context
	client   *queryclient.Client
	settings *settings.Store
	tracer   trace.Tracer
}

type CLI struct {
	Globals

	// Queries
	Query QueryCmd `cmd:"" help:"Manage query resources"`

	// Commands
	Chat    ChatCmd    `cmd:"" help:"Send a chat message to a target"`
	History HistoryCmd `cmd:"" help:"Show chat queries for a session"`
	Watch   WatchCmd   `cmd:"" help:"Watch a query until it completes"`

	// Other
	Version VersionCmd `cmd:"" help:"Print version information"`
}

type QueryCmd struct {
	List   ListQueriesCmd `cmd:"" help:"List all queries"`
	Get    GetQueryCmd    `cmd:"" help:"Get a query by name"`
	Create CreateQueryCmd `cmd:"" help:"Create a query from a YAML spec"`
	Delete DeleteQueryCmd `cmd:"" help:"Delete a query by name"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("ARK query command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Tracer is a no-op unless an OTLP provider has been installed
	cli.Globals.tracer = otel.Tracer("github.com/mckinsey/ark-go/cmd/ark")

	// Settings store
	if path, err := os.UserConfigDir(); err != nil {
		cmd.FatalIfErrorf(err)
		return
	} else {
		cli.Globals.settings = settings.New(filepath.Join(path, "ark", "settings.json"), map[string]any{
			"session":   "",
			"streaming": true,
		})
	}

	// Client options
	clientopts := []client.ClientOpt{}
	if cli.Debug || cli.Verbose {
		clientopts = append(clientopts, client.OptTrace(os.Stderr, cli.Verbose))
	}

	// Create the client
	c, err := queryclient.New(cli.Server,
		queryclient.WithClientOpts(clientopts...),
		queryclient.WithTracer(cli.Globals.tracer),
	)
	cmd.FatalIfErrorf(err)
	cli.Globals.client = c

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
