// Command netmst computes minimum-cost connection plans from edge-list files.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	"github.com/joho/godotenv"
	"github.com/katalvlaran/netmst/logging"
)

// CLI is the root command.
type CLI struct {
	Config kong.ConfigFlag `help:"Load flag values from a TOML file." placeholder:"FILE"`
	Log    logging.Config  `embed:"" prefix:"log-"`

	Solve   SolveCmd   `cmd:"" help:"Solve local edge-list files and print each result."`
	Process ProcessCmd `cmd:"" help:"Run the file-arrival pipeline over keys in a bucket directory."`
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("netmst"),
		kong.Description("Minimum spanning tree planner for network connection lists."),
		kong.Configuration(kongtoml.Loader, "~/.netmst.toml"),
		kong.UsageOnError(),
	}
}

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var cli CLI
	kctx := kong.Parse(&cli, options()...)
	logger := logging.New(os.Stderr, cli.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := run(ctx, kctx, logger, os.Stdout)
	kctx.FatalIfErrorf(err)
}

func run(ctx context.Context, kctx *kong.Context, logger *slog.Logger, stdout io.Writer) error {
	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.BindTo(stdout, (*io.Writer)(nil))
	return kctx.Run(logger)
}
