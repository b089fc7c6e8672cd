// Command investctl browses the quote catalog and buys into a simulated
// wallet through the InvestSim HTTP API.
//
// Shell completion: run `COMP_INSTALL=1 investctl` once.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/osse101/InvestSim_Go/internal/cli"
)

func main() {
	_ = godotenv.Load()

	app := cli.NewApp()
	app.SetFlags(flag.CommandLine)

	// Exits when invoked by the shell for completion
	cli.Completion(app).Complete("investctl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cli.Register(commander, app)

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}
