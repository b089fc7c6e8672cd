package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/osse101/InvestSim_Go/internal/client"
)

type reloadCmd struct {
	app *App
	yes bool
}

func (*reloadCmd) Name() string     { return "reload" }
func (*reloadCmd) Synopsis() string { return "clear the server's cached quotes and reload them" }
func (*reloadCmd) Usage() string {
	return `investctl reload [-yes]
`
}

func (c *reloadCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "do not ask for confirmation")
}

func (c *reloadCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes && !c.app.confirm("Clear cached quotes and reload the catalog?") {
		fmt.Fprintln(c.app.Out, "Cancelled.")
		return subcommands.ExitSuccess
	}

	catalog, err := c.app.client().ReloadCatalog(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printMarkdown(catalogMarkdown(catalog, ""))
	return subcommands.ExitSuccess
}

type watchCmd struct {
	app   *App
	types string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "follow live server events" }
func (*watchCmd) Usage() string {
	return `investctl watch [-types a,b]

  Prints one line per event until interrupted.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.types, "types", "", "comma separated event types, e.g. purchase.completed")
}

func (c *watchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var types []string
	for _, t := range strings.Split(c.types, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	err := c.app.client().Watch(ctx, types, func(e client.StreamEvent) error {
		ts := time.Unix(e.Timestamp, 0).Local().Format(time.TimeOnly)
		payload := string(e.Payload)
		var compact map[string]interface{}
		if json.Unmarshal(e.Payload, &compact) == nil {
			if b, err := json.Marshal(compact); err == nil {
				payload = string(b)
			}
		}
		fmt.Fprintf(c.app.Out, "%s %s %s\n", ts, e.Type, payload)
		return nil
	})
	if err != nil {
		return c.app.fail(err)
	}
	return subcommands.ExitSuccess
}

type versionCmd struct {
	app *App
}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "show server build information" }
func (*versionCmd) Usage() string    { return "investctl version\n" }

func (*versionCmd) SetFlags(*flag.FlagSet) {}

func (c *versionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	info, err := c.app.client().GetVersion(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.Out, "server %s (%s) commit %s built %s\n", info.Version, info.GoVersion, info.GitCommit, info.BuildTime)
	return subcommands.ExitSuccess
}
