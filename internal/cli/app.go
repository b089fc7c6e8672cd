// Package cli implements the investctl subcommands. Commands talk to the API
// through the API interface and print markdown, rendered for the terminal
// unless plain output is requested.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/osse101/InvestSim_Go/internal/client"
	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/handler"
)

// Environment variables read for flag defaults
const (
	EnvServer  = "INVESTCTL_SERVER"
	EnvAPIKey  = "INVESTCTL_API_KEY"
	EnvAccount = "INVESTCTL_ACCOUNT"

	DefaultServer = "http://localhost:8080"
	wordWrap      = 100
)

// API is the part of the HTTP client the commands use
type API interface {
	GetCatalog(ctx context.Context) (domain.Catalog, error)
	GetAsset(ctx context.Context, symbol string) (domain.Asset, error)
	CreateAccount(ctx context.Context, name string) (domain.Account, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (handler.BalanceResponse, error)
	GetWallet(ctx context.Context, accountID uuid.UUID) (domain.Wallet, error)
	ListPurchases(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Purchase, error)
	SubmitPurchase(ctx context.Context, accountID uuid.UUID, req domain.PurchaseRequest) (domain.PurchaseReceipt, error)
	Affordability(ctx context.Context, req handler.AffordabilityRequest) (handler.AffordabilityResponse, error)
	PreviewSelection(ctx context.Context, req handler.SelectionPreviewRequest) (handler.SelectionPreviewResponse, error)
	ReloadCatalog(ctx context.Context) (domain.Catalog, error)
	GetVersion(ctx context.Context) (handler.VersionInfo, error)
	Watch(ctx context.Context, types []string, handle client.StreamHandler) error
}

var errNoAccount = errors.New("no account selected: pass -account or set " + EnvAccount)

// App carries the global flags and I/O shared by every command
type App struct {
	Server  string
	APIKey  string
	Account string
	Plain   bool

	Out io.Writer
	Err io.Writer
	In  io.Reader

	// newAPI builds the API once flags are parsed; tests swap it
	newAPI func(server, apiKey string) API
	api    API
}

// NewApp creates an App writing to the process standard streams
func NewApp() *App {
	return &App{
		Out: os.Stdout,
		Err: os.Stderr,
		In:  os.Stdin,
		newAPI: func(server, apiKey string) API {
			return client.New(server, apiKey)
		},
	}
}

// SetFlags registers the global flags, defaulting from the environment
func (a *App) SetFlags(f *flag.FlagSet) {
	f.StringVar(&a.Server, "server", envOr(EnvServer, DefaultServer), "API base URL")
	f.StringVar(&a.APIKey, "api-key", os.Getenv(EnvAPIKey), "API key sent as X-API-Key")
	f.StringVar(&a.Account, "account", os.Getenv(EnvAccount), "account id used by balance, wallet, history and buy")
	f.BoolVar(&a.Plain, "plain", false, "print raw markdown instead of rendering it")
}

// Register adds every command to the commander
func Register(c *subcommands.Commander, a *App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	for _, cmd := range Commands(a) {
		c.Register(cmd, groupOf(cmd.Name()))
	}
}

// Commands lists the investctl commands bound to a
func Commands(a *App) []subcommands.Command {
	return []subcommands.Command{
		&catalogCmd{app: a},
		&quoteCmd{app: a},
		&affordCmd{app: a},
		&openAccountCmd{app: a},
		&balanceCmd{app: a},
		&walletCmd{app: a},
		&historyCmd{app: a},
		&buyCmd{app: a},
		&previewCmd{app: a},
		&reloadCmd{app: a},
		&watchCmd{app: a},
		&versionCmd{app: a},
	}
}

func groupOf(name string) string {
	switch name {
	case "catalog", "quote", "afford", "preview":
		return "market"
	case "open-account", "balance", "wallet", "history", "buy":
		return "account"
	default:
		return "server"
	}
}

func (a *App) client() API {
	if a.api == nil {
		a.api = a.newAPI(a.Server, a.APIKey)
	}
	return a.api
}

func (a *App) accountID() (uuid.UUID, error) {
	if a.Account == "" {
		return uuid.Nil, errNoAccount
	}
	id, err := uuid.Parse(a.Account)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid account id %q: %w", a.Account, err)
	}
	return id, nil
}

// printMarkdown renders md for the terminal, falling back to raw text
func (a *App) printMarkdown(md string) {
	if a.Plain {
		fmt.Fprint(a.Out, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wordWrap))
	if err != nil {
		fmt.Fprint(a.Out, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(a.Out, md)
		return
	}
	fmt.Fprint(a.Out, out)
}

// fail prints err and maps it to an exit status
func (a *App) fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, "Error: %v\n", err)
	if errors.Is(err, errNoAccount) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// confirm asks a yes/no question on the input stream
func (a *App) confirm(question string) bool {
	fmt.Fprintf(a.Out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
