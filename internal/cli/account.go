package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/osse101/InvestSim_Go/internal/format"
)

type openAccountCmd struct {
	app  *App
	name string
}

func (*openAccountCmd) Name() string     { return "open-account" }
func (*openAccountCmd) Synopsis() string { return "open an account with the starting balance" }
func (*openAccountCmd) Usage() string {
	return `investctl open-account [-name <display name>]

  Prints the new account id. Export it as ` + EnvAccount + ` to use it by default.
`
}

func (c *openAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "display name")
}

func (c *openAccountCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := c.app.client().CreateAccount(ctx, c.name)
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printMarkdown(fmt.Sprintf("# Account opened\n\n- **Id:** `%s`\n- **Balance:** %s\n\n```\nexport %s=%s\n```\n",
		account.ID, format.USD(account.Balance), EnvAccount, account.ID))
	return subcommands.ExitSuccess
}

type balanceCmd struct {
	app *App
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the account cash balance" }
func (*balanceCmd) Usage() string {
	return `investctl [-account <id>] balance
`
}

func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (c *balanceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := c.app.accountID()
	if err != nil {
		return c.app.fail(err)
	}
	balance, err := c.app.client().GetBalance(ctx, id)
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printMarkdown(fmt.Sprintf("**Balance:** %s\n", format.USD(balance.Balance)))
	return subcommands.ExitSuccess
}

type walletCmd struct {
	app *App
}

func (*walletCmd) Name() string     { return "wallet" }
func (*walletCmd) Synopsis() string { return "list holdings with their value" }
func (*walletCmd) Usage() string {
	return `investctl [-account <id>] wallet
`
}

func (*walletCmd) SetFlags(*flag.FlagSet) {}

func (c *walletCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := c.app.accountID()
	if err != nil {
		return c.app.fail(err)
	}
	wallet, err := c.app.client().GetWallet(ctx, id)
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printMarkdown(walletMarkdown(wallet))
	return subcommands.ExitSuccess
}

type historyCmd struct {
	app   *App
	limit int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list recent purchases" }
func (*historyCmd) Usage() string {
	return `investctl [-account <id>] history [-limit N]
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 20, "maximum number of purchases")
}

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := c.app.accountID()
	if err != nil {
		return c.app.fail(err)
	}
	purchases, err := c.app.client().ListPurchases(ctx, id, c.limit)
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printMarkdown(purchasesMarkdown(purchases))
	return subcommands.ExitSuccess
}
