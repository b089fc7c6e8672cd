package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/format"
	"github.com/osse101/InvestSim_Go/internal/selection"
)

// buyCmd assembles a selection against the live catalog and submits it
type buyCmd struct {
	app    *App
	invest decimalFlag
	crypto quantityFlag
	stocks quantityFlag
	dryRun bool
	yes    bool

	catalog domain.Catalog
	// session survives a failed submission so the caller can inspect or retry it
	session *selection.Session
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "select quantities and purchase them" }
func (*buyCmd) Usage() string {
	return `investctl [-account <id>] buy -invest <amount> [-crypto SYM=QTY]... [-stock SYM=QTY]... [-dry-run] [-yes]

  The invest value is clamped to the balance. Each quantity is clamped to the
  maximum the remaining invest value allows, in the order given by symbol.
  Stock quantities are whole shares.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	c.crypto, c.stocks = quantityFlag{}, quantityFlag{}
	f.Var(&c.invest, "invest", "amount to invest")
	f.Var(c.crypto, "crypto", "crypto quantity as SYM=QTY, repeatable")
	f.Var(c.stocks, "stock", "stock quantity as SYM=QTY, repeatable")
	f.BoolVar(&c.dryRun, "dry-run", false, "show the clamped selection without buying")
	f.BoolVar(&c.yes, "yes", false, "do not ask for confirmation")
}

func (c *buyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := c.app.accountID()
	if err != nil {
		return c.app.fail(err)
	}
	api := c.app.client()

	balance, err := api.GetBalance(ctx, id)
	if err != nil {
		return c.app.fail(err)
	}
	catalog, err := api.GetCatalog(ctx)
	if err != nil {
		return c.app.fail(err)
	}

	c.catalog = catalog
	c.session = selection.NewSession(balance.Balance, catalog)
	if got := c.session.SetInvestValue(c.invest.value); !got.Equal(c.invest.value) {
		fmt.Fprintf(c.app.Err, "Invest value clamped to %s\n", format.USD(got))
	}

	for _, sel := range []quantityFlag{c.crypto, c.stocks} {
		if err := c.selectAll(sel); err != nil {
			return c.app.fail(err)
		}
	}

	c.app.printMarkdown(rowsMarkdown(c.session, true))

	if c.session.Empty() {
		fmt.Fprintln(c.app.Err, "Error: nothing selected")
		return subcommands.ExitUsageError
	}
	if c.dryRun {
		return subcommands.ExitSuccess
	}
	if !c.yes && !c.app.confirm(fmt.Sprintf("Buy for %s?", format.USD(c.session.Subtotal()))) {
		fmt.Fprintln(c.app.Out, "Cancelled.")
		return subcommands.ExitSuccess
	}

	receipt, err := api.SubmitPurchase(ctx, id, c.session.Request())
	if err != nil {
		slog.Error("Purchase failed", "account_id", id, "error", err)
		fmt.Fprintf(c.app.Err, "Error: %v\nSelection kept, nothing was bought.\n", err)
		return subcommands.ExitFailure
	}

	c.session.Reset()
	c.session.UpdateBalance(receipt.Balance)
	c.app.printMarkdown(receiptMarkdown(receipt))

	// The purchase is committed; a failed refresh only leaves the wallet view stale
	wallet, err := api.GetWallet(ctx, id)
	if err != nil {
		slog.Error("Wallet refresh failed", "account_id", id, "error", err)
		fmt.Fprintf(c.app.Err, "Error: purchase completed but the wallet could not be refreshed: %v\n", err)
		return subcommands.ExitFailure
	}
	c.app.printMarkdown(walletMarkdown(wallet))
	return subcommands.ExitSuccess
}

// selectAll applies quantities in symbol order, reporting clamps and skips
func (c *buyCmd) selectAll(sel quantityFlag) error {
	symbols := make([]string, 0, len(sel))
	for sym := range sel {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	for _, sym := range symbols {
		want := sel[sym]
		got, err := c.session.SetQuantity(sym, want)
		switch {
		case errors.Is(err, domain.ErrNotPurchasable):
			fmt.Fprintf(c.app.Err, "Skipped %s: not purchasable with the remaining invest value\n", sym)
		case err != nil:
			return err
		case !got.Equal(want):
			asset, _ := c.catalog.Find(sym)
			fmt.Fprintf(c.app.Err, "Clamped %s from %s to %s\n", sym, want, format.Quantity(got, asset.Kind))
		}
	}
	return nil
}

// Selected exposes the quantities still held by the last run
func (c *buyCmd) Selected() map[string]decimal.Decimal {
	if c.session == nil {
		return nil
	}
	req := c.session.Request()
	out := make(map[string]decimal.Decimal, len(req.Crypto)+len(req.Stocks))
	for k, v := range req.Crypto {
		out[k] = v
	}
	for k, v := range req.Stocks {
		out[k] = v
	}
	return out
}
