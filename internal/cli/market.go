package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/format"
	"github.com/osse101/InvestSim_Go/internal/handler"
)

// catalogCmd lists the quotes on offer
type catalogCmd struct {
	app  *App
	kind string
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list crypto and stock quotes, cheapest first" }
func (*catalogCmd) Usage() string {
	return `investctl catalog [-kind crypto|stock]

  Lists the current catalog.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "only list one kind: crypto or stock")
}

func (c *catalogCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var kind domain.AssetKind
	if c.kind != "" {
		k, err := domain.ParseAssetKind(c.kind)
		if err != nil {
			fmt.Fprintf(c.app.Err, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		kind = k
	}

	catalog, err := c.app.client().GetCatalog(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printMarkdown(catalogMarkdown(catalog, kind))
	return subcommands.ExitSuccess
}

// quoteCmd shows one asset
type quoteCmd struct {
	app *App
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show the quote for one symbol" }
func (*quoteCmd) Usage() string {
	return `investctl quote <symbol>
`
}

func (*quoteCmd) SetFlags(*flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(c.app.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	asset, err := c.app.client().GetAsset(ctx, f.Arg(0))
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printMarkdown(assetMarkdown(asset))
	return subcommands.ExitSuccess
}

// affordCmd asks the server how much of one asset fits the invest value
type affordCmd struct {
	app      *App
	invest   decimalFlag
	subtotal decimalFlag
	held     decimalFlag
}

func (*affordCmd) Name() string     { return "afford" }
func (*affordCmd) Synopsis() string { return "compute purchasability and maximum quantity for one symbol" }
func (*affordCmd) Usage() string {
	return `investctl afford -invest <amount> [-subtotal <amount>] [-held <qty>] <symbol>

  -held is the quantity of this symbol already counted in -subtotal.
`
}

func (c *affordCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.invest, "invest", "amount to invest")
	f.Var(&c.subtotal, "subtotal", "cost of what is already selected")
	f.Var(&c.held, "held", "quantity of this symbol already selected")
}

func (c *affordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(c.app.Err, c.Usage())
		return subcommands.ExitUsageError
	}

	res, err := c.app.client().Affordability(ctx, handler.AffordabilityRequest{
		InvestValue:     c.invest.value,
		Subtotal:        c.subtotal.value,
		CurrentQuantity: c.held.value,
		Symbol:          domain.NormalizeSymbol(f.Arg(0)),
	})
	if err != nil {
		return c.app.fail(err)
	}

	verdict := "not purchasable"
	if res.Purchasable {
		verdict = "purchasable"
	}
	c.app.printMarkdown(fmt.Sprintf("# %s\n\n- **Price:** %s\n- **Status:** %s\n- **Max quantity:** %s\n- **Headroom:** %s\n",
		res.Symbol, format.USD(res.UnitPrice), verdict, format.Quantity(res.MaxQuantity, res.Kind), format.USD(decimal.Max(res.Headroom, decimal.Zero))))
	return subcommands.ExitSuccess
}

// previewCmd has the server clamp and annotate a selection without buying
type previewCmd struct {
	app    *App
	invest decimalFlag
	crypto quantityFlag
	stocks quantityFlag
}

func (*previewCmd) Name() string     { return "preview" }
func (*previewCmd) Synopsis() string { return "preview a selection as the server would clamp it" }
func (*previewCmd) Usage() string {
	return `investctl preview -invest <amount> [-crypto SYM=QTY]... [-stock SYM=QTY]...

  Uses the -account balance when set.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) {
	c.crypto, c.stocks = quantityFlag{}, quantityFlag{}
	f.Var(&c.invest, "invest", "amount to invest")
	f.Var(c.crypto, "crypto", "crypto quantity as SYM=QTY, repeatable")
	f.Var(c.stocks, "stock", "stock quantity as SYM=QTY, repeatable")
}

func (c *previewCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req := handler.SelectionPreviewRequest{
		AccountID:   c.app.Account,
		InvestValue: c.invest.value,
		Crypto:      c.crypto,
		Stocks:      c.stocks,
	}
	if req.AccountID == "" {
		// Without an account the preview is bounded by the invest value alone
		balance := c.invest.value
		req.Balance = &balance
	}

	resp, err := c.app.client().PreviewSelection(ctx, req)
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printMarkdown(previewMarkdown(resp))
	return subcommands.ExitSuccess
}
