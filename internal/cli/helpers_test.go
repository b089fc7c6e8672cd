package cli

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InvestSim_Go/internal/client"
	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/handler"
)

var testAccount = uuid.MustParse("6f1c1c2e-4a4b-4d8e-9a51-2d7f2c0b9e11")

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Cryptos: []domain.Asset{
			{Symbol: "ETH", Name: "Ethereum", Kind: domain.KindCrypto, UnitPrice: dec("10")},
			{Symbol: "BTC", Name: "Bitcoin", Kind: domain.KindCrypto, UnitPrice: dec("100")},
		},
		Stocks: []domain.Asset{
			{Symbol: "F", Name: "Ford", Kind: domain.KindStock, UnitPrice: dec("12.5")},
			{Symbol: "AAPL", Name: "Apple", Kind: domain.KindStock, UnitPrice: dec("200")},
		},
	}
}

// fakeAPI records calls and answers from fixed data
type fakeAPI struct {
	catalog   domain.Catalog
	balance   decimal.Decimal
	err       error
	submitErr error
	walletErr error

	calls     []string

	submitted []domain.PurchaseRequest
	reloads   int
	previews  []handler.SelectionPreviewRequest
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{catalog: testCatalog(), balance: dec("1000")}
}

func (f *fakeAPI) GetCatalog(context.Context) (domain.Catalog, error) { return f.catalog, f.err }

func (f *fakeAPI) GetAsset(_ context.Context, symbol string) (domain.Asset, error) {
	a, ok := f.catalog.Find(symbol)
	if !ok {
		return domain.Asset{}, &client.APIError{StatusCode: 404, Message: "Asset not found"}
	}
	return a, f.err
}

func (f *fakeAPI) CreateAccount(_ context.Context, name string) (domain.Account, error) {
	return domain.Account{ID: testAccount, Name: name, Balance: f.balance}, f.err
}

func (f *fakeAPI) GetBalance(_ context.Context, id uuid.UUID) (handler.BalanceResponse, error) {
	return handler.BalanceResponse{AccountID: id, Balance: f.balance}, f.err
}

func (f *fakeAPI) GetWallet(_ context.Context, id uuid.UUID) (domain.Wallet, error) {
	f.calls = append(f.calls, "wallet")
	if f.walletErr != nil {
		return domain.Wallet{}, f.walletErr
	}
	return domain.NewWallet(id, []domain.WalletEntry{
		{Symbol: "BTC", Kind: domain.KindCrypto, UnitValue: dec("100"), Quantity: dec("1.5")},
	}), f.err
}

func (f *fakeAPI) ListPurchases(context.Context, uuid.UUID, int) ([]domain.Purchase, error) {
	return nil, f.err
}

func (f *fakeAPI) SubmitPurchase(_ context.Context, _ uuid.UUID, req domain.PurchaseRequest) (domain.PurchaseReceipt, error) {
	f.calls = append(f.calls, "submit")
	f.submitted = append(f.submitted, req)
	if f.submitErr != nil {
		return domain.PurchaseReceipt{}, f.submitErr
	}
	subtotal := decimal.Zero
	prices := f.catalog.Prices()
	for sym, q := range req.Crypto {
		subtotal = subtotal.Add(prices[sym].Mul(q))
	}
	for sym, q := range req.Stocks {
		subtotal = subtotal.Add(prices[sym].Mul(q))
	}
	f.balance = f.balance.Sub(subtotal)
	return domain.PurchaseReceipt{
		Purchase: domain.Purchase{ID: uuid.New(), AccountID: testAccount, InvestValue: req.InvestValue, Subtotal: subtotal},
		Balance:  f.balance,
	}, nil
}

func (f *fakeAPI) Affordability(_ context.Context, req handler.AffordabilityRequest) (handler.AffordabilityResponse, error) {
	a, _ := f.catalog.Find(req.Symbol)
	return handler.AffordabilityResponse{Symbol: a.Symbol, Kind: a.Kind, UnitPrice: a.UnitPrice}, f.err
}

func (f *fakeAPI) PreviewSelection(_ context.Context, req handler.SelectionPreviewRequest) (handler.SelectionPreviewResponse, error) {
	f.previews = append(f.previews, req)
	return handler.SelectionPreviewResponse{InvestValue: req.InvestValue}, f.err
}

func (f *fakeAPI) ReloadCatalog(context.Context) (domain.Catalog, error) {
	f.reloads++
	return f.catalog, f.err
}

func (f *fakeAPI) GetVersion(context.Context) (handler.VersionInfo, error) {
	return handler.VersionInfo{Version: "1.2.3", GoVersion: "go1.24"}, f.err
}

func (f *fakeAPI) Watch(_ context.Context, _ []string, handle client.StreamHandler) error {
	return handle(client.StreamEvent{Type: "purchase.completed", Payload: []byte(`{"subtotal":"10"}`)})
}

type testApp struct {
	*App
	api *fakeAPI
	out *bytes.Buffer
	err *bytes.Buffer
}

func newTestApp(input string) *testApp {
	api := newFakeAPI()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	app := &App{
		Out:    out,
		Err:    errOut,
		In:     strings.NewReader(input),
		newAPI: func(string, string) API { return api },
	}
	return &testApp{App: app, api: api, out: out, err: errOut}
}

// execute runs cmd through a commander with plain output and the test account
func (ta *testApp) execute(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	global := []string{"-plain", "-account", testAccount.String(), cmd.Name()}
	return ta.executeRaw(t, cmd, append(global, args...)...)
}

func (ta *testApp) executeRaw(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet("investctl", flag.ContinueOnError)
	ta.SetFlags(fs)
	cdr := subcommands.NewCommander(fs, "investctl")
	cdr.Register(cmd, "")
	require.NoError(t, fs.Parse(args))
	return cdr.Execute(context.Background())
}
