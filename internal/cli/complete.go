package cli

import (
	"context"
	"strings"
	"time"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

const completionTimeout = 2 * time.Second

// Completion describes the command line for shell completion. Symbol
// arguments are predicted from the live catalog when the server answers.
func Completion(a *App) *complete.Command {
	crypto := a.predictSymbols(domain.KindCrypto, "=")
	stocks := a.predictSymbols(domain.KindStock, "=")
	symbols := a.predictSymbols("", "")
	selectionFlags := map[string]complete.Predictor{
		"invest": predict.Something,
		"crypto": crypto,
		"stock":  stocks,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"server":  predict.Something,
			"api-key": predict.Something,
			"account": predict.Something,
			"plain":   predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"catalog": {Flags: map[string]complete.Predictor{"kind": predict.Set{string(domain.KindCrypto), string(domain.KindStock)}}},
			"quote":   {Args: symbols},
			"afford": {
				Args: symbols,
				Flags: map[string]complete.Predictor{
					"invest":   predict.Something,
					"subtotal": predict.Something,
					"held":     predict.Something,
				},
			},
			"preview":      {Flags: selectionFlags},
			"open-account": {Flags: map[string]complete.Predictor{"name": predict.Something}},
			"balance":      {},
			"wallet":       {},
			"history":      {Flags: map[string]complete.Predictor{"limit": predict.Something}},
			"buy": {Flags: map[string]complete.Predictor{
				"invest":  predict.Something,
				"crypto":  crypto,
				"stock":   stocks,
				"dry-run": predict.Nothing,
				"yes":     predict.Nothing,
			}},
			"reload": {Flags: map[string]complete.Predictor{"yes": predict.Nothing}},
			"watch": {Flags: map[string]complete.Predictor{"types": predict.Set{
				"catalog.refreshed", "purchase.completed", "account.created",
			}}},
			"version":  {},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}

// predictSymbols lists catalog symbols of a kind (both kinds when empty),
// each followed by suffix
func (a *App) predictSymbols(kind domain.AssetKind, suffix string) complete.PredictFunc {
	return func(prefix string) []string {
		ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
		defer cancel()

		catalog, err := a.client().GetCatalog(ctx)
		if err != nil {
			return nil
		}

		var out []string
		for _, k := range kinds {
			if kind != "" && k != kind {
				continue
			}
			for _, asset := range catalog.Assets(k) {
				if strings.HasPrefix(asset.Symbol, strings.ToUpper(prefix)) {
					out = append(out, asset.Symbol+suffix)
				}
			}
		}
		return out
	}
}
