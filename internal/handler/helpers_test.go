package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Cryptos: []domain.Asset{
			{Symbol: "DOGE", Name: "Dogecoin", Kind: domain.KindCrypto, UnitPrice: dec("0.25")},
			{Symbol: "BTC", Name: "Bitcoin", Kind: domain.KindCrypto, UnitPrice: dec("50000")},
		},
		Stocks: []domain.Asset{
			{Symbol: "F", Name: "Ford", Kind: domain.KindStock, UnitPrice: dec("25")},
			{Symbol: "AAPL", Name: "Apple", Kind: domain.KindStock, UnitPrice: dec("190")},
		},
	}
}

// newRequest builds a request with optional JSON body and chi URL params
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
