package handler

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_PurchaseRequest(t *testing.T) {
	tests := []struct {
		name   string
		req    SubmitPurchaseRequest
		fields []string
	}{
		{
			name: "valid",
			req: SubmitPurchaseRequest{
				InvestValue: dec("100"),
				Crypto:      map[string]decimal.Decimal{"BTC": dec("0.001")},
				Stocks:      map[string]decimal.Decimal{"brk.b": dec("0")},
			},
		},
		{
			name:   "zero invest value",
			req:    SubmitPurchaseRequest{InvestValue: decimal.Zero},
			fields: []string{"invest_value"},
		},
		{
			name: "negative quantity",
			req: SubmitPurchaseRequest{
				InvestValue: dec("1"),
				Crypto:      map[string]decimal.Decimal{"BTC": dec("-1")},
			},
			fields: []string{"crypto[BTC]"},
		},
		{
			name: "bad symbol",
			req: SubmitPurchaseRequest{
				InvestValue: dec("1"),
				Stocks:      map[string]decimal.Decimal{"not a symbol": dec("1")},
			},
			fields: []string{"stocks[not a symbol]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().ValidateStruct(tt.req)
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			errs := FormatValidationError(err)
			assert.Len(t, errs, len(tt.fields))
		})
	}
}

func TestValidator_AffordabilityKind(t *testing.T) {
	err := GetValidator().ValidateStruct(AffordabilityRequest{Kind: "bond"})
	require.Error(t, err)
	assert.Equal(t, "Must be crypto or stock", FormatValidationError(err)["kind"])

	assert.NoError(t, GetValidator().ValidateStruct(AffordabilityRequest{Kind: "Stock"}))
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
