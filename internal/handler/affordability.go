package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/affordability"
	"github.com/osse101/InvestSim_Go/internal/catalog"
	"github.com/osse101/InvestSim_Go/internal/domain"
)

// AffordabilityRequest asks how much of one asset can still be selected.
// The asset is either looked up by symbol or described by unit_price and kind.
type AffordabilityRequest struct {
	InvestValue     decimal.Decimal `json:"invest_value" validate:"decimal_gte0"`
	Subtotal        decimal.Decimal `json:"subtotal" validate:"decimal_gte0"`
	CurrentQuantity decimal.Decimal `json:"current_quantity" validate:"decimal_gte0"`
	Symbol          string          `json:"symbol,omitempty" validate:"omitempty,symbol"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Kind            string          `json:"kind,omitempty" validate:"asset_kind"`
}

// AffordabilityResponse is the computation result with the asset it was made for
type AffordabilityResponse struct {
	Symbol    string           `json:"symbol,omitempty"`
	Kind      domain.AssetKind `json:"kind"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	affordability.Result
}

// HandleAffordability computes purchasability and the maximum quantity for one asset
// @Summary Compute affordability
// @Description Purchasable flag and maximum selectable quantity given the invest value and current subtotal
// @Tags selection
// @Accept json
// @Produce json
// @Param request body AffordabilityRequest true "Computation inputs"
// @Success 200 {object} AffordabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/affordability [post]
func HandleAffordability(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AffordabilityRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Affordability"); err != nil {
			return
		}

		var asset domain.Asset
		switch {
		case req.Symbol != "":
			a, err := svc.Lookup(r.Context(), req.Symbol)
			if err != nil {
				respondServiceError(w, r, "Affordability", err)
				return
			}
			asset = a
		case req.Kind != "":
			kind, _ := domain.ParseAssetKind(req.Kind)
			asset = domain.Asset{Kind: kind, UnitPrice: req.UnitPrice}
		default:
			respondError(w, http.StatusBadRequest, ErrMsgPriceOrSymbol)
			return
		}

		respondJSON(w, http.StatusOK, AffordabilityResponse{
			Symbol:    asset.Symbol,
			Kind:      asset.Kind,
			UnitPrice: asset.UnitPrice,
			Result:    affordability.ComputeFor(asset, req.InvestValue, req.Subtotal, req.CurrentQuantity),
		})
	}
}
