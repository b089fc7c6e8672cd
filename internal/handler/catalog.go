package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/InvestSim_Go/internal/catalog"
	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/logger"
)

// HandleGetCatalog returns the priced catalog, cheapest first within each kind
// @Summary Get catalog
// @Description Crypto and stock quotes sorted by ascending unit price. Optional kind filter.
// @Tags catalog
// @Produce json
// @Param kind query string false "crypto or stock"
// @Success 200 {object} domain.Catalog
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/catalog [get]
func HandleGetCatalog(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var kind domain.AssetKind
		if raw := r.URL.Query().Get("kind"); raw != "" {
			k, err := domain.ParseAssetKind(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidKind)
				return
			}
			kind = k
		}

		c, err := svc.GetCatalog(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get catalog", err)
			return
		}

		out := *c
		switch kind {
		case domain.KindCrypto:
			out.Stocks = []domain.Asset{}
		case domain.KindStock:
			out.Cryptos = []domain.Asset{}
		}

		logger.FromContext(r.Context()).Debug("Catalog served", "cryptos", len(out.Cryptos), "stocks", len(out.Stocks))
		respondJSON(w, http.StatusOK, out)
	}
}

// HandleGetAsset returns a single quote
// @Summary Get asset
// @Tags catalog
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} domain.Asset
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/catalog/{symbol} [get]
func HandleGetAsset(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asset, err := svc.Lookup(r.Context(), chi.URLParam(r, "symbol"))
		if err != nil {
			respondServiceError(w, r, "Get asset", err)
			return
		}
		respondJSON(w, http.StatusOK, asset)
	}
}
