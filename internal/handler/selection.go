package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/catalog"
	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/selection"
	"github.com/osse101/InvestSim_Go/internal/wallet"
)

// SelectionPreviewRequest is a selection to evaluate against the catalog.
// The balance comes from account_id when given, otherwise from balance.
type SelectionPreviewRequest struct {
	AccountID   string                     `json:"account_id,omitempty" validate:"omitempty,uuid"`
	Balance     *decimal.Decimal           `json:"balance,omitempty"`
	InvestValue decimal.Decimal            `json:"invest_value" validate:"decimal_gte0"`
	Crypto      map[string]decimal.Decimal `json:"crypto" validate:"dive,keys,symbol,endkeys,decimal_gte0"`
	Stocks      map[string]decimal.Decimal `json:"stocks" validate:"dive,keys,symbol,endkeys,decimal_gte0"`
}

// SelectionPreviewResponse is the selection after clamping, with every catalog row annotated
type SelectionPreviewResponse struct {
	Balance     decimal.Decimal            `json:"balance"`
	InvestValue decimal.Decimal            `json:"invest_value"`
	Subtotal    decimal.Decimal            `json:"subtotal"`
	Crypto      map[string]decimal.Decimal `json:"crypto"`
	Stocks      map[string]decimal.Decimal `json:"stocks"`
	CryptoRows  []selection.Row            `json:"crypto_rows"`
	StockRows   []selection.Row            `json:"stock_rows"`
}

// HandleSelectionPreview replays a selection the way an interactive client would:
// the invest value is clamped to the balance and each quantity to its maximum.
// @Summary Preview a selection
// @Tags selection
// @Accept json
// @Produce json
// @Param request body SelectionPreviewRequest true "Selection"
// @Success 200 {object} SelectionPreviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/selection/preview [post]
func HandleSelectionPreview(catalogSvc catalog.Service, walletSvc wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectionPreviewRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Selection preview"); err != nil {
			return
		}

		var balance decimal.Decimal
		switch {
		case req.AccountID != "":
			id := uuid.MustParse(req.AccountID)
			b, err := walletSvc.GetBalance(r.Context(), id)
			if err != nil {
				respondServiceError(w, r, "Selection preview", err)
				return
			}
			balance = b
		case req.Balance != nil && !req.Balance.IsNegative():
			balance = *req.Balance
		default:
			respondError(w, http.StatusBadRequest, ErrMsgBalanceOrAccount)
			return
		}

		c, err := catalogSvc.GetCatalog(r.Context())
		if err != nil {
			respondServiceError(w, r, "Selection preview", err)
			return
		}

		session := selection.NewSession(balance, *c)
		if err := session.Apply(domain.PurchaseRequest{
			InvestValue: req.InvestValue,
			Crypto:      req.Crypto,
			Stocks:      req.Stocks,
		}); err != nil {
			respondServiceError(w, r, "Selection preview", err)
			return
		}

		applied := session.Request()
		respondJSON(w, http.StatusOK, SelectionPreviewResponse{
			Balance:     session.Balance(),
			InvestValue: applied.InvestValue,
			Subtotal:    session.Subtotal(),
			Crypto:      applied.Crypto,
			Stocks:      applied.Stocks,
			CryptoRows:  session.Rows(domain.KindCrypto),
			StockRows:   session.Rows(domain.KindStock),
		})
	}
}
