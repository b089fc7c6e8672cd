package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/logger"
	"github.com/osse101/InvestSim_Go/internal/wallet"
)

// CreateAccountRequest opens an account with the configured starting balance
type CreateAccountRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// BalanceResponse is an account's cash balance
type BalanceResponse struct {
	AccountID uuid.UUID       `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// SubmitPurchaseRequest is the selection to buy
type SubmitPurchaseRequest struct {
	InvestValue decimal.Decimal            `json:"invest_value" validate:"decimal_gt0"`
	Crypto      map[string]decimal.Decimal `json:"crypto" validate:"dive,keys,symbol,endkeys,decimal_gte0"`
	Stocks      map[string]decimal.Decimal `json:"stocks" validate:"dive,keys,symbol,endkeys,decimal_gte0"`
}

// AccountHandler serves account, wallet and purchase routes
type AccountHandler struct {
	svc wallet.Service
}

// NewAccountHandler creates an account handler
func NewAccountHandler(svc wallet.Service) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// HandleCreateAccount opens a new account
// @Summary Open account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account name"
// @Success 201 {object} domain.Account
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/accounts [post]
func (h *AccountHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create account"); err != nil {
		return
	}

	account, err := h.svc.CreateAccount(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, "Create account", err)
		return
	}
	respondJSON(w, http.StatusCreated, account)
}

// HandleGetBalance returns the account's cash balance
// @Summary Get balance
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/balance [get]
func (h *AccountHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	balance, err := h.svc.GetBalance(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get balance", err)
		return
	}
	respondJSON(w, http.StatusOK, BalanceResponse{AccountID: id, Balance: balance})
}

// HandleGetWallet returns the account's holdings and their total cost basis
// @Summary Get wallet
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} domain.Wallet
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/wallet [get]
func (h *AccountHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	id, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	wlt, err := h.svc.GetWallet(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get wallet", err)
		return
	}
	respondJSON(w, http.StatusOK, wlt)
}

// HandleListPurchases returns the account's purchases, newest first
// @Summary List purchases
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Param limit query int false "Maximum number of purchases"
// @Success 200 {array} domain.Purchase
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/purchases [get]
func (h *AccountHandler) HandleListPurchases(w http.ResponseWriter, r *http.Request) {
	id, ok := accountIDParam(w, r)
	if !ok {
		return
	}
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	purchases, err := h.svc.ListPurchases(r.Context(), id, limit)
	if err != nil {
		respondServiceError(w, r, "List purchases", err)
		return
	}
	if purchases == nil {
		purchases = []domain.Purchase{}
	}
	respondJSON(w, http.StatusOK, purchases)
}

// HandleSubmitPurchase buys the selection at current catalog prices
// @Summary Submit purchase
// @Description Debits the subtotal from the balance and adds every line to the wallet. Nothing is persisted on failure.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body SubmitPurchaseRequest true "Selection"
// @Success 201 {object} domain.PurchaseReceipt
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/purchases [post]
func (h *AccountHandler) HandleSubmitPurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	var req SubmitPurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit purchase"); err != nil {
		return
	}

	receipt, err := h.svc.SubmitPurchase(r.Context(), id, domain.PurchaseRequest{
		InvestValue: req.InvestValue,
		Crypto:      req.Crypto,
		Stocks:      req.Stocks,
	})
	if err != nil {
		respondServiceError(w, r, "Submit purchase", err)
		return
	}

	logger.FromContext(r.Context()).Info("Purchase submitted",
		"account_id", id, "purchase_id", receipt.Purchase.ID, "subtotal", receipt.Purchase.Subtotal)
	respondJSON(w, http.StatusCreated, receipt)
}
