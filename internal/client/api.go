package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/handler"
)

// GetCatalog fetches both asset lists
func (c *APIClient) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	var catalog domain.Catalog
	err := c.do(ctx, http.MethodGet, apiPrefix+"/catalog", nil, &catalog)
	return catalog, err
}

// GetAsset fetches a single quote
func (c *APIClient) GetAsset(ctx context.Context, symbol string) (domain.Asset, error) {
	var asset domain.Asset
	err := c.do(ctx, http.MethodGet, apiPrefix+"/catalog/"+url.PathEscape(symbol), nil, &asset)
	return asset, err
}

// CreateAccount opens an account with the starting balance
func (c *APIClient) CreateAccount(ctx context.Context, name string) (domain.Account, error) {
	var account domain.Account
	err := c.do(ctx, http.MethodPost, apiPrefix+"/accounts", handler.CreateAccountRequest{Name: name}, &account)
	return account, err
}

// GetBalance fetches an account's cash balance
func (c *APIClient) GetBalance(ctx context.Context, accountID uuid.UUID) (handler.BalanceResponse, error) {
	var balance handler.BalanceResponse
	err := c.do(ctx, http.MethodGet, accountPath(accountID, "balance"), nil, &balance)
	return balance, err
}

// GetWallet fetches an account's holdings
func (c *APIClient) GetWallet(ctx context.Context, accountID uuid.UUID) (domain.Wallet, error) {
	var wallet domain.Wallet
	err := c.do(ctx, http.MethodGet, accountPath(accountID, "wallet"), nil, &wallet)
	return wallet, err
}

// ListPurchases fetches the most recent purchases, newest first
func (c *APIClient) ListPurchases(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Purchase, error) {
	path := accountPath(accountID, "purchases")
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}
	var purchases []domain.Purchase
	err := c.do(ctx, http.MethodGet, path, nil, &purchases)
	return purchases, err
}

// SubmitPurchase buys the selection
func (c *APIClient) SubmitPurchase(ctx context.Context, accountID uuid.UUID, req domain.PurchaseRequest) (domain.PurchaseReceipt, error) {
	var receipt domain.PurchaseReceipt
	body := handler.SubmitPurchaseRequest{
		InvestValue: req.InvestValue,
		Crypto:      req.Crypto,
		Stocks:      req.Stocks,
	}
	err := c.do(ctx, http.MethodPost, accountPath(accountID, "purchases"), body, &receipt)
	return receipt, err
}

// Affordability asks the server for a single asset's purchasability
func (c *APIClient) Affordability(ctx context.Context, req handler.AffordabilityRequest) (handler.AffordabilityResponse, error) {
	var resp handler.AffordabilityResponse
	err := c.do(ctx, http.MethodPost, apiPrefix+"/affordability", req, &resp)
	return resp, err
}

// PreviewSelection asks the server to clamp and annotate a selection
func (c *APIClient) PreviewSelection(ctx context.Context, req handler.SelectionPreviewRequest) (handler.SelectionPreviewResponse, error) {
	var resp handler.SelectionPreviewResponse
	err := c.do(ctx, http.MethodPost, apiPrefix+"/selection/preview", req, &resp)
	return resp, err
}

// ReloadCatalog drops the server's cached catalog and fetches a fresh one
func (c *APIClient) ReloadCatalog(ctx context.Context) (domain.Catalog, error) {
	var resp handler.CatalogReloadResponse
	err := c.do(ctx, http.MethodPost, apiPrefix+"/admin/catalog/reload", nil, &resp)
	return resp.Catalog, err
}

// GetVersion fetches the server build information
func (c *APIClient) GetVersion(ctx context.Context) (handler.VersionInfo, error) {
	var info handler.VersionInfo
	err := c.do(ctx, http.MethodGet, "/version", nil, &info)
	return info, err
}

func accountPath(id uuid.UUID, resource string) string {
	return fmt.Sprintf("%s/accounts/%s/%s", apiPrefix, id, resource)
}
