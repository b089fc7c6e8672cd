package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

// Wallet defines the interface for account, holding and purchase persistence
type Wallet interface {
	CreateAccount(ctx context.Context, name string, balance decimal.Decimal) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	GetWalletEntries(ctx context.Context, accountID uuid.UUID) ([]domain.WalletEntry, error)
	ListPurchases(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Purchase, error)
	BeginTx(ctx context.Context) (WalletTx, error)
}

// WalletTx is the unit of work for a purchase. Reads lock the rows they return.
type WalletTx interface {
	Tx
	GetAccountForUpdate(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	GetWalletEntriesForUpdate(ctx context.Context, accountID uuid.UUID) ([]domain.WalletEntry, error)
	UpsertWalletEntry(ctx context.Context, accountID uuid.UUID, entry domain.WalletEntry) error
	UpdateBalance(ctx context.Context, accountID uuid.UUID, balance decimal.Decimal) error
	InsertPurchase(ctx context.Context, purchase domain.Purchase) error
}
