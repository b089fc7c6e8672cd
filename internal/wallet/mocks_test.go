package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/repository"
)

// MockRepository implements repository.Wallet for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateAccount(ctx context.Context, name string, balance decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, name, balance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRepository) GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRepository) GetWalletEntries(ctx context.Context, accountID uuid.UUID) ([]domain.WalletEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WalletEntry), args.Error(1)
}

func (m *MockRepository) ListPurchases(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Purchase, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.WalletTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.WalletTx), args.Error(1)
}

// MockTx implements repository.WalletTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetAccountForUpdate(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockTx) GetWalletEntriesForUpdate(ctx context.Context, accountID uuid.UUID) ([]domain.WalletEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WalletEntry), args.Error(1)
}

func (m *MockTx) UpsertWalletEntry(ctx context.Context, accountID uuid.UUID, entry domain.WalletEntry) error {
	return m.Called(ctx, accountID, entry).Error(0)
}

func (m *MockTx) UpdateBalance(ctx context.Context, accountID uuid.UUID, balance decimal.Decimal) error {
	return m.Called(ctx, accountID, balance).Error(0)
}

func (m *MockTx) InsertPurchase(ctx context.Context, purchase domain.Purchase) error {
	return m.Called(ctx, purchase).Error(0)
}

// stubCatalog serves a fixed catalog or error
type stubCatalog struct {
	catalog *domain.Catalog
	err     error
}

func (s stubCatalog) GetCatalog(context.Context) (*domain.Catalog, error) {
	return s.catalog, s.err
}
