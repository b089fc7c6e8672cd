package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/affordability"
	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/event"
	"github.com/osse101/InvestSim_Go/internal/logger"
	"github.com/osse101/InvestSim_Go/internal/metrics"
	"github.com/osse101/InvestSim_Go/internal/repository"
)

// Service defines the interface for account and purchase operations
type Service interface {
	CreateAccount(ctx context.Context, name string) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
	GetWallet(ctx context.Context, accountID uuid.UUID) (*domain.Wallet, error)
	ListPurchases(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Purchase, error)
	SubmitPurchase(ctx context.Context, accountID uuid.UUID, req domain.PurchaseRequest) (*domain.PurchaseReceipt, error)
	Shutdown(ctx context.Context) error
}

// CatalogReader supplies the prices purchases are made at
type CatalogReader interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
}

type service struct {
	repo           repository.Wallet
	catalog        CatalogReader
	bus            event.Bus
	initialBalance decimal.Decimal
	now            func() time.Time
	wg             sync.WaitGroup
}

// NewService creates a new wallet service. bus may be nil.
func NewService(repo repository.Wallet, catalog CatalogReader, bus event.Bus, initialBalance decimal.Decimal) Service {
	return &service{
		repo:           repo,
		catalog:        catalog,
		bus:            bus,
		initialBalance: initialBalance,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) CreateAccount(ctx context.Context, name string) (*domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultAccountName
	}
	if len(name) > MaxAccountNameLen {
		return nil, fmt.Errorf("%w: name longer than %d characters", domain.ErrInvalidInput, MaxAccountNameLen)
	}

	account, err := s.repo.CreateAccount(ctx, name, s.initialBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgAccountCreated, "account_id", account.ID, "balance", account.Balance)
	s.publish(ctx, event.NewAccountCreatedEvent(*account))
	return account, nil
}

func (s *service) GetBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *service) GetWallet(ctx context.Context, accountID uuid.UUID) (*domain.Wallet, error) {
	if _, err := s.repo.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	entries, err := s.repo.GetWalletEntries(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	w := domain.NewWallet(accountID, entries)
	return &w, nil
}

func (s *service) ListPurchases(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Purchase, error) {
	if _, err := s.repo.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.ListPurchases(ctx, accountID, limit)
}

// SubmitPurchase prices the request against the current catalog and commits it
// atomically. Any failure leaves the balance, wallet and purchase history untouched.
func (s *service) SubmitPurchase(ctx context.Context, accountID uuid.UUID, req domain.PurchaseRequest) (*domain.PurchaseReceipt, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSubmitPurchase, "account_id", accountID, "invest_value", req.InvestValue)

	receipt, err := s.submitPurchase(ctx, accountID, req)
	if err != nil {
		reason := rejectionReason(err)
		metrics.PurchasesRejected.WithLabelValues(reason).Inc()
		log.Warn(LogMsgPurchaseRejected, "account_id", accountID, "reason", reason, "error", err)
		return nil, err
	}

	for _, line := range receipt.Purchase.Lines {
		metrics.PurchaseLines.WithLabelValues(string(line.Kind), line.Symbol).Inc()
	}
	log.Info(LogMsgPurchaseCommitted,
		"account_id", accountID,
		"purchase_id", receipt.Purchase.ID,
		"subtotal", receipt.Purchase.Subtotal,
		"balance", receipt.Balance)
	s.publish(ctx, event.NewPurchaseCompletedEvent(*receipt))
	return receipt, nil
}

func (s *service) submitPurchase(ctx context.Context, accountID uuid.UUID, req domain.PurchaseRequest) (*domain.PurchaseReceipt, error) {
	requested, err := validatePurchaseRequest(req)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	lines, subtotal, err := priceLines(catalog, requested)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.InvestValue.GreaterThan(account.Balance) {
		return nil, fmt.Errorf("%w: invest value %s, balance %s", domain.ErrInsufficientFunds, req.InvestValue, account.Balance)
	}
	if subtotal.GreaterThan(req.InvestValue) {
		return nil, fmt.Errorf("%w: subtotal %s, invest value %s", domain.ErrExceedsInvestValue, subtotal, req.InvestValue)
	}
	for _, line := range lines {
		res := affordability.Compute(req.InvestValue, subtotal, line.UnitPrice, line.Quantity, line.Kind)
		if line.Quantity.GreaterThan(res.MaxQuantity) {
			return nil, fmt.Errorf("%w: %s %s > %s", domain.ErrQuantityExceedsMax, line.Symbol, line.Quantity, res.MaxQuantity)
		}
	}

	existing, err := tx.GetWalletEntriesForUpdate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	holdings := make(map[string]domain.WalletEntry, len(existing))
	for _, e := range existing {
		holdings[holdingKey(e.Kind, e.Symbol)] = e
	}

	now := s.now()
	for _, line := range lines {
		key := holdingKey(line.Kind, line.Symbol)
		entry, ok := holdings[key]
		if !ok {
			entry = domain.WalletEntry{Symbol: line.Symbol, Kind: line.Kind}
		}
		entry = entry.Accumulate(line.Quantity, line.UnitPrice)
		entry.UpdatedAt = now
		holdings[key] = entry
		if err := tx.UpsertWalletEntry(ctx, accountID, entry); err != nil {
			return nil, err
		}
	}

	balance := account.Balance.Sub(subtotal)
	if err := tx.UpdateBalance(ctx, accountID, balance); err != nil {
		return nil, err
	}

	purchase := domain.Purchase{
		ID:          uuid.New(),
		AccountID:   accountID,
		InvestValue: req.InvestValue,
		Subtotal:    subtotal,
		Lines:       lines,
		CreatedAt:   now,
	}
	if err := tx.InsertPurchase(ctx, purchase); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &domain.PurchaseReceipt{Purchase: purchase, Balance: balance}, nil
}

// publish hands the event to the bus in the background
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	log := logger.FromContext(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.bus.Publish(context.WithoutCancel(ctx), evt); err != nil {
			log.Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}()
}

func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func holdingKey(kind domain.AssetKind, symbol string) string {
	return string(kind) + ":" + symbol
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInvestValue),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrFractionalStock),
		errors.Is(err, domain.ErrEmptyPurchase),
		errors.Is(err, domain.ErrInvalidInput):
		return ReasonValidation
	case errors.Is(err, domain.ErrAssetNotFound):
		return ReasonUnknownAsset
	case errors.Is(err, domain.ErrAccountNotFound):
		return ReasonUnknownAccount
	case errors.Is(err, domain.ErrInsufficientFunds):
		return ReasonInsufficientFunds
	case errors.Is(err, domain.ErrExceedsInvestValue), errors.Is(err, domain.ErrQuantityExceedsMax):
		return ReasonExceedsInvest
	case errors.Is(err, domain.ErrNotPurchasable):
		return ReasonNotPurchasable
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return ReasonCatalog
	default:
		return ReasonInternal
	}
}
