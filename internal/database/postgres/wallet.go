package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/repository"
)

const (
	sqlInsertAccount = `
		INSERT INTO accounts (account_id, name, balance)
		VALUES ($1, $2, $3::numeric)
		RETURNING created_at`

	sqlSelectAccount = `
		SELECT account_id, name, balance::text, created_at
		FROM accounts WHERE account_id = $1`

	sqlSelectEntries = `
		SELECT symbol, kind, unit_value::text, quantity::text, updated_at
		FROM wallet_entries WHERE account_id = $1
		ORDER BY kind, symbol`

	sqlUpsertEntry = `
		INSERT INTO wallet_entries (account_id, symbol, kind, unit_value, quantity, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, NOW())
		ON CONFLICT (account_id, kind, symbol) DO UPDATE
		SET unit_value = EXCLUDED.unit_value, quantity = EXCLUDED.quantity, updated_at = NOW()`

	sqlUpdateBalance = `
		UPDATE accounts SET balance = $2::numeric, updated_at = NOW()
		WHERE account_id = $1`

	sqlInsertPurchase = `
		INSERT INTO purchases (purchase_id, account_id, invest_value, subtotal, created_at)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5)`

	sqlInsertLine = `
		INSERT INTO purchase_lines (purchase_id, line_no, symbol, kind, quantity, unit_price, cost)
		VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7::numeric)`

	sqlSelectPurchases = `
		SELECT purchase_id, invest_value::text, subtotal::text, created_at
		FROM purchases WHERE account_id = $1
		ORDER BY created_at DESC, purchase_id
		LIMIT $2`

	sqlSelectLines = `
		SELECT purchase_id, symbol, kind, quantity::text, unit_price::text, cost::text
		FROM purchase_lines WHERE purchase_id = ANY($1)
		ORDER BY purchase_id, line_no`
)

// WalletRepository implements repository.Wallet for PostgreSQL
type WalletRepository struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(db *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{db: db}
}

// WalletTx implements repository.WalletTx
type WalletTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *WalletRepository) BeginTx(ctx context.Context) (repository.WalletTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &WalletTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *WalletTx) Commit(ctx context.Context) error {
	return mapPgError(t.tx.Commit(ctx))
}

// Rollback rolls back the transaction
func (t *WalletTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// CreateAccount inserts a new account funded with balance
func (r *WalletRepository) CreateAccount(ctx context.Context, name string, balance decimal.Decimal) (*domain.Account, error) {
	account := domain.Account{ID: uuid.New(), Name: name, Balance: balance}
	if err := r.db.QueryRow(ctx, sqlInsertAccount, account.ID, name, balance.String()).Scan(&account.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateAccount, err)
	}
	return &account, nil
}

// GetAccount returns the account or domain.ErrAccountNotFound
func (r *WalletRepository) GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	return getAccount(ctx, r.db, sqlSelectAccount, accountID)
}

// GetWalletEntries returns every holding of the account
func (r *WalletRepository) GetWalletEntries(ctx context.Context, accountID uuid.UUID) ([]domain.WalletEntry, error) {
	return getEntries(ctx, r.db, sqlSelectEntries, accountID)
}

// ListPurchases returns the most recent purchases with their lines
func (r *WalletRepository) ListPurchases(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = DefaultPurchaseListLimit
	}
	if limit > MaxPurchaseListLimit {
		limit = MaxPurchaseListLimit
	}

	rows, err := r.db.Query(ctx, sqlSelectPurchases, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPurchases, err)
	}

	purchases := []domain.Purchase{}
	index := make(map[uuid.UUID]int)
	ids := []uuid.UUID{}
	for rows.Next() {
		var (
			p                domain.Purchase
			invest, subtotal string
		)
		if err := rows.Scan(&p.ID, &invest, &subtotal, &p.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPurchases, err)
		}
		if p.InvestValue, err = parseNumeric(invest); err != nil {
			rows.Close()
			return nil, err
		}
		if p.Subtotal, err = parseNumeric(subtotal); err != nil {
			rows.Close()
			return nil, err
		}
		p.AccountID = accountID
		p.Lines = []domain.PurchaseLine{}
		index[p.ID] = len(purchases)
		ids = append(ids, p.ID)
		purchases = append(purchases, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPurchases, err)
	}
	if len(ids) == 0 {
		return purchases, nil
	}

	lineRows, err := r.db.Query(ctx, sqlSelectLines, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPurchases, err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var (
			purchaseID            uuid.UUID
			line                  domain.PurchaseLine
			kind                  string
			quantity, price, cost string
		)
		if err := lineRows.Scan(&purchaseID, &line.Symbol, &kind, &quantity, &price, &cost); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPurchases, err)
		}
		line.Kind = domain.AssetKind(kind)
		if line.Quantity, err = parseNumeric(quantity); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = parseNumeric(price); err != nil {
			return nil, err
		}
		if line.Cost, err = parseNumeric(cost); err != nil {
			return nil, err
		}
		i := index[purchaseID]
		purchases[i].Lines = append(purchases[i].Lines, line)
	}
	if err := lineRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPurchases, err)
	}
	return purchases, nil
}

// GetAccountForUpdate locks the account row for the rest of the transaction
func (t *WalletTx) GetAccountForUpdate(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	return getAccount(ctx, t.tx, sqlSelectAccount+" FOR UPDATE", accountID)
}

// GetWalletEntriesForUpdate locks the account's holdings
func (t *WalletTx) GetWalletEntriesForUpdate(ctx context.Context, accountID uuid.UUID) ([]domain.WalletEntry, error) {
	return getEntries(ctx, t.tx, sqlSelectEntries+" FOR UPDATE", accountID)
}

// UpsertWalletEntry writes the holding, replacing any previous quantity and unit value
func (t *WalletTx) UpsertWalletEntry(ctx context.Context, accountID uuid.UUID, entry domain.WalletEntry) error {
	_, err := t.tx.Exec(ctx, sqlUpsertEntry,
		accountID, entry.Symbol, string(entry.Kind), entry.UnitValue.String(), entry.Quantity.String())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertEntry, mapPgError(err))
	}
	return nil
}

// UpdateBalance sets the cash balance of the account
func (t *WalletTx) UpdateBalance(ctx context.Context, accountID uuid.UUID, balance decimal.Decimal) error {
	tag, err := t.tx.Exec(ctx, sqlUpdateBalance, accountID, balance.String())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// InsertPurchase records the purchase header and its lines
func (t *WalletTx) InsertPurchase(ctx context.Context, purchase domain.Purchase) error {
	createdAt := purchase.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := t.tx.Exec(ctx, sqlInsertPurchase,
		purchase.ID, purchase.AccountID, purchase.InvestValue.String(), purchase.Subtotal.String(), createdAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPurchase, err)
	}

	batch := &pgx.Batch{}
	for i, line := range purchase.Lines {
		batch.Queue(sqlInsertLine, purchase.ID, i+1, line.Symbol, string(line.Kind),
			line.Quantity.String(), line.UnitPrice.String(), line.Cost.String())
	}
	results := t.tx.SendBatch(ctx, batch)
	for range purchase.Lines {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertLine, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertLine, err)
	}
	return nil
}

func getAccount(ctx context.Context, q querier, query string, accountID uuid.UUID) (*domain.Account, error) {
	var (
		account domain.Account
		balance string
	)
	err := q.QueryRow(ctx, query, accountID).Scan(&account.ID, &account.Name, &balance, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	if account.Balance, err = parseNumeric(balance); err != nil {
		return nil, err
	}
	return &account, nil
}

func getEntries(ctx context.Context, q querier, query string, accountID uuid.UUID) ([]domain.WalletEntry, error) {
	rows, err := q.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWallet, err)
	}
	defer rows.Close()

	entries := []domain.WalletEntry{}
	for rows.Next() {
		var (
			entry          domain.WalletEntry
			kind           string
			unit, quantity string
		)
		if err := rows.Scan(&entry.Symbol, &kind, &unit, &quantity, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWallet, err)
		}
		entry.Kind = domain.AssetKind(kind)
		if entry.UnitValue, err = parseNumeric(unit); err != nil {
			return nil, err
		}
		if entry.Quantity, err = parseNumeric(quantity); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWallet, err)
	}
	return entries, nil
}
