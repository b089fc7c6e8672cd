package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/mocks"
)

func TestHandleCreateAccount(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := mocks.NewMockWalletService(t)
		account := &domain.Account{ID: uuid.New(), Name: "ada", Balance: dec("724568.78")}
		svc.On("CreateAccount", mock.Anything, "ada").Return(account, nil)

		rec := httptest.NewRecorder()
		NewAccountHandler(svc).HandleCreateAccount(rec, newRequest(http.MethodPost, "/api/v1/accounts", `{"name": "ada"}`, nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		got := decodeBody[domain.Account](t, rec)
		assert.Equal(t, account.ID, got.ID)
		assert.Contains(t, rec.Body.String(), `"balance":"724568.78"`)
	})

	t.Run("Malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewAccountHandler(mocks.NewMockWalletService(t)).HandleCreateAccount(rec,
			newRequest(http.MethodPost, "/api/v1/accounts", `{"name":`, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleGetBalance(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockWalletService(t)
		svc.On("GetBalance", mock.Anything, id).Return(dec("12.5"), nil)

		rec := httptest.NewRecorder()
		NewAccountHandler(svc).HandleGetBalance(rec, newRequest(http.MethodGet, "/", "", map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeBody[BalanceResponse](t, rec).Balance.Equal(dec("12.5")))
	})

	t.Run("Bad id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewAccountHandler(mocks.NewMockWalletService(t)).HandleGetBalance(rec,
			newRequest(http.MethodGet, "/", "", map[string]string{"id": "nope"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, ErrMsgInvalidAccountID, decodeBody[ErrorResponse](t, rec).Error)
	})

	t.Run("Unknown account", func(t *testing.T) {
		svc := mocks.NewMockWalletService(t)
		svc.On("GetBalance", mock.Anything, id).Return(decimal.Zero, domain.ErrAccountNotFound)

		rec := httptest.NewRecorder()
		NewAccountHandler(svc).HandleGetBalance(rec, newRequest(http.MethodGet, "/", "", map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleGetWallet(t *testing.T) {
	id := uuid.New()
	svc := mocks.NewMockWalletService(t)
	wlt := domain.NewWallet(id, []domain.WalletEntry{
		{Symbol: "F", Kind: domain.KindStock, UnitValue: dec("25"), Quantity: dec("4")},
	})
	svc.On("GetWallet", mock.Anything, id).Return(&wlt, nil)

	rec := httptest.NewRecorder()
	NewAccountHandler(svc).HandleGetWallet(rec, newRequest(http.MethodGet, "/", "", map[string]string{"id": id.String()}))

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.Wallet](t, rec)
	assert.Len(t, got.Entries, 1)
	assert.True(t, got.Total.Equal(dec("100")))
}

func TestHandleListPurchases(t *testing.T) {
	id := uuid.New()

	t.Run("Empty list encodes as array", func(t *testing.T) {
		svc := mocks.NewMockWalletService(t)
		svc.On("ListPurchases", mock.Anything, id, 5).Return(nil, nil)

		rec := httptest.NewRecorder()
		NewAccountHandler(svc).HandleListPurchases(rec,
			newRequest(http.MethodGet, "/?limit=5", "", map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("Bad limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewAccountHandler(mocks.NewMockWalletService(t)).HandleListPurchases(rec,
			newRequest(http.MethodGet, "/?limit=-1", "", map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleSubmitPurchase(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockWalletService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: `{"invest_value": "100", "crypto": {"DOGE": "40"}, "stocks": {"F": 3}}`,
			setupMock: func(m *mocks.MockWalletService) {
				m.On("SubmitPurchase", mock.Anything, id, mock.MatchedBy(func(req domain.PurchaseRequest) bool {
					return req.InvestValue.Equal(dec("100")) &&
						req.Crypto["DOGE"].Equal(dec("40")) &&
						req.Stocks["F"].Equal(dec("3"))
				})).Return(&domain.PurchaseReceipt{
					Purchase: domain.Purchase{ID: uuid.New(), AccountID: id, Subtotal: dec("85")},
					Balance:  dec("15"),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Insufficient funds",
			body: `{"invest_value": "1000000", "stocks": {"F": 1}}`,
			setupMock: func(m *mocks.MockWalletService) {
				m.On("SubmitPurchase", mock.Anything, id, mock.Anything).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgNotEnoughMoneyError,
		},
		{
			name: "Catalog unavailable",
			body: `{"invest_value": "10", "stocks": {"F": 1}}`,
			setupMock: func(m *mocks.MockWalletService) {
				m.On("SubmitPurchase", mock.Anything, id, mock.Anything).Return(nil, domain.ErrCatalogUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "Zero invest value rejected before the service",
			body:           `{"invest_value": 0, "stocks": {"F": 1}}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockWalletService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := httptest.NewRecorder()
			NewAccountHandler(svc).HandleSubmitPurchase(rec,
				newRequest(http.MethodPost, "/", tt.body, map[string]string{"id": id.String()}))

			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody[ErrorResponse](t, rec).Error)
			}
		})
	}
}
