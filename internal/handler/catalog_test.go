package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/mocks"
)

func TestHandleGetCatalog(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockCatalogService)
		expectedStatus int
		verify         func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "Success",
			setupMock: func(m *mocks.MockCatalogService) {
				m.On("GetCatalog", mock.Anything).Return(testCatalog(), nil)
			},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				c := decodeBody[domain.Catalog](t, rec)
				assert.Len(t, c.Cryptos, 2)
				assert.Len(t, c.Stocks, 2)
				assert.Equal(t, "0.25", c.Cryptos[0].UnitPrice.String())
			},
		},
		{
			name:  "Kind filter",
			query: "?kind=stock",
			setupMock: func(m *mocks.MockCatalogService) {
				m.On("GetCatalog", mock.Anything).Return(testCatalog(), nil)
			},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				c := decodeBody[domain.Catalog](t, rec)
				assert.Empty(t, c.Cryptos)
				assert.Len(t, c.Stocks, 2)
			},
		},
		{
			name:           "Bad kind",
			query:          "?kind=bond",
			setupMock:      func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Still loading",
			setupMock: func(m *mocks.MockCatalogService) {
				m.On("GetCatalog", mock.Anything).Return(nil, domain.ErrCatalogUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, ErrMsgCatalogLoadingError, decodeBody[ErrorResponse](t, rec).Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCatalogService(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			HandleGetCatalog(svc)(rec, newRequest(http.MethodGet, "/api/v1/catalog"+tt.query, "", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.verify != nil {
				tt.verify(t, rec)
			}
		})
	}
}

func TestHandleGetAsset(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		svc.On("Lookup", mock.Anything, "btc").Return(testCatalog().Cryptos[1], nil)

		rec := httptest.NewRecorder()
		HandleGetAsset(svc)(rec, newRequest(http.MethodGet, "/api/v1/catalog/btc", "", map[string]string{"symbol": "btc"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "BTC", decodeBody[domain.Asset](t, rec).Symbol)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		svc.On("Lookup", mock.Anything, "XYZ").Return(domain.Asset{}, domain.ErrAssetNotFound)

		rec := httptest.NewRecorder()
		HandleGetAsset(svc)(rec, newRequest(http.MethodGet, "/api/v1/catalog/XYZ", "", map[string]string{"symbol": "XYZ"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
