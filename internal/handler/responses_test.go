package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/InvestSim_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{domain.ErrAccountNotFound, http.StatusNotFound, ErrMsgAccountNotFoundError},
		{fmt.Errorf("%w: XYZ", domain.ErrAssetNotFound), http.StatusNotFound, ErrMsgAssetNotFoundError},
		{fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, errors.New("dial tcp")), http.StatusServiceUnavailable, ErrMsgCatalogLoadingError},
		{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
		{domain.ErrExceedsInvestValue, http.StatusBadRequest, ErrMsgExceedsInvestError},
		{domain.ErrQuantityExceedsMax, http.StatusBadRequest, ErrMsgExceedsMaxError},
		{domain.ErrEmptyPurchase, http.StatusBadRequest, ErrMsgEmptyPurchaseError},
		{domain.ErrFractionalStock, http.StatusBadRequest, ErrMsgFractionalStockError},
		{domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.status, status, "%v", tt.err)
		assert.Equal(t, tt.msg, msg, "%v", tt.err)
	}
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, math.Inf(1))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgGenericServerError)
}
