package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shelfpilot/shelfpilot/internal/api/handlers"
	appErrors "github.com/shelfpilot/shelfpilot/internal/errors"
	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/shelfpilot/shelfpilot/internal/services/mocks"
	"github.com/shelfpilot/shelfpilot/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListInvoicesHandler(t *testing.T) {
	// Arrange
	mockService := new(mocks.InvoiceService)
	handler := handlers.NewInvoiceHandler(mockService)

	t.Run("Success - List Invoices", func(t *testing.T) {
		// Arrange
		invoices := []*models.Invoice{
			{InvoiceNumber: "INV-1A2B3C4D", RequestID: uuid.New(), RequesterName: "Dana Field", LineCount: 2, TotalQuantity: 15},
		}
		mockService.On("ListInvoices", mock.Anything, "").Return(invoices, nil).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/invoices", nil, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.ListInvoices()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)

		var got []models.Invoice
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "INV-1A2B3C4D", got[0].InvoiceNumber)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - Search Forwarded", func(t *testing.T) {
		// Arrange
		mockService.On("ListInvoices", mock.Anything, "bolt").Return([]*models.Invoice{}, nil).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/invoices?search=bolt", nil, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.ListInvoices()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockService.On("ListInvoices", mock.Anything, "").
			Return(nil, appErrors.DatabaseError("Failed to list approved requests")).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/invoices", nil, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.ListInvoices()(rec, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, env.Error.Code)
		mockService.AssertExpectations(t)
	})
}
