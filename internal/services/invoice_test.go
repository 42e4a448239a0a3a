package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	appErrors "github.com/shelfpilot/shelfpilot/internal/errors"
	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/shelfpilot/shelfpilot/internal/repositories/mocks"
	service "github.com/shelfpilot/shelfpilot/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListInvoices(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.RequestRepository)
	invoiceService := service.NewInvoiceService(mockRepo)
	ctx := context.Background()

	t.Run("Success - Projects Approved Requests", func(t *testing.T) {
		// Arrange
		requestID := uuid.New()
		approvalDate := time.Now()
		approved := []*models.ItemRequest{
			{
				ID:            requestID,
				RequesterName: "Dana Field",
				Status:        models.RequestStatusApproved,
				ApprovedBy:    "Admin",
				ApprovalDate:  &approvalDate,
				Requests: []models.RequestedItemLine{
					{ItemID: uuid.New(), ItemName: "Hex Bolts M8", QuantityRequested: 5},
					{ItemID: uuid.New(), ItemName: "Washers M8", QuantityRequested: 10},
				},
			},
		}
		mockRepo.On("ListRequests", mock.Anything, mock.MatchedBy(func(f *models.ListRequestsFilter) bool {
			return f.Status == models.RequestStatusApproved && f.Search == ""
		})).Return(approved, nil).Once()

		// Act
		invoices, err := invoiceService.ListInvoices(ctx, "")

		// Assert
		assert.NoError(t, err)
		assert.Len(t, invoices, 1)

		invoice := invoices[0]
		assert.Equal(t, requestID, invoice.RequestID)
		assert.Equal(t, "Dana Field", invoice.RequesterName)
		assert.Equal(t, "Hex Bolts M8", invoice.FirstItemName)
		assert.Equal(t, 2, invoice.LineCount)
		assert.Equal(t, 15, invoice.TotalQuantity)
		assert.Equal(t, "Admin", invoice.ApprovedBy)

		expectedNumber := "INV-" + strings.ToUpper(strings.ReplaceAll(requestID.String(), "-", ""))[:8]
		assert.Equal(t, expectedNumber, invoice.InvoiceNumber)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Search Passed Through", func(t *testing.T) {
		// Arrange
		mockRepo.On("ListRequests", mock.Anything, mock.MatchedBy(func(f *models.ListRequestsFilter) bool {
			return f.Status == models.RequestStatusApproved && f.Search == "bolt"
		})).Return([]*models.ItemRequest{}, nil).Once()

		// Act
		invoices, err := invoiceService.ListInvoices(ctx, "bolt")

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, invoices)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo.On("ListRequests", mock.Anything, mock.Anything).Return(nil, errors.New("query failed")).Once()

		// Act
		invoices, err := invoiceService.ListInvoices(ctx, "")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, invoices)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}
