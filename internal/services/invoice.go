package service

import (
	"context"
	"strings"

	appErrors "github.com/shelfpilot/shelfpilot/internal/errors"
	"github.com/shelfpilot/shelfpilot/internal/models"
	repository "github.com/shelfpilot/shelfpilot/internal/repositories"
)

type InvoiceService interface {
	ListInvoices(ctx context.Context, search string) ([]*models.Invoice, error)
}

// invoiceService is a read-only projection over approved requests; it owns no
// storage of its own.
type invoiceService struct {
	requestRepo repository.RequestRepository
}

func NewInvoiceService(requestRepo repository.RequestRepository) InvoiceService {
	return &invoiceService{requestRepo: requestRepo}
}

func (s *invoiceService) ListInvoices(ctx context.Context, search string) ([]*models.Invoice, error) {

	requests, err := s.requestRepo.ListRequests(ctx, &models.ListRequestsFilter{
		Status: models.RequestStatusApproved,
		Search: search,
	})
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list approved requests").WithError(err)
	}

	invoices := make([]*models.Invoice, 0, len(requests))

	for _, request := range requests {

		invoice := &models.Invoice{
			InvoiceNumber: invoiceNumber(request),
			RequestID:     request.ID,
			RequesterName: request.RequesterName,
			LineCount:     len(request.Requests),
			ApprovedBy:    request.ApprovedBy,
			ApprovalDate:  request.ApprovalDate,
		}

		if len(request.Requests) > 0 {
			invoice.FirstItemName = request.Requests[0].ItemName
		}

		for _, line := range request.Requests {
			invoice.TotalQuantity += line.QuantityRequested
		}

		invoices = append(invoices, invoice)
	}

	return invoices, nil
}

func invoiceNumber(request *models.ItemRequest) string {
	short := strings.ToUpper(strings.ReplaceAll(request.ID.String(), "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return "INV-" + short
}
