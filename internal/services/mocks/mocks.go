// Package mocks provides testify mocks for the service interfaces, used by
// the handler tests.
package mocks

import (
	"context"

	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type InventoryService struct {
	mock.Mock
}

func (m *InventoryService) CreateItem(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *InventoryService) GetItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *InventoryService) ListItems(ctx context.Context, filter *models.ListInventoryFilter) ([]*models.InventoryItem, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.InventoryItem), args.Int(1), args.Error(2)
}

type ShelfService struct {
	mock.Mock
}

func (m *ShelfService) CreateShelf(ctx context.Context, req *models.CreateShelfRequest) (*models.Shelf, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shelf), args.Error(1)
}

func (m *ShelfService) GetShelfByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shelf), args.Error(1)
}

func (m *ShelfService) UpdateShelf(ctx context.Context, id uuid.UUID, req *models.UpdateShelfRequest) (*models.Shelf, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shelf), args.Error(1)
}

func (m *ShelfService) DeleteShelf(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ShelfService) ListShelves(ctx context.Context) ([]*models.Shelf, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Shelf), args.Error(1)
}

type RequestService struct {
	mock.Mock
}

func (m *RequestService) SubmitRequest(ctx context.Context, req *models.SubmitRequestRequest) (*models.ItemRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemRequest), args.Error(1)
}

func (m *RequestService) GetRequestByID(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemRequest), args.Error(1)
}

func (m *RequestService) ListRequests(ctx context.Context, filter *models.ListRequestsFilter) ([]*models.ItemRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ItemRequest), args.Error(1)
}

func (m *RequestService) TransitionStatus(ctx context.Context, id uuid.UUID, req *models.TransitionRequestStatusRequest) (*models.ItemRequest, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemRequest), args.Error(1)
}

type InvoiceService struct {
	mock.Mock
}

func (m *InvoiceService) ListInvoices(ctx context.Context, search string) ([]*models.Invoice, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invoice), args.Error(1)
}

type SuggestionService struct {
	mock.Mock
}

func (m *SuggestionService) SuggestShelfLocation(ctx context.Context, req *models.SuggestShelfLocationRequest) (*models.ShelfLocationSuggestion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShelfLocationSuggestion), args.Error(1)
}
