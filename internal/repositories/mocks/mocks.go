// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type InventoryRepository struct {
	mock.Mock
}

func (m *InventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *InventoryRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *InventoryRepository) UpdateItem(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *InventoryRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *InventoryRepository) ListItems(ctx context.Context, filter *models.ListInventoryFilter) ([]*models.InventoryItem, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.InventoryItem), args.Int(1), args.Error(2)
}

type ShelfRepository struct {
	mock.Mock
}

func (m *ShelfRepository) CreateShelf(ctx context.Context, shelf *models.Shelf) error {
	args := m.Called(ctx, shelf)
	return args.Error(0)
}

func (m *ShelfRepository) GetShelfByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shelf), args.Error(1)
}

func (m *ShelfRepository) UpdateShelf(ctx context.Context, shelf *models.Shelf) error {
	args := m.Called(ctx, shelf)
	return args.Error(0)
}

func (m *ShelfRepository) DeleteShelf(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ShelfRepository) ListShelves(ctx context.Context) ([]*models.Shelf, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Shelf), args.Error(1)
}

type RequestRepository struct {
	mock.Mock
}

func (m *RequestRepository) CreateRequest(ctx context.Context, request *models.ItemRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *RequestRepository) GetRequestByID(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemRequest), args.Error(1)
}

func (m *RequestRepository) ListRequests(ctx context.Context, filter *models.ListRequestsFilter) ([]*models.ItemRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ItemRequest), args.Error(1)
}

func (m *RequestRepository) TransitionStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, approvedBy string) (*models.ItemRequest, error) {
	args := m.Called(ctx, id, status, approvedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemRequest), args.Error(1)
}
