package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/shelfpilot/shelfpilot/internal/cache"
	appErrors "github.com/shelfpilot/shelfpilot/internal/errors"
	"github.com/shelfpilot/shelfpilot/internal/models"
	repository "github.com/shelfpilot/shelfpilot/internal/repositories"
	"github.com/google/uuid"
)

type InventoryService interface {
	CreateItem(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, filter *models.ListInventoryFilter) ([]*models.InventoryItem, int, error)
}

type inventoryService struct {
	repo  repository.InventoryRepository
	cache cache.Cache
}

func NewInventoryService(repo repository.InventoryRepository, itemCache cache.Cache) InventoryService {
	return &inventoryService{repo: repo, cache: itemCache}
}

func (s *inventoryService) CreateItem(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {

	item := &models.InventoryItem{
		Name:        req.Name,
		SKU:         req.SKU,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Location:    req.Location,
		Description: req.Description,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, appErrors.DatabaseError("Failed to create inventory item").WithError(err)
	}

	return item, nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {

	key := cache.Key(cache.ItemKeyPrefix, id.String())

	if s.cache != nil {
		var cached models.InventoryItem

		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.Warn("Item cache read failed", slog.String("error", err.Error()))
		} else if found {
			return &cached, nil
		}
	}

	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Inventory item not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to get inventory item").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, item, 0); err != nil {
			slog.Warn("Item cache write failed", slog.String("error", err.Error()))
		}
	}

	return item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {

	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Inventory item not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to get inventory item").WithError(err)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.SKU != nil {
		item.SKU = *req.SKU
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Tags != nil {
		item.Tags = *req.Tags
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.Weight != nil {
		item.Weight = req.Weight
	}
	if req.Dimensions != nil {
		item.Dimensions = req.Dimensions
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Inventory item not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to update inventory item").WithError(err)
	}

	s.invalidate(ctx, id)

	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Inventory item not found").WithError(err)
		}
		return appErrors.DatabaseError("Failed to delete inventory item").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *inventoryService) ListItems(ctx context.Context, filter *models.ListInventoryFilter) ([]*models.InventoryItem, int, error) {

	items, total, err := s.repo.ListItems(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list inventory items").WithError(err)
	}

	return items, total, nil
}

func (s *inventoryService) invalidate(ctx context.Context, id uuid.UUID) {

	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cache.Key(cache.ItemKeyPrefix, id.String())); err != nil {
		slog.Warn("Item cache invalidation failed", slog.String("error", err.Error()))
	}
}
