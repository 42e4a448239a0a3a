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

type ShelfService interface {
	CreateShelf(ctx context.Context, req *models.CreateShelfRequest) (*models.Shelf, error)
	GetShelfByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error)
	UpdateShelf(ctx context.Context, id uuid.UUID, req *models.UpdateShelfRequest) (*models.Shelf, error)
	DeleteShelf(ctx context.Context, id uuid.UUID) error
	ListShelves(ctx context.Context) ([]*models.Shelf, error)
}

type shelfService struct {
	repo  repository.ShelfRepository
	cache cache.Cache
}

func NewShelfService(repo repository.ShelfRepository, shelfCache cache.Cache) ShelfService {
	return &shelfService{repo: repo, cache: shelfCache}
}

func (s *shelfService) CreateShelf(ctx context.Context, req *models.CreateShelfRequest) (*models.Shelf, error) {

	shelf := &models.Shelf{
		Name:                req.Name,
		LocationDescription: req.LocationDescription,
		Notes:               req.Notes,
	}

	if err := s.repo.CreateShelf(ctx, shelf); err != nil {
		return nil, appErrors.DatabaseError("Failed to create shelf").WithError(err)
	}

	s.invalidateList(ctx)

	return shelf, nil
}

func (s *shelfService) GetShelfByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error) {

	shelf, err := s.repo.GetShelfByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Shelf not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to get shelf").WithError(err)
	}

	return shelf, nil
}

func (s *shelfService) UpdateShelf(ctx context.Context, id uuid.UUID, req *models.UpdateShelfRequest) (*models.Shelf, error) {

	shelf, err := s.GetShelfByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		shelf.Name = *req.Name
	}
	if req.LocationDescription != nil {
		shelf.LocationDescription = *req.LocationDescription
	}
	if req.Notes != nil {
		shelf.Notes = *req.Notes
	}

	if err := s.repo.UpdateShelf(ctx, shelf); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Shelf not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to update shelf").WithError(err)
	}

	s.invalidateList(ctx)

	return shelf, nil
}

func (s *shelfService) DeleteShelf(ctx context.Context, id uuid.UUID) error {

	// Deleting a shelf never cascades: items referencing it by name keep the
	// stale name, matching the historical behavior of the admin app.
	if err := s.repo.DeleteShelf(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Shelf not found").WithError(err)
		}
		return appErrors.DatabaseError("Failed to delete shelf").WithError(err)
	}

	s.invalidateList(ctx)

	return nil
}

func (s *shelfService) ListShelves(ctx context.Context) ([]*models.Shelf, error) {

	if s.cache != nil {
		var cached []*models.Shelf

		found, err := s.cache.Get(ctx, cache.ShelfListKey, &cached)
		if err != nil {
			slog.Warn("Shelf cache read failed", slog.String("error", err.Error()))
		} else if found {
			return cached, nil
		}
	}

	shelves, err := s.repo.ListShelves(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list shelves").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.ShelfListKey, shelves, 0); err != nil {
			slog.Warn("Shelf cache write failed", slog.String("error", err.Error()))
		}
	}

	return shelves, nil
}

func (s *shelfService) invalidateList(ctx context.Context) {

	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cache.ShelfListKey); err != nil {
		slog.Warn("Shelf cache invalidation failed", slog.String("error", err.Error()))
	}
}
