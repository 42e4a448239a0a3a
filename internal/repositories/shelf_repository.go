package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/shelfpilot/shelfpilot/internal/utils"
	"github.com/google/uuid"
)

type ShelfRepository interface {
	CreateShelf(ctx context.Context, shelf *models.Shelf) error
	GetShelfByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error)
	UpdateShelf(ctx context.Context, shelf *models.Shelf) error
	DeleteShelf(ctx context.Context, id uuid.UUID) error
	ListShelves(ctx context.Context) ([]*models.Shelf, error)
}

type shelfRepository struct {
	DB *sql.DB
}

func NewShelfRepo(db *sql.DB) ShelfRepository {
	return &shelfRepository{DB: db}
}

func (r *shelfRepository) CreateShelf(ctx context.Context, shelf *models.Shelf) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO shelves (name, location_description, notes)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, shelf.Name, shelf.LocationDescription, shelf.Notes).
		Scan(&shelf.ID, &shelf.CreatedAt, &shelf.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert shelf: %w", err)
	}

	return nil
}

func (r *shelfRepository) GetShelfByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, location_description, notes, created_at, updated_at
		FROM shelves
		WHERE id = $1
	`

	shelf := &models.Shelf{}

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&shelf.ID, &shelf.Name, &shelf.LocationDescription, &shelf.Notes, &shelf.CreatedAt, &shelf.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get shelf: %w", err)
	}

	return shelf, nil
}

func (r *shelfRepository) UpdateShelf(ctx context.Context, shelf *models.Shelf) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE shelves
		SET name = $2, location_description = $3, notes = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, shelf.ID, shelf.Name, shelf.LocationDescription, shelf.Notes).
		Scan(&shelf.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return err
		}
		return fmt.Errorf("failed to update shelf: %w", err)
	}

	return nil
}

func (r *shelfRepository) DeleteShelf(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	// No cascade: inventory items keep referencing the deleted shelf's name.
	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM shelves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shelf: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete shelf: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *shelfRepository) ListShelves(ctx context.Context) ([]*models.Shelf, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, location_description, notes, created_at, updated_at
		FROM shelves
		ORDER BY name
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shelves: %w", err)
	}

	defer rows.Close()

	var shelves []*models.Shelf

	for rows.Next() {

		shelf := &models.Shelf{}

		err := rows.Scan(&shelf.ID, &shelf.Name, &shelf.LocationDescription, &shelf.Notes, &shelf.CreatedAt, &shelf.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shelf: %w", err)
		}

		shelves = append(shelves, shelf)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shelves, nil
}
