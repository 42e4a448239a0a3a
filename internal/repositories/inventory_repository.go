package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/shelfpilot/shelfpilot/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type InventoryRepository interface {
	CreateItem(ctx context.Context, item *models.InventoryItem) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, item *models.InventoryItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, filter *models.ListInventoryFilter) ([]*models.InventoryItem, int, error)
}

type inventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepo(db *sql.DB) InventoryRepository {
	return &inventoryRepository{DB: db}
}

func (r *inventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	dimensions, err := marshalDimensions(item.Dimensions)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO inventory_items (name, sku, category, quantity, location, description, tags, image_url, weight, dimensions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err = r.DB.QueryRowContext(dbCtx, query,
		item.Name, item.SKU, item.Category, item.Quantity, item.Location,
		item.Description, pq.Array(item.Tags), item.ImageURL, item.Weight, dimensions).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert inventory item: %w", err)
	}

	return nil
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, sku, category, quantity, location, description, tags, image_url, weight, dimensions, created_at, updated_at
		FROM inventory_items
		WHERE id = $1
	`

	item, err := scanItem(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	return item, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *models.InventoryItem) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	dimensions, err := marshalDimensions(item.Dimensions)
	if err != nil {
		return err
	}

	query := `
		UPDATE inventory_items
		SET name = $2, sku = $3, category = $4, quantity = $5, location = $6,
			description = $7, tags = $8, image_url = $9, weight = $10, dimensions = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err = r.DB.QueryRowContext(dbCtx, query,
		item.ID, item.Name, item.SKU, item.Category, item.Quantity, item.Location,
		item.Description, pq.Array(item.Tags), item.ImageURL, item.Weight, dimensions).
		Scan(&item.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return err
		}
		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	return nil
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *inventoryRepository) ListItems(ctx context.Context, filter *models.ListInventoryFilter) ([]*models.InventoryItem, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	countQuery := `
		SELECT COUNT(*)
		FROM inventory_items
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%')
			AND ($2 = '' OR category = $2)
	`

	var total int
	if err := r.DB.QueryRowContext(dbCtx, countQuery, filter.Search, filter.Category).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory items: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize

	query := `
		SELECT id, name, sku, category, quantity, location, description, tags, image_url, weight, dimensions, created_at, updated_at
		FROM inventory_items
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%')
			AND ($2 = '' OR category = $2)
		ORDER BY name
		LIMIT $3 OFFSET $4
	`

	rows, err := r.DB.QueryContext(dbCtx, query, filter.Search, filter.Category, filter.PageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inventory items: %w", err)
	}

	defer rows.Close()

	var items []*models.InventoryItem

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem is the single decode point from the stored row shape into the
// canonical model; malformed dimension documents are rejected here.
func scanItem(row rowScanner) (*models.InventoryItem, error) {

	item := &models.InventoryItem{}

	var dimensions []byte

	err := row.Scan(&item.ID, &item.Name, &item.SKU, &item.Category, &item.Quantity,
		&item.Location, &item.Description, pq.Array(&item.Tags), &item.ImageURL,
		&item.Weight, &dimensions, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(dimensions) > 0 {
		item.Dimensions = &models.Dimensions{}
		if err := json.Unmarshal(dimensions, item.Dimensions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dimensions: %w", err)
		}
	}

	return item, nil
}

func marshalDimensions(d *models.Dimensions) ([]byte, error) {

	if d == nil {
		return nil, nil
	}

	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dimensions: %w", err)
	}

	return data, nil
}
