package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/shelfpilot/shelfpilot/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	_ "github.com/lib/pq"
)

type Repositories struct {
	DB        *sql.DB
	Inventory InventoryRepository
	Shelf     ShelfRepository
	Request   RequestRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return &Repositories{
		DB:        db,
		Inventory: NewInventoryRepo(db),
		Shelf:     NewShelfRepo(db),
		Request:   NewRequestRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

func ensureSchema(db *sql.DB) error {

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS inventory_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			sku TEXT NOT NULL,
			category TEXT NOT NULL,
			quantity INT NOT NULL DEFAULT 0,
			location TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			image_url TEXT NOT NULL DEFAULT '',
			weight DOUBLE PRECISION,
			dimensions JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS shelves (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			location_description TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS item_requests (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			requester_name TEXT NOT NULL,
			requests JSONB NOT NULL,
			status TEXT NOT NULL DEFAULT 'Pending',
			request_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			approved_by TEXT NOT NULL DEFAULT '',
			approval_date TIMESTAMPTZ,
			notes TEXT NOT NULL DEFAULT '',
			last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)

	return err
}
