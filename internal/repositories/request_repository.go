package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/shelfpilot/shelfpilot/internal/utils"
	"github.com/google/uuid"
)

// ErrRequestNotPending is returned when a status transition loses the
// compare-and-swap: the request exists but is no longer Pending.
var ErrRequestNotPending = errors.New("request is not pending")

type RequestRepository interface {
	CreateRequest(ctx context.Context, request *models.ItemRequest) error
	GetRequestByID(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error)
	ListRequests(ctx context.Context, filter *models.ListRequestsFilter) ([]*models.ItemRequest, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, approvedBy string) (*models.ItemRequest, error)
}

type requestRepository struct {
	DB *sql.DB
}

func NewRequestRepo(db *sql.DB) RequestRepository {
	return &requestRepository{DB: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *models.ItemRequest) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	lines, err := json.Marshal(request.Requests)
	if err != nil {
		return fmt.Errorf("failed to marshal request lines: %w", err)
	}

	query := `
		INSERT INTO item_requests (requester_name, requests, status, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, request_date, last_updated
	`

	err = r.DB.QueryRowContext(dbCtx, query, request.RequesterName, lines, request.Status, request.Notes).
		Scan(&request.ID, &request.RequestDate, &request.LastUpdated)

	if err != nil {
		return fmt.Errorf("failed to insert item request: %w", err)
	}

	return nil
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, requester_name, requests, status, request_date, approved_by, approval_date, notes, last_updated
		FROM item_requests
		WHERE id = $1
	`

	request, err := scanRequest(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get item request: %w", err)
	}

	return request, nil
}

func (r *requestRepository) ListRequests(ctx context.Context, filter *models.ListRequestsFilter) ([]*models.ItemRequest, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	// Search covers the request id, the requester name and the first line's
	// item name, matching the admin list view.
	query := `
		SELECT id, requester_name, requests, status, request_date, approved_by, approval_date, notes, last_updated
		FROM item_requests
		WHERE ($1 = '' OR status = $1)
			AND ($2 = '' OR id::text ILIKE '%' || $2 || '%' OR requester_name ILIKE '%' || $2 || '%' OR requests->0->>'itemName' ILIKE '%' || $2 || '%')
		ORDER BY request_date DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, string(filter.Status), filter.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to list item requests: %w", err)
	}

	defer rows.Close()

	var requests []*models.ItemRequest

	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item request: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// TransitionStatus applies the Pending -> terminal transition with a
// compare-and-swap on the current status, so two concurrent approvals cannot
// both win. The losing call gets ErrRequestNotPending; an unknown id gets
// sql.ErrNoRows.
func (r *requestRepository) TransitionStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, approvedBy string) (*models.ItemRequest, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE item_requests
		SET status = $2,
			approved_by = CASE WHEN $2 = 'Approved' THEN $3 ELSE approved_by END,
			approval_date = CASE WHEN $2 = 'Approved' THEN NOW() ELSE approval_date END,
			last_updated = NOW()
		WHERE id = $1 AND status = 'Pending'
		RETURNING id, requester_name, requests, status, request_date, approved_by, approval_date, notes, last_updated
	`

	request, err := scanRequest(r.DB.QueryRowContext(dbCtx, query, id, status, approvedBy))
	if err == nil {
		return request, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to transition request status: %w", err)
	}

	// CAS missed: distinguish a missing request from a terminal one.
	var current models.RequestStatus

	err = r.DB.QueryRowContext(dbCtx, `SELECT status FROM item_requests WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to read request status: %w", err)
	}

	return nil, ErrRequestNotPending
}

// scanRequest is the single decode point from the stored row shape into the
// canonical model; the ordered line list lives as a jsonb array.
func scanRequest(row rowScanner) (*models.ItemRequest, error) {

	request := &models.ItemRequest{}

	var lines []byte

	err := row.Scan(&request.ID, &request.RequesterName, &lines, &request.Status,
		&request.RequestDate, &request.ApprovedBy, &request.ApprovalDate,
		&request.Notes, &request.LastUpdated)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(lines, &request.Requests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request lines: %w", err)
	}

	return request, nil
}
