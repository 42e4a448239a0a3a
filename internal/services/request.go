package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	appErrors "github.com/shelfpilot/shelfpilot/internal/errors"
	"github.com/shelfpilot/shelfpilot/internal/metrics"
	"github.com/shelfpilot/shelfpilot/internal/models"
	repository "github.com/shelfpilot/shelfpilot/internal/repositories"
	"github.com/google/uuid"
)

type RequestService interface {
	SubmitRequest(ctx context.Context, req *models.SubmitRequestRequest) (*models.ItemRequest, error)
	GetRequestByID(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error)
	ListRequests(ctx context.Context, filter *models.ListRequestsFilter) ([]*models.ItemRequest, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, req *models.TransitionRequestStatusRequest) (*models.ItemRequest, error)
}

type requestService struct {
	requestRepo   repository.RequestRepository
	inventoryRepo repository.InventoryRepository
}

func NewRequestService(requestRepo repository.RequestRepository, inventoryRepo repository.InventoryRepository) RequestService {
	return &requestService{requestRepo: requestRepo, inventoryRepo: inventoryRepo}
}

// SubmitRequest validates every line against the catalog and stores the new
// request with a Pending status. Item names are snapshotted at submit time so
// later catalog renames never rewrite request history.
func (s *requestService) SubmitRequest(ctx context.Context, req *models.SubmitRequestRequest) (*models.ItemRequest, error) {

	if len(req.Lines) == 0 {
		return nil, appErrors.ValidationError("At least one line item is required")
	}

	lines := make([]models.RequestedItemLine, 0, len(req.Lines))

	for _, line := range req.Lines {

		if line.QuantityRequested <= 0 {
			return nil, appErrors.ValidationError("Requested quantity must be a positive integer")
		}

		item, err := s.inventoryRepo.GetItemByID(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.ReferenceNotFoundError("Requested item not found: " + line.ItemID.String()).WithError(err)
			}
			return nil, appErrors.DatabaseError("Failed to resolve requested item").WithError(err)
		}

		lines = append(lines, models.RequestedItemLine{
			ItemID:            item.ID,
			ItemName:          item.Name,
			QuantityRequested: line.QuantityRequested,
		})
	}

	request := &models.ItemRequest{
		RequesterName: req.RequesterName,
		Requests:      lines,
		Status:        models.RequestStatusPending,
		Notes:         req.Notes,
	}

	if err := s.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, appErrors.DatabaseError("Failed to create item request").WithError(err)
	}

	return request, nil
}

func (s *requestService) GetRequestByID(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error) {

	request, err := s.requestRepo.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item request not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to get item request").WithError(err)
	}

	return request, nil
}

func (s *requestService) ListRequests(ctx context.Context, filter *models.ListRequestsFilter) ([]*models.ItemRequest, error) {

	if filter == nil {
		filter = &models.ListRequestsFilter{}
	}

	if filter.Status != "" &&
		filter.Status != models.RequestStatusPending &&
		filter.Status != models.RequestStatusApproved &&
		filter.Status != models.RequestStatusRejected {
		return nil, appErrors.ValidationError(fmt.Sprintf("Unknown status filter: %s", filter.Status))
	}

	requests, err := s.requestRepo.ListRequests(ctx, filter)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list item requests").WithError(err)
	}

	return requests, nil
}

// TransitionStatus moves a Pending request into a terminal state. Approval
// records who approved and when; rejection records neither. Terminal requests
// reject any further transition, including a repeat of the same one.
func (s *requestService) TransitionStatus(ctx context.Context, id uuid.UUID, req *models.TransitionRequestStatusRequest) (*models.ItemRequest, error) {

	if req.Status != models.RequestStatusApproved && req.Status != models.RequestStatusRejected {
		return nil, appErrors.ValidationError(fmt.Sprintf("Target status must be Approved or Rejected, got: %s", req.Status))
	}

	approvedBy := ""
	if req.Status == models.RequestStatusApproved {
		approvedBy = req.ApprovedBy
		if approvedBy == "" {
			approvedBy = models.SystemApprover
		}
	}

	request, err := s.requestRepo.TransitionStatus(ctx, id, req.Status, approvedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item request not found").WithError(err)
		}
		if errors.Is(err, repository.ErrRequestNotPending) {
			return nil, appErrors.InvalidStateTransitionError("Only pending requests can be approved or rejected").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to update request status").WithError(err)
	}

	metrics.RecordTransition(string(request.Status))

	return request, nil
}
