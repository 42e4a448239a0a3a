package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shelfpilot/shelfpilot/internal/api/middleware"
	"github.com/shelfpilot/shelfpilot/internal/models"
	service "github.com/shelfpilot/shelfpilot/internal/services"
	"github.com/shelfpilot/shelfpilot/internal/utils"
	"github.com/shelfpilot/shelfpilot/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type RequestHandler struct {
	requestService service.RequestService
	validator      *validator.Validate
}

func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService, validator: utils.NewValidator()}
}

// SubmitRequest godoc
//	@Summary		Submit an item request
//	@Description	Creates a multi-line request against the catalog. Every line must reference an existing inventory item; item names are snapshotted at submission time.
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.SubmitRequestRequest	true	"Request details"
//	@Success		201		{object}	models.ItemRequest			"Created request (status Pending)"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		422		{object}	response.ErrorResponse		"Referenced item not found"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/requests [post]
func (h *RequestHandler) SubmitRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SubmitRequestRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid submit request input")
			return
		}

		request, err := h.requestService.SubmitRequest(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to submit item request", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item request submitted",
			slog.String("requestId", request.ID.String()),
			slog.Int("lines", len(request.Requests)))
		response.Success(w, http.StatusCreated, request)
	}
}

// GetRequest godoc
//	@Summary		Get an item request by ID
//	@Tags			Requests
//	@Produce		json
//	@Param			id	path		string					true	"Request ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.ItemRequest		"Request detail"
//	@Failure		404	{object}	response.ErrorResponse	"Request not found"
//	@Router			/requests/{id} [get]
func (h *RequestHandler) GetRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid request id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		request, err := h.requestService.GetRequestByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get item request", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, request)
	}
}

// ListRequests godoc
//	@Summary		List item requests
//	@Description	Returns all requests ordered by request date descending, optionally narrowed to one status or by a search term over id, requester and first item name.
//	@Tags			Requests
//	@Produce		json
//	@Param			status	query		string	false	"Status filter (Pending|Approved|Rejected)"
//	@Param			search	query		string	false	"Case-insensitive search term"
//	@Success		200		{array}		models.ItemRequest
//	@Failure		400		{object}	response.ErrorResponse	"Unknown status filter"
//	@Router			/requests [get]
func (h *RequestHandler) ListRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		filter := &models.ListRequestsFilter{
			Status: models.RequestStatus(r.URL.Query().Get("status")),
			Search: r.URL.Query().Get("search"),
		}

		requests, err := h.requestService.ListRequests(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list item requests", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item requests listed", slog.Int("count", len(requests)))
		response.Success(w, http.StatusOK, requests)
	}
}

// TransitionStatus godoc
//	@Summary		Approve or reject a request
//	@Description	Moves a Pending request into a terminal state. Approval records approvedBy and approvalDate; terminal requests reject any further transition.
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string									true	"Request ID (UUID)"	Format(uuid)
//	@Param			status	body		models.TransitionRequestStatusRequest	true	"Target status"
//	@Success		200		{object}	models.ItemRequest						"Updated request"
//	@Failure		400		{object}	response.ErrorResponse					"Validation error"
//	@Failure		404		{object}	response.ErrorResponse					"Request not found"
//	@Failure		409		{object}	response.ErrorResponse					"Request is not pending"
//	@Router			/requests/{id}/status [patch]
func (h *RequestHandler) TransitionStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid request id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.TransitionRequestStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid transition status input")
			return
		}

		logger = logger.With(
			slog.String("requestId", id.String()),
			slog.String("targetStatus", string(req.Status)))

		request, err := h.requestService.TransitionStatus(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to transition request status", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Request status updated")
		response.Success(w, http.StatusOK, request)
	}
}
