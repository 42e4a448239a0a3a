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

type ShelfHandler struct {
	shelfService service.ShelfService
	validator    *validator.Validate
}

func NewShelfHandler(shelfService service.ShelfService) *ShelfHandler {
	return &ShelfHandler{shelfService: shelfService, validator: utils.NewValidator()}
}

// CreateShelf godoc
//	@Summary		Register a shelf
//	@Tags			Shelves
//	@Accept			json
//	@Produce		json
//	@Param			shelf	body		models.CreateShelfRequest	true	"Shelf fields"
//	@Success		201		{object}	models.Shelf				"Created shelf"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Router			/shelves [post]
func (h *ShelfHandler) CreateShelf() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateShelfRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create shelf input")
			return
		}

		shelf, err := h.shelfService.CreateShelf(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create shelf", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Shelf registered", slog.String("shelfId", shelf.ID.String()))
		response.Success(w, http.StatusCreated, shelf)
	}
}

func (h *ShelfHandler) GetShelf() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid shelf id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		shelf, err := h.shelfService.GetShelfByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get shelf", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, shelf)
	}
}

// UpdateShelf godoc
//	@Summary		Update a shelf
//	@Tags			Shelves
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Shelf ID (UUID)"	Format(uuid)
//	@Param			shelf	body		models.UpdateShelfRequest	true	"Fields to update"
//	@Success		200		{object}	models.Shelf				"Updated shelf"
//	@Failure		404		{object}	response.ErrorResponse		"Shelf not found"
//	@Router			/shelves/{id} [patch]
func (h *ShelfHandler) UpdateShelf() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid shelf id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateShelfRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update shelf input")
			return
		}

		shelf, err := h.shelfService.UpdateShelf(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update shelf", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Shelf updated", slog.String("shelfId", id.String()))
		response.Success(w, http.StatusOK, shelf)
	}
}

func (h *ShelfHandler) DeleteShelf() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid shelf id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.shelfService.DeleteShelf(r.Context(), id); err != nil {
			logger.Error("Failed to delete shelf", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Shelf deleted", slog.String("shelfId", id.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListShelves godoc
//	@Summary		List shelves ordered by name
//	@Tags			Shelves
//	@Produce		json
//	@Success		200	{array}	models.Shelf
//	@Router			/shelves [get]
func (h *ShelfHandler) ListShelves() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		shelves, err := h.shelfService.ListShelves(r.Context())
		if err != nil {
			logger.Error("Failed to list shelves", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Shelves listed", slog.Int("count", len(shelves)))
		response.Success(w, http.StatusOK, shelves)
	}
}
