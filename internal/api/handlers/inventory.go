package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shelfpilot/shelfpilot/internal/api/middleware"
	"github.com/shelfpilot/shelfpilot/internal/models"
	service "github.com/shelfpilot/shelfpilot/internal/services"
	"github.com/shelfpilot/shelfpilot/internal/utils"
	"github.com/shelfpilot/shelfpilot/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
	validator        *validator.Validate
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, validator: utils.NewValidator()}
}

// CreateItem godoc
//	@Summary		Add an inventory item
//	@Description	Adds a new item to the catalog with a shelf location.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CreateInventoryItemRequest	true	"Item fields"
//	@Success		201		{object}	models.InventoryItem				"Created item"
//	@Failure		400		{object}	response.ErrorResponse				"Validation error"
//	@Failure		500		{object}	response.ErrorResponse				"Internal server error"
//	@Router			/inventory [post]
func (h *InventoryHandler) CreateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateInventoryItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create item input")
			return
		}

		item, err := h.inventoryService.CreateItem(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create inventory item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Inventory item created", slog.String("itemId", item.ID.String()))
		response.Success(w, http.StatusCreated, item)
	}
}

// GetItem godoc
//	@Summary		Get an inventory item by ID
//	@Tags			Inventory
//	@Produce		json
//	@Param			id	path		string					true	"Item ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.InventoryItem	"Item"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid item ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Item not found"
//	@Router			/inventory/{id} [get]
func (h *InventoryHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid item id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		item, err := h.inventoryService.GetItemByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get inventory item",
				slog.String("itemId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// UpdateItem godoc
//	@Summary		Update an inventory item
//	@Description	Applies a partial update; omitted fields keep their value. Refreshes lastUpdated.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Item ID (UUID)"	Format(uuid)
//	@Param			item	body		models.UpdateInventoryItemRequest	true	"Fields to update"
//	@Success		200		{object}	models.InventoryItem				"Updated item"
//	@Failure		400		{object}	response.ErrorResponse				"Validation error"
//	@Failure		404		{object}	response.ErrorResponse				"Item not found"
//	@Router			/inventory/{id} [patch]
func (h *InventoryHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid item id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateInventoryItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update item input")
			return
		}

		item, err := h.inventoryService.UpdateItem(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update inventory item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Inventory item updated", slog.String("itemId", id.String()))
		response.Success(w, http.StatusOK, item)
	}
}

// DeleteItem godoc
//	@Summary		Delete an inventory item
//	@Tags			Inventory
//	@Param			id	path	string	true	"Item ID (UUID)"	Format(uuid)
//	@Success		204	"Deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Item not found"
//	@Router			/inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid item id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.inventoryService.DeleteItem(r.Context(), id); err != nil {
			logger.Error("Failed to delete inventory item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Inventory item deleted", slog.String("itemId", id.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListItems godoc
//	@Summary		List inventory items
//	@Description	Paginated catalog listing, optionally narrowed by a search term or a category.
//	@Tags			Inventory
//	@Produce		json
//	@Param			page		query		int		false	"Page number (default: 1)"							minimum(1)
//	@Param			pageSize	query		int		false	"Items per page (default: 10, max: 100)"			minimum(1)	maximum(100)
//	@Param			search		query		string	false	"Case-insensitive match on name, SKU or category"
//	@Param			category	query		string	false	"Exact category filter"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.InventoryItem}
//	@Router			/inventory [get]
func (h *InventoryHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}
		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 10
		}

		filter := &models.ListInventoryFilter{
			Search:   r.URL.Query().Get("search"),
			Category: r.URL.Query().Get("category"),
			Page:     page,
			PageSize: pageSize,
		}

		items, total, err := h.inventoryService.ListItems(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list inventory items", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Inventory listed", slog.Int("count", len(items)), slog.Int("total", total))
		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     items,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
