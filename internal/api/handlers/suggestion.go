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

type SuggestionHandler struct {
	suggestionService service.SuggestionService
	validator         *validator.Validate
}

func NewSuggestionHandler(suggestionService service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService, validator: utils.NewValidator()}
}

// SuggestShelfLocation godoc
//	@Summary		Suggest a shelf location for a product
//	@Description	Forwards the product details plus a snapshot of the current inventory to the generative model and returns its suggestion with a rationale.
//	@Tags			Suggestions
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.SuggestShelfLocationRequest	true	"Product details"
//	@Success		200		{object}	models.ShelfLocationSuggestion
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		500		{object}	response.ErrorResponse	"Model call failed"
//	@Router			/suggestions/shelf-location [post]
func (h *SuggestionHandler) SuggestShelfLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SuggestShelfLocationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid suggestion input")
			return
		}

		suggestion, err := h.suggestionService.SuggestShelfLocation(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to get shelf location suggestion", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Shelf location suggested", slog.String("product", req.ProductName))
		response.Success(w, http.StatusOK, suggestion)
	}
}
