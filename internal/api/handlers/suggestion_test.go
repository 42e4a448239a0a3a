package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shelfpilot/shelfpilot/internal/api/handlers"
	appErrors "github.com/shelfpilot/shelfpilot/internal/errors"
	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/shelfpilot/shelfpilot/internal/services/mocks"
	"github.com/shelfpilot/shelfpilot/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSuggestShelfLocationHandler(t *testing.T) {
	// Arrange
	mockService := new(mocks.SuggestionService)
	handler := handlers.NewSuggestionHandler(mockService)

	body := `{"productName": "Ceramic Floor Tiles", "productDescription": "Boxed, 20kg per box, fragile edges"}`

	t.Run("Success - Suggestion Returned", func(t *testing.T) {
		// Arrange
		suggestion := &models.ShelfLocationSuggestion{
			ShelfLocationSuggestion: "A-01",
			Rationale:               "Heavy boxed goods belong on the reinforced north wall bay.",
		}
		mockService.On("SuggestShelfLocation", mock.Anything, mock.MatchedBy(func(r *models.SuggestShelfLocationRequest) bool {
			return r.ProductName == "Ceramic Floor Tiles"
		})).Return(suggestion, nil).Once()

		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/suggestions/shelf-location", strings.NewReader(body), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.SuggestShelfLocation()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)

		var got models.ShelfLocationSuggestion
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "A-01", got.ShelfLocationSuggestion)
		assert.NotEmpty(t, got.Rationale)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Description Rejected Before Service", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/suggestions/shelf-location",
			strings.NewReader(`{"productName": "Ceramic Floor Tiles"}`), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.SuggestShelfLocation()(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "SuggestShelfLocation")
	})

	t.Run("Failure - Model Error", func(t *testing.T) {
		// Arrange
		mockService.On("SuggestShelfLocation", mock.Anything, mock.AnythingOfType("*models.SuggestShelfLocationRequest")).
			Return(nil, appErrors.ThirdPartyError("Shelf location suggestion failed")).Once()

		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/suggestions/shelf-location", strings.NewReader(body), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.SuggestShelfLocation()(rec, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, env.Error.Code)
		mockService.AssertExpectations(t)
	})
}
