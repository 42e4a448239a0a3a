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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShelfHandler(t *testing.T) {
	// Arrange
	mockService := new(mocks.ShelfService)
	handler := handlers.NewShelfHandler(mockService)

	body := `{"name": "A-01", "locationDescription": "North wall, first bay", "notes": "Heavy items only"}`

	t.Run("Success - Shelf Created", func(t *testing.T) {
		// Arrange
		created := &models.Shelf{ID: uuid.New(), Name: "A-01", LocationDescription: "North wall, first bay"}
		mockService.On("CreateShelf", mock.Anything, mock.MatchedBy(func(r *models.CreateShelfRequest) bool {
			return r.Name == "A-01"
		})).Return(created, nil).Once()

		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/shelves", strings.NewReader(body), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.CreateShelf()(rec, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)

		var got models.Shelf
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, created.ID, got.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Short Location Description Rejected Before Service", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/shelves",
			strings.NewReader(`{"name": "A-01", "locationDescription": "N"}`), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.CreateShelf()(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateShelf")
	})
}

func TestUpdateShelfHandler(t *testing.T) {
	// Arrange
	mockService := new(mocks.ShelfService)
	handler := handlers.NewShelfHandler(mockService)
	testID := uuid.New()

	t.Run("Success - Shelf Updated", func(t *testing.T) {
		// Arrange
		updated := &models.Shelf{ID: testID, Name: "A-01", Notes: "Cleared for fragile stock"}
		mockService.On("UpdateShelf", mock.Anything, testID, mock.AnythingOfType("*models.UpdateShelfRequest")).Return(updated, nil).Once()

		req := testutils.CreateTestRequest(http.MethodPatch, "/api/v1/shelves/"+testID.String(),
			strings.NewReader(`{"notes": "Cleared for fragile stock"}`), map[string]string{"id": testID.String()})
		rec := httptest.NewRecorder()

		// Act
		handler.UpdateShelf()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockService.On("UpdateShelf", mock.Anything, testID, mock.AnythingOfType("*models.UpdateShelfRequest")).
			Return(nil, appErrors.NotFoundError("Shelf not found")).Once()

		req := testutils.CreateTestRequest(http.MethodPatch, "/api/v1/shelves/"+testID.String(),
			strings.NewReader(`{"notes": "anything"}`), map[string]string{"id": testID.String()})
		rec := httptest.NewRecorder()

		// Act
		handler.UpdateShelf()(rec, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, appErrors.ErrCodeNotFound, env.Error.Code)
		mockService.AssertExpectations(t)
	})
}

func TestDeleteShelfHandler(t *testing.T) {
	// Arrange
	mockService := new(mocks.ShelfService)
	handler := handlers.NewShelfHandler(mockService)
	testID := uuid.New()

	t.Run("Success - No Content", func(t *testing.T) {
		// Arrange
		mockService.On("DeleteShelf", mock.Anything, testID).Return(nil).Once()

		req := testutils.CreateTestRequest(http.MethodDelete, "/api/v1/shelves/"+testID.String(), nil,
			map[string]string{"id": testID.String()})
		rec := httptest.NewRecorder()

		// Act
		handler.DeleteShelf()(rec, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestListShelvesHandler(t *testing.T) {
	// Arrange
	mockService := new(mocks.ShelfService)
	handler := handlers.NewShelfHandler(mockService)

	t.Run("Success - List Shelves", func(t *testing.T) {
		// Arrange
		shelves := []*models.Shelf{
			{ID: uuid.New(), Name: "A-01"},
			{ID: uuid.New(), Name: "B-04"},
		}
		mockService.On("ListShelves", mock.Anything).Return(shelves, nil).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/shelves", nil, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.ListShelves()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)

		var got []models.Shelf
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 2)
		mockService.AssertExpectations(t)
	})
}
