package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/shelfpilot/shelfpilot/internal/errors"
	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/shelfpilot/shelfpilot/internal/repositories/mocks"
	service "github.com/shelfpilot/shelfpilot/internal/services"
	"github.com/shelfpilot/shelfpilot/pkg/gemini"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockGeminiClient struct {
	mock.Mock
}

func (m *mockGeminiClient) SuggestShelfLocation(ctx context.Context, input *gemini.SuggestionInput) (*models.ShelfLocationSuggestion, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShelfLocationSuggestion), args.Error(1)
}

func (m *mockGeminiClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestSuggestShelfLocation(t *testing.T) {
	// Arrange
	mockInventoryRepo := new(mocks.InventoryRepository)
	mockShelfRepo := new(mocks.ShelfRepository)
	mockGemini := new(mockGeminiClient)
	suggestionService := service.NewSuggestionService(mockInventoryRepo, mockShelfRepo, mockGemini)
	ctx := context.Background()

	req := &models.SuggestShelfLocationRequest{
		ProductName:        "Ceramic Floor Tiles",
		ProductDescription: "Boxed, 20kg per box, fragile edges",
	}

	shelves := []*models.Shelf{
		{ID: uuid.New(), Name: "A-01", LocationDescription: "North wall, first bay", Notes: "Heavy items only"},
	}
	items := []*models.InventoryItem{
		{ID: uuid.New(), Name: "Hex Bolts M8", Quantity: 250, Location: "A-01"},
	}

	t.Run("Success - Returns Model Suggestion", func(t *testing.T) {
		// Arrange
		mockShelfRepo.On("ListShelves", mock.Anything).Return(shelves, nil).Once()
		mockInventoryRepo.On("ListItems", mock.Anything, mock.AnythingOfType("*models.ListInventoryFilter")).Return(items, 1, nil).Once()

		expected := &models.ShelfLocationSuggestion{
			ShelfLocationSuggestion: "A-01",
			Rationale:               "Heavy boxed goods belong on the reinforced north wall bay.",
		}
		mockGemini.On("SuggestShelfLocation", mock.Anything, mock.MatchedBy(func(input *gemini.SuggestionInput) bool {
			return input.ProductName == req.ProductName &&
				input.CurrentInventory != ""
		})).Return(expected, nil).Once()

		// Act
		suggestion, err := suggestionService.SuggestShelfLocation(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, suggestion)
		mockShelfRepo.AssertExpectations(t)
		mockInventoryRepo.AssertExpectations(t)
		mockGemini.AssertExpectations(t)
	})

	t.Run("Success - Empty Warehouse Still Prompts", func(t *testing.T) {
		// Arrange
		mockShelfRepo.On("ListShelves", mock.Anything).Return([]*models.Shelf{}, nil).Once()
		mockInventoryRepo.On("ListItems", mock.Anything, mock.AnythingOfType("*models.ListInventoryFilter")).Return([]*models.InventoryItem{}, 0, nil).Once()

		expected := &models.ShelfLocationSuggestion{ShelfLocationSuggestion: "Receiving area", Rationale: "No shelves registered yet."}
		mockGemini.On("SuggestShelfLocation", mock.Anything, mock.MatchedBy(func(input *gemini.SuggestionInput) bool {
			return input.CurrentInventory != ""
		})).Return(expected, nil).Once()

		// Act
		suggestion, err := suggestionService.SuggestShelfLocation(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, suggestion)
		mockGemini.AssertExpectations(t)
	})

	t.Run("Failure - Model Error", func(t *testing.T) {
		// Arrange
		mockShelfRepo.On("ListShelves", mock.Anything).Return(shelves, nil).Once()
		mockInventoryRepo.On("ListItems", mock.Anything, mock.AnythingOfType("*models.ListInventoryFilter")).Return(items, 1, nil).Once()
		mockGemini.On("SuggestShelfLocation", mock.Anything, mock.Anything).Return(nil, errors.New("model unavailable")).Once()

		// Act
		suggestion, err := suggestionService.SuggestShelfLocation(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, suggestion)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
		assert.Contains(t, err.Error(), "Shelf location suggestion failed")
		mockGemini.AssertExpectations(t)
	})

	t.Run("Failure - Shelf Listing Error", func(t *testing.T) {
		// Arrange
		mockShelfRepo.On("ListShelves", mock.Anything).Return(nil, errors.New("query failed")).Once()

		// Act
		suggestion, err := suggestionService.SuggestShelfLocation(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, suggestion)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockGemini.AssertNotCalled(t, "SuggestShelfLocation")
	})
}
