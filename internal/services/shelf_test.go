package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/shelfpilot/shelfpilot/internal/errors"
	"github.com/shelfpilot/shelfpilot/internal/models"
	"github.com/shelfpilot/shelfpilot/internal/repositories/mocks"
	service "github.com/shelfpilot/shelfpilot/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateShelf(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.ShelfRepository)
	shelfService := service.NewShelfService(mockRepo, nil)
	ctx := context.Background()

	req := &models.CreateShelfRequest{
		Name:                "A-01",
		LocationDescription: "North wall, first bay",
		Notes:               "Heavy items only",
	}

	t.Run("Success - Create Shelf", func(t *testing.T) {
		// Arrange
		mockRepo.On("CreateShelf", mock.Anything, mock.MatchedBy(func(s *models.Shelf) bool {
			return s.Name == req.Name && s.LocationDescription == req.LocationDescription
		})).Return(nil).Once()

		// Act
		shelf, err := shelfService.CreateShelf(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, shelf)
		assert.Equal(t, req.Name, shelf.Name)
		assert.Equal(t, req.Notes, shelf.Notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo.On("CreateShelf", mock.Anything, mock.AnythingOfType("*models.Shelf")).Return(errors.New("insert failed")).Once()

		// Act
		shelf, err := shelfService.CreateShelf(ctx, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, shelf)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateShelf(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.ShelfRepository)
	shelfService := service.NewShelfService(mockRepo, nil)
	ctx := context.Background()
	testID := uuid.New()

	newNotes := "Cleared for fragile stock"
	req := &models.UpdateShelfRequest{Notes: &newNotes}

	t.Run("Success - Partial Update", func(t *testing.T) {
		// Arrange
		existing := &models.Shelf{
			ID:                  testID,
			Name:                "A-01",
			LocationDescription: "North wall, first bay",
			Notes:               "Heavy items only",
		}
		mockRepo.On("GetShelfByID", mock.Anything, testID).Return(existing, nil).Once()
		mockRepo.On("UpdateShelf", mock.Anything, mock.MatchedBy(func(s *models.Shelf) bool {
			return s.ID == testID && s.Notes == newNotes && s.Name == "A-01"
		})).Return(nil).Once()

		// Act
		shelf, err := shelfService.UpdateShelf(ctx, testID, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, newNotes, shelf.Notes)
		assert.Equal(t, "A-01", shelf.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Shelf Not Found", func(t *testing.T) {
		// Arrange
		mockRepo.On("GetShelfByID", mock.Anything, testID).Return(nil, sql.ErrNoRows).Once()

		// Act
		shelf, err := shelfService.UpdateShelf(ctx, testID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, shelf)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdateShelf")
	})
}

func TestDeleteShelf(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.ShelfRepository)
	shelfService := service.NewShelfService(mockRepo, nil)
	ctx := context.Background()
	testID := uuid.New()

	t.Run("Success - Delete Shelf", func(t *testing.T) {
		// Arrange
		mockRepo.On("DeleteShelf", mock.Anything, testID).Return(nil).Once()

		// Act
		err := shelfService.DeleteShelf(ctx, testID)

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo.On("DeleteShelf", mock.Anything, testID).Return(sql.ErrNoRows).Once()

		// Act
		err := shelfService.DeleteShelf(ctx, testID)

		// Assert
		assert.Error(t, err)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestListShelves(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.ShelfRepository)
	shelfService := service.NewShelfService(mockRepo, nil)
	ctx := context.Background()

	t.Run("Success - List Shelves", func(t *testing.T) {
		// Arrange
		expected := []*models.Shelf{
			{ID: uuid.New(), Name: "A-01"},
			{ID: uuid.New(), Name: "B-04"},
		}
		mockRepo.On("ListShelves", mock.Anything).Return(expected, nil).Once()

		// Act
		shelves, err := shelfService.ListShelves(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, shelves)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo.On("ListShelves", mock.Anything).Return(nil, errors.New("query failed")).Once()

		// Act
		shelves, err := shelfService.ListShelves(ctx)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, shelves)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}
