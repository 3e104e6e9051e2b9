package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
)

func TestCreateCategoryDuplicateName(t *testing.T) {
	categories := &mockCategoryStore{}
	categories.On("ExistsByName", mock.Anything, "Electronics").Return(true, nil)

	svc := NewCategoryService(categories, zap.NewNop().Sugar())

	_, err := svc.Create(context.Background(), models.CreateCategoryRequest{Name: "Electronics"})
	require.ErrorIs(t, err, ErrCategoryExists)
}

func TestDeleteCategoryInUse(t *testing.T) {
	categories := &mockCategoryStore{}
	categories.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Category{ID: 5, Name: "Electronics"}, nil)
	categories.On("CountProducts", mock.Anything, int64(5)).Return(3, nil)

	svc := NewCategoryService(categories, zap.NewNop().Sugar())

	err := svc.Delete(context.Background(), 5)
	require.ErrorIs(t, err, ErrCategoryInUse)
	categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteEmptyCategory(t *testing.T) {
	categories := &mockCategoryStore{}
	categories.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Category{ID: 5, Name: "Electronics"}, nil)
	categories.On("CountProducts", mock.Anything, int64(5)).Return(0, nil)
	categories.On("Delete", mock.Anything, int64(5)).Return(nil)

	svc := NewCategoryService(categories, zap.NewNop().Sugar())

	require.NoError(t, svc.Delete(context.Background(), 5))
	categories.AssertExpectations(t)
}

func TestGetCategoryNotFound(t *testing.T) {
	categories := &mockCategoryStore{}
	categories.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	svc := NewCategoryService(categories, zap.NewNop().Sugar())

	_, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUpdateCategoryRenameCollision(t *testing.T) {
	categories := &mockCategoryStore{}
	categories.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Category{ID: 5, Name: "Electronics"}, nil)
	categories.On("ExistsByName", mock.Anything, "Books").Return(true, nil)

	svc := NewCategoryService(categories, zap.NewNop().Sugar())

	_, err := svc.Update(context.Background(), 5, models.CreateCategoryRequest{Name: "Books"})
	require.ErrorIs(t, err, ErrCategoryExists)
}

func TestUpdateCategory(t *testing.T) {
	categories := &mockCategoryStore{}
	categories.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Category{ID: 5, Name: "Electronics"}, nil)
	categories.On("ExistsByName", mock.Anything, "Gadgets").Return(false, nil)
	categories.On("Update", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
		return c.Name == "Gadgets"
	})).Return(nil)

	svc := NewCategoryService(categories, zap.NewNop().Sugar())

	category, err := svc.Update(context.Background(), 5, models.CreateCategoryRequest{Name: "Gadgets"})
	require.NoError(t, err)
	assert.Equal(t, "Gadgets", category.Name)
}
