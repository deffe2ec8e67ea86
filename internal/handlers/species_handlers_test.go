package handlers

import (
	"context"
	"net/http"
	"testing"

	"dogtor/internal/common"
	"dogtor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSpeciesService struct {
	mock.Mock
}

func (m *MockSpeciesService) Create(ctx context.Context, species *models.Species) error {
	args := m.Called(ctx, species)
	return args.Error(0)
}

func (m *MockSpeciesService) GetByID(ctx context.Context, id int64) (*models.Species, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Species), args.Error(1)
}

func (m *MockSpeciesService) Update(ctx context.Context, species *models.Species) (*models.Species, error) {
	args := m.Called(ctx, species)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Species), args.Error(1)
}

func (m *MockSpeciesService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSpeciesService) List(ctx context.Context) ([]*models.Species, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Species), args.Error(1)
}

func TestCreateSpecies_MissingName(t *testing.T) {
	speciesService := &MockSpeciesService{}
	h := NewSpeciesHandlers(speciesService, zap.NewNop())

	c, _ := newJSONContext(http.MethodPost, "/species", `{}`)
	err := h.CreateSpecies(c)
	requireHTTPError(t, err, http.StatusBadRequest, `Field "name" is required`)
	speciesService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// The existence check runs before payload validation, so a missing
// species wins over a missing name.
func TestUpdateSpecies_NotFoundBeforeValidation(t *testing.T) {
	speciesService := &MockSpeciesService{}
	h := NewSpeciesHandlers(speciesService, zap.NewNop())

	speciesService.On("GetByID", mock.Anything, int64(99)).Return(nil, common.ErrNotFound)

	c, _ := newJSONContext(http.MethodPut, "/species/99", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.UpdateSpecies(c)
	requireHTTPError(t, err, http.StatusNotFound, "Species not found")
	speciesService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateSpecies_MissingName(t *testing.T) {
	speciesService := &MockSpeciesService{}
	h := NewSpeciesHandlers(speciesService, zap.NewNop())

	speciesService.On("GetByID", mock.Anything, int64(2)).
		Return(&models.Species{ID: 2, Name: "Canine"}, nil)

	c, _ := newJSONContext(http.MethodPut, "/species/2", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("2")

	err := h.UpdateSpecies(c)
	requireHTTPError(t, err, http.StatusBadRequest, `Field "name" is required`)
	speciesService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateSpecies_Success(t *testing.T) {
	speciesService := &MockSpeciesService{}
	h := NewSpeciesHandlers(speciesService, zap.NewNop())

	speciesService.On("GetByID", mock.Anything, int64(2)).
		Return(&models.Species{ID: 2, Name: "Canine"}, nil)
	speciesService.On("Update", mock.Anything, &models.Species{ID: 2, Name: "Feline"}).
		Return(&models.Species{ID: 2, Name: "Feline"}, nil)

	c, rec := newJSONContext(http.MethodPut, "/species/2", `{"name":"Feline"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, h.UpdateSpecies(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	speciesService.AssertExpectations(t)
}
