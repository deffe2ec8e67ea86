package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"dogtor/internal/common"
	"dogtor/internal/models"
	"dogtor/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SpeciesHandlers handles species HTTP requests.
type SpeciesHandlers struct {
	speciesService services.SpeciesService
	logger         *zap.Logger
}

func NewSpeciesHandlers(speciesService services.SpeciesService, logger *zap.Logger) *SpeciesHandlers {
	return &SpeciesHandlers{
		speciesService: speciesService,
		logger:         logger,
	}
}

// SpeciesRequest represents the species create/update payload.
type SpeciesRequest struct {
	Name *string `json:"name"`
}

// ListSpecies returns all species.
func (h *SpeciesHandlers) ListSpecies(c echo.Context) error {
	species, err := h.speciesService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list species", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list species")
	}
	return c.JSON(http.StatusOK, species)
}

// GetSpecies returns a single species by id.
func (h *SpeciesHandlers) GetSpecies(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Species not found")
	}

	species, err := h.speciesService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Species not found")
		}
		h.logger.Error("failed to fetch species", zap.Int64("species_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch species")
	}
	return c.JSON(http.StatusOK, species)
}

// CreateSpecies creates a new species.
func (h *SpeciesHandlers) CreateSpecies(c echo.Context) error {
	var req SpeciesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == nil {
		return echo.NewHTTPError(http.StatusBadRequest, `Field "name" is required`)
	}

	species := &models.Species{Name: *req.Name}
	if err := h.speciesService.Create(c.Request().Context(), species); err != nil {
		var conflict *common.ConflictError
		if errors.As(err, &conflict) {
			return echo.NewHTTPError(http.StatusConflict, conflict.Detail)
		}
		h.logger.Error("failed to create species", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create species")
	}
	return c.JSON(http.StatusCreated, species)
}

// UpdateSpecies renames an existing species.
func (h *SpeciesHandlers) UpdateSpecies(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Species not found")
	}

	var req SpeciesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	ctx := c.Request().Context()
	if _, err := h.speciesService.GetByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Species not found")
		}
		h.logger.Error("failed to fetch species", zap.Int64("species_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update species")
	}

	if req.Name == nil {
		return echo.NewHTTPError(http.StatusBadRequest, `Field "name" is required`)
	}

	updated, err := h.speciesService.Update(ctx, &models.Species{ID: id, Name: *req.Name})
	if err != nil {
		h.logger.Error("failed to update species", zap.Int64("species_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update species")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteSpecies deletes a species.
func (h *SpeciesHandlers) DeleteSpecies(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Species not found")
	}

	if err := h.speciesService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Species not found")
		}
		h.logger.Error("failed to delete species", zap.Int64("species_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete species")
	}

	return c.JSON(http.StatusOK, map[string]string{"detail": "Species deleted"})
}
