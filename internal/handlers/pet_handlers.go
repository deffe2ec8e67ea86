package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"dogtor/internal/common"
	"dogtor/internal/models"
	"dogtor/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PetHandlers handles pet-related HTTP requests.
type PetHandlers struct {
	petService services.PetService
	logger     *zap.Logger
}

func NewPetHandlers(petService services.PetService, logger *zap.Logger) *PetHandlers {
	return &PetHandlers{
		petService: petService,
		logger:     logger,
	}
}

// PetRequest represents the pet create/update payload. All fields are
// mandatory; pointers distinguish missing keys from zero values.
type PetRequest struct {
	Name      *string `json:"name"`
	OwnerID   *int64  `json:"owner_id"`
	Age       *int    `json:"age"`
	SpeciesID *int64  `json:"species_id"`
}

// missingField reports the first absent mandatory field, in payload order.
func (r *PetRequest) missingField() string {
	switch {
	case r.Name == nil:
		return "name"
	case r.OwnerID == nil:
		return "owner_id"
	case r.Age == nil:
		return "age"
	case r.SpeciesID == nil:
		return "species_id"
	}
	return ""
}

// ListPets returns all pets.
func (h *PetHandlers) ListPets(c echo.Context) error {
	pets, err := h.petService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list pets", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list pets")
	}
	return c.JSON(http.StatusOK, pets)
}

// GetPet returns a pet by id.
func (h *PetHandlers) GetPet(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Pet not found")
	}

	pet, err := h.petService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Pet not found")
		}
		h.logger.Error("failed to fetch pet", zap.Int64("pet_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch pet")
	}
	return c.JSON(http.StatusOK, pet)
}

// CreatePet creates a new pet.
func (h *PetHandlers) CreatePet(c echo.Context) error {
	var req PetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if field := req.missingField(); field != "" {
		return echo.NewHTTPError(http.StatusBadRequest, (&common.ValidationError{Field: field}).Error())
	}

	pet := &models.Pet{
		Name:      *req.Name,
		OwnerID:   *req.OwnerID,
		Age:       *req.Age,
		SpeciesID: *req.SpeciesID,
	}
	created, err := h.petService.Create(c.Request().Context(), pet)
	if err != nil {
		var conflict *common.ConflictError
		if errors.As(err, &conflict) {
			return echo.NewHTTPError(http.StatusConflict, conflict.Detail)
		}
		h.logger.Error("failed to create pet", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create pet")
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdatePet overwrites the mutable fields of an existing pet.
func (h *PetHandlers) UpdatePet(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Pet not found")
	}

	var req PetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	ctx := c.Request().Context()
	if _, err := h.petService.GetByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Pet with id %d not found", id))
		}
		h.logger.Error("failed to fetch pet", zap.Int64("pet_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update pet")
	}

	if field := req.missingField(); field != "" {
		return echo.NewHTTPError(http.StatusBadRequest, (&common.ValidationError{Field: field}).Error())
	}

	pet := &models.Pet{
		ID:        id,
		Name:      *req.Name,
		OwnerID:   *req.OwnerID,
		Age:       *req.Age,
		SpeciesID: *req.SpeciesID,
	}
	updated, err := h.petService.Update(ctx, pet)
	if err != nil {
		h.logger.Error("failed to update pet", zap.Int64("pet_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update pet")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeletePet deletes an existing pet.
func (h *PetHandlers) DeletePet(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Pet not found")
	}

	if err := h.petService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("pet with id %d not found", id))
		}
		h.logger.Error("failed to delete pet", zap.Int64("pet_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete pet")
	}

	return c.JSON(http.StatusOK, map[string]string{"detail": fmt.Sprintf("pet with id %d deleted", id)})
}
