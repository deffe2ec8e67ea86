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

// OwnerHandlers handles pet-owner HTTP requests.
type OwnerHandlers struct {
	ownerService services.OwnerService
	logger       *zap.Logger
}

func NewOwnerHandlers(ownerService services.OwnerService, logger *zap.Logger) *OwnerHandlers {
	return &OwnerHandlers{
		ownerService: ownerService,
		logger:       logger,
	}
}

// OwnerRequest represents the owner create/update payload. All fields are
// mandatory; pointers distinguish missing keys from zero values.
type OwnerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Mobile    *string `json:"mobile"`
	Email     *string `json:"email"`
}

// missingField reports the first absent mandatory field, in payload order.
func (r *OwnerRequest) missingField() string {
	switch {
	case r.FirstName == nil:
		return "first_name"
	case r.LastName == nil:
		return "last_name"
	case r.Phone == nil:
		return "phone"
	case r.Mobile == nil:
		return "mobile"
	case r.Email == nil:
		return "email"
	}
	return ""
}

// ListOwners returns all owners with their pets nested.
func (h *OwnerHandlers) ListOwners(c echo.Context) error {
	owners, err := h.ownerService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list owners", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list owners")
	}
	return c.JSON(http.StatusOK, owners)
}

// GetOwner returns an owner by id.
func (h *OwnerHandlers) GetOwner(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Owner not found")
	}

	owner, err := h.ownerService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Owner not found")
		}
		h.logger.Error("failed to fetch owner", zap.Int64("owner_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch owner")
	}
	return c.JSON(http.StatusOK, owner)
}

// CreateOwner creates a new pet owner.
func (h *OwnerHandlers) CreateOwner(c echo.Context) error {
	var req OwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if field := req.missingField(); field != "" {
		return echo.NewHTTPError(http.StatusBadRequest, (&common.ValidationError{Field: field}).Error())
	}

	owner := &models.Owner{
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
		Phone:     *req.Phone,
		Mobile:    *req.Mobile,
		Email:     *req.Email,
	}
	if err := h.ownerService.Create(c.Request().Context(), owner); err != nil {
		var conflict *common.ConflictError
		if errors.As(err, &conflict) {
			return echo.NewHTTPError(http.StatusConflict, conflict.Detail)
		}
		h.logger.Error("failed to create owner", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create owner")
	}
	return c.JSON(http.StatusCreated, owner)
}

// UpdateOwner overwrites the mutable fields of an existing owner.
func (h *OwnerHandlers) UpdateOwner(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Owner not found")
	}

	var req OwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	ctx := c.Request().Context()
	if _, err := h.ownerService.GetByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("owner with id %d does not exist", id))
		}
		h.logger.Error("failed to fetch owner", zap.Int64("owner_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update owner")
	}

	if field := req.missingField(); field != "" {
		return echo.NewHTTPError(http.StatusBadRequest, (&common.ValidationError{Field: field}).Error())
	}

	owner := &models.Owner{
		ID:        id,
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
		Phone:     *req.Phone,
		Mobile:    *req.Mobile,
		Email:     *req.Email,
	}
	updated, err := h.ownerService.Update(ctx, owner)
	if err != nil {
		h.logger.Error("failed to update owner", zap.Int64("owner_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update owner")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteOwner deletes an owner without pets.
func (h *OwnerHandlers) DeleteOwner(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Owner not found")
	}

	if err := h.ownerService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("owner with id %d does not exist", id))
		}
		var conflict *common.ConflictError
		if errors.As(err, &conflict) {
			return echo.NewHTTPError(http.StatusConflict, conflict.Detail)
		}
		h.logger.Error("failed to delete owner", zap.Int64("owner_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete owner")
	}

	return c.JSON(http.StatusOK, map[string]string{"detail": fmt.Sprintf("owner with id %d deleted successfully", id)})
}
