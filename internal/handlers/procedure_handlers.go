package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Procedures is a placeholder; medical records are persisted but not
// exposed through the API yet.
func Procedures(c echo.Context) error {
	return c.JSON(http.StatusOK, []any{})
}
