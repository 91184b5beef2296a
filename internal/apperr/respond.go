package apperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// JSON writes the error response for err. Taxonomy errors keep their status
// and message; anything else is logged and answered as a generic 500 so store
// internals never leak to the caller.
func JSON(c echo.Context, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, map[string]string{"error": appErr.Message})
	}
	log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server error"})
}
