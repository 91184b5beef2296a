package alumni

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
	"github.com/Shoaib232002/Alumni-Project/internal/auth"
)

// AlumniHandler handles HTTP requests for the alumni directory.
type AlumniHandler struct {
	service *AlumniService
}

func NewAlumniHandler(service *AlumniService) *AlumniHandler {
	return &AlumniHandler{service: service}
}

func claimsFrom(c echo.Context) *auth.JWTClaims {
	claims, _ := c.Get("user").(*auth.JWTClaims)
	return claims
}

// List returns all alumni, newest first.
func (h *AlumniHandler) List(c echo.Context) error {
	alumni, err := h.service.List(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, alumni)
}

// Get returns a single alumni record.
func (h *AlumniHandler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid alumni ID format"})
	}

	a, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// ListByBatch returns the alumni of one graduation year, sorted by name.
func (h *AlumniHandler) ListByBatch(c echo.Context) error {
	batch, err := strconv.Atoi(c.Param("batch"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Batch must be a valid number"})
	}

	alumni, err := h.service.ListByBatch(c.Request().Context(), batch)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, alumni)
}

// Create adds a new alumni record.
func (h *AlumniHandler) Create(c echo.Context) error {
	var req CreateAlumniRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}

	claims := claimsFrom(c)
	role := ""
	if claims != nil {
		role = claims.Role
	}
	a, err := h.service.Create(c.Request().Context(), req, role)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// Update applies a partial update, owner or admin only.
func (h *AlumniHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid alumni ID format"})
	}

	var req UpdateAlumniRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}

	a, err := h.service.Update(c.Request().Context(), id, req, claimsFrom(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// Delete removes an alumni record, admin only.
func (h *AlumniHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid alumni ID format"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Alumni deleted successfully"})
}

// Verify marks an alumni record as verified, admin only.
func (h *AlumniHandler) Verify(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid alumni ID format"})
	}

	a, err := h.service.Verify(c.Request().Context(), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, a)
}
