package college

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
)

// CollegeInfoHandler handles HTTP requests for the college info singleton.
type CollegeInfoHandler struct {
	service *CollegeInfoService
}

func NewCollegeInfoHandler(service *CollegeInfoService) *CollegeInfoHandler {
	return &CollegeInfoHandler{service: service}
}

// Get returns the singleton, 404 until its first write.
func (h *CollegeInfoHandler) Get(c echo.Context) error {
	info, err := h.service.Get(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

// Upsert replaces the singleton, admin only.
func (h *CollegeInfoHandler) Upsert(c echo.Context) error {
	var req UpsertCollegeInfoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}

	info, err := h.service.Upsert(c.Request().Context(), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, info)
}
