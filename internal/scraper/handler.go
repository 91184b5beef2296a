package scraper

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
)

// ScraperHandler handles HTTP requests for profile scraping.
type ScraperHandler struct {
	service *ScraperService
}

func NewScraperHandler(service *ScraperService) *ScraperHandler {
	return &ScraperHandler{service: service}
}

// Scrape generates mock candidate profiles, admin only.
func (h *ScraperHandler) Scrape(c echo.Context) error {
	var req ScrapeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}

	resp, err := h.service.Scrape(req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AddScrapedProfile promotes a scraped profile into the alumni directory,
// admin only.
func (h *ScraperHandler) AddScrapedProfile(c echo.Context) error {
	var req PromoteProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}

	record, err := h.service.Promote(c.Request().Context(), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"alumni":  record,
		"message": fmt.Sprintf("Successfully added %s from %s as a new alumni.", record.Name, req.Source),
	})
}
