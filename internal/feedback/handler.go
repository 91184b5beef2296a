package feedback

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
)

// FeedbackHandler handles HTTP requests for feedback.
type FeedbackHandler struct {
	service *FeedbackService
}

func NewFeedbackHandler(service *FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// hasAuthHeader mirrors the visibility rule for unapproved feedback: any
// bearer header widens the listing to unapproved entries.
func hasAuthHeader(c echo.Context) bool {
	return c.Request().Header.Get("Authorization") != ""
}

// List returns feedback; anonymous callers only see approved entries.
func (h *FeedbackHandler) List(c echo.Context) error {
	feedback, err := h.service.List(c.Request().Context(), hasAuthHeader(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, feedback)
}

// Get returns one feedback entry.
func (h *FeedbackHandler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid feedback ID format"})
	}

	f, err := h.service.Get(c.Request().Context(), id, hasAuthHeader(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// Create records a new testimonial, public.
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}

	f, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

// Approve publishes a testimonial, admin only.
func (h *FeedbackHandler) Approve(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid feedback ID format"})
	}

	f, err := h.service.Approve(c.Request().Context(), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// Delete removes a testimonial, admin only.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid feedback ID format"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Feedback deleted successfully"})
}
