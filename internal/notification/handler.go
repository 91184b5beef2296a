package notification

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
	"github.com/Shoaib232002/Alumni-Project/internal/auth"
)

// NotificationHandler handles HTTP requests for notifications.
type NotificationHandler struct {
	service *NotificationService
}

func NewNotificationHandler(service *NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func callerRole(c echo.Context) string {
	claims, ok := c.Get("user").(*auth.JWTClaims)
	if !ok || claims == nil {
		return ""
	}
	return claims.Role
}

// List returns the notifications visible to the caller's role.
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.service.List(c.Request().Context(), callerRole(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead marks a single notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid notification ID format"})
	}

	n, err := h.service.MarkRead(c.Request().Context(), id, callerRole(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, n)
}

// MarkAllRead marks every visible notification as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	count, err := h.service.MarkAllRead(c.Request().Context(), callerRole(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "All notifications marked as read",
		"count":   count,
	})
}
