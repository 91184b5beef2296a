package apperr

import (
	"errors"
	"net/http"
)

// Error is a domain error carrying the HTTP status the API surface should
// answer with. Services return these; handlers map them with JSON.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// InactiveCampaign is returned when a donation targets a deactivated campaign.
func InactiveCampaign() *Error {
	return &Error{Status: http.StatusBadRequest, Message: "This campaign is no longer active"}
}

// InvalidAmount is returned when a donation amount is zero or negative.
func InvalidAmount() *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Amount must be greater than 0"}
}

func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// StatusOf reports the HTTP status for err, defaulting to 500 for errors
// outside the taxonomy.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// IsStatus reports whether err is a taxonomy error with the given status.
func IsStatus(err error, status int) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Status == status
}
