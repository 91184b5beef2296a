package validation

import (
	"net/http"
	"testing"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
)

type registerPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin alumni"`
}

func TestValidatePasses(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(registerPayload{Name: "Priya", Email: "priya@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestValidateMessages(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		payload registerPayload
		message string
	}{
		{
			"missing required field",
			registerPayload{Email: "priya@example.com", Password: "secret123"},
			"Please provide all required fields",
		},
		{
			"bad email",
			registerPayload{Name: "Priya", Email: "not-an-email", Password: "secret123"},
			"Invalid email format",
		},
		{
			"short password",
			registerPayload{Name: "Priya", Email: "priya@example.com", Password: "abc"},
			"password must be at least 6",
		},
		{
			"bad role",
			registerPayload{Name: "Priya", Email: "priya@example.com", Password: "secret123", Role: "owner"},
			"role must be one of: admin alumni",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.payload)
			if !apperr.IsStatus(err, http.StatusBadRequest) {
				t.Fatalf("expected 400, got %v", err)
			}
			if err.Error() != tt.message {
				t.Fatalf("message = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestValidateReportsFirstViolationOnly(t *testing.T) {
	v := NewRequestValidator()

	// Name and email are both invalid; field order decides which one is
	// reported.
	err := v.Validate(registerPayload{Password: "secret123"})
	if err == nil {
		t.Fatal("invalid payload accepted")
	}
	if err.Error() != "Please provide all required fields" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestValidateNumericBounds(t *testing.T) {
	v := NewRequestValidator()

	type campaignPayload struct {
		Title string  `json:"title" validate:"required"`
		Goal  float64 `json:"goal" validate:"required,gt=0"`
	}
	err := v.Validate(campaignPayload{Title: "Drive", Goal: -5})
	if !apperr.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected 400, got %v", err)
	}
	if err.Error() != "goal must be greater than 0" {
		t.Fatalf("message = %q", err.Error())
	}

	type alumniPayload struct {
		Batch int `json:"batch" validate:"required,gte=1900"`
	}
	err = v.Validate(alumniPayload{Batch: 1500})
	if err == nil || err.Error() != "batch must be greater than or equal to 1900" {
		t.Fatalf("message = %v", err)
	}
}
