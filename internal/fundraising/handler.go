package fundraising

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
	"github.com/Shoaib232002/Alumni-Project/internal/auth"
)

// FundraisingHandler handles HTTP requests for campaigns and donations.
type FundraisingHandler struct {
	service *FundraisingService
}

func NewFundraisingHandler(service *FundraisingService) *FundraisingHandler {
	return &FundraisingHandler{service: service}
}

func claimsFrom(c echo.Context) *auth.JWTClaims {
	claims, _ := c.Get("user").(*auth.JWTClaims)
	return claims
}

// ListCampaigns returns every campaign, newest first.
func (h *FundraisingHandler) ListCampaigns(c echo.Context) error {
	campaigns, err := h.service.ListCampaigns(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, campaigns)
}

// ListActiveCampaigns returns only the campaigns currently accepting donations.
func (h *FundraisingHandler) ListActiveCampaigns(c echo.Context) error {
	campaigns, err := h.service.ListActiveCampaigns(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, campaigns)
}

// GetCampaign returns a single campaign with its derived progress fields.
func (h *FundraisingHandler) GetCampaign(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid campaign ID format"})
	}

	campaign, err := h.service.GetCampaign(c.Request().Context(), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, campaign)
}

// CreateCampaign starts a new fundraising drive, admin only.
func (h *FundraisingHandler) CreateCampaign(c echo.Context) error {
	var req CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}

	campaign, err := h.service.CreateCampaign(c.Request().Context(), req, claimsFrom(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, campaign)
}

// UpdateCampaign applies a partial update, admin only.
func (h *FundraisingHandler) UpdateCampaign(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid campaign ID format"})
	}

	var req UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}

	campaign, err := h.service.UpdateCampaign(c.Request().Context(), id, req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign removes a campaign without donation history, admin only.
func (h *FundraisingHandler) DeleteCampaign(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid campaign ID format"})
	}

	if err := h.service.DeleteCampaign(c.Request().Context(), id); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Campaign deleted successfully"})
}

// ToggleStatus flips a campaign's active flag, admin only.
func (h *FundraisingHandler) ToggleStatus(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid campaign ID format"})
	}

	campaign, err := h.service.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, campaign)
}

// CreateDonation records a public donation against an active campaign.
func (h *FundraisingHandler) CreateDonation(c echo.Context) error {
	var req DonationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return apperr.JSON(c, err)
	}

	donation, err := h.service.RecordDonation(c.Request().Context(), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, donation)
}

// ListDonationsByCampaign returns a campaign's donation history.
func (h *FundraisingHandler) ListDonationsByCampaign(c echo.Context) error {
	campaignID, err := primitive.ObjectIDFromHex(c.Param("campaignId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid campaign ID format"})
	}

	donations, err := h.service.DonationsByCampaign(c.Request().Context(), campaignID)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, donations)
}

// ListDonationsByAlumni returns an alumni's donations, owner or admin only.
func (h *FundraisingHandler) ListDonationsByAlumni(c echo.Context) error {
	alumniID, err := primitive.ObjectIDFromHex(c.Param("alumniId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid alumni ID format"})
	}

	donations, err := h.service.DonationsByAlumni(c.Request().Context(), alumniID, claimsFrom(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, donations)
}

// Stats returns donation aggregates for the admin dashboard.
func (h *FundraisingHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
