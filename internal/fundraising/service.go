package fundraising

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
	"github.com/Shoaib232002/Alumni-Project/internal/auth"
	"github.com/Shoaib232002/Alumni-Project/internal/notification"
)

// Store is the persistence surface the ledger needs; *FundraisingRepository
// implements it against MongoDB.
type Store interface {
	CreateCampaign(ctx context.Context, c *Campaign) error
	FindAllCampaigns(ctx context.Context) ([]*Campaign, error)
	FindActiveCampaigns(ctx context.Context) ([]*Campaign, error)
	FindExpiredActiveCampaigns(ctx context.Context, now time.Time) ([]*Campaign, error)
	FindCampaignByID(ctx context.Context, id primitive.ObjectID) (*Campaign, error)
	UpdateCampaign(ctx context.Context, id primitive.ObjectID, patch bson.M) (*Campaign, error)
	IncrementRaised(ctx context.Context, id primitive.ObjectID, amount float64) (*Campaign, error)
	DeleteCampaign(ctx context.Context, id primitive.ObjectID) (bool, error)

	InsertDonation(ctx context.Context, d *Donation) error
	FindDonationsByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]*Donation, error)
	FindDonationsByAlumni(ctx context.Context, alumniID primitive.ObjectID) ([]*Donation, error)
	FindAllDonations(ctx context.Context) ([]*Donation, error)
	FindRecentDonations(ctx context.Context, limit int64) ([]*Donation, error)
	HasDonations(ctx context.Context, campaignID primitive.ObjectID) (bool, error)
}

// Notifier is the emit side of the notification service.
type Notifier interface {
	Emit(ctx context.Context, title, message, notifType, audience string)
}

// FundraisingService keeps Campaign.Raised consistent with completed
// donations and gates new donations against campaign eligibility.
type FundraisingService struct {
	repo     Store
	notifier Notifier
	now      func() time.Time
}

func NewFundraisingService(repo Store, notifier Notifier) *FundraisingService {
	return &FundraisingService{repo: repo, notifier: notifier, now: time.Now}
}

func (s *FundraisingService) derive(campaigns ...*Campaign) {
	now := s.now()
	for _, c := range campaigns {
		if c != nil {
			c.Derive(now)
		}
	}
}

func (s *FundraisingService) ListCampaigns(ctx context.Context) ([]*Campaign, error) {
	campaigns, err := s.repo.FindAllCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	s.derive(campaigns...)
	return campaigns, nil
}

func (s *FundraisingService) ListActiveCampaigns(ctx context.Context) ([]*Campaign, error) {
	campaigns, err := s.repo.FindActiveCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	s.derive(campaigns...)
	return campaigns, nil
}

func (s *FundraisingService) GetCampaign(ctx context.Context, id primitive.ObjectID) (*Campaign, error) {
	c, err := s.repo.FindCampaignByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("Campaign not found")
	}
	s.derive(c)
	return c, nil
}

// CreateCampaign starts a new drive with a zero ledger and announces it.
func (s *FundraisingService) CreateCampaign(ctx context.Context, req CreateCampaignRequest, claims *auth.JWTClaims) (*Campaign, error) {
	now := s.now()
	c := &Campaign{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Goal:        req.Goal,
		Raised:      0,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Image:       req.Image,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if claims != nil {
		if creator, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
			c.CreatedBy = creator
		}
	}
	if err := s.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}

	s.notifier.Emit(ctx, "New Campaign", fmt.Sprintf("New fundraising campaign created: %s", c.Title), notification.TypeInfo, notification.AudienceAll)
	s.derive(c)
	return c, nil
}

// UpdateCampaign applies a partial update. Raised cannot be patched here; the
// only mutation path for it is RecordDonation.
func (s *FundraisingService) UpdateCampaign(ctx context.Context, id primitive.ObjectID, req UpdateCampaignRequest) (*Campaign, error) {
	existing, err := s.repo.FindCampaignByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("Campaign not found")
	}

	patch := bson.M{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Goal != nil {
		patch["goal"] = *req.Goal
	}
	if req.StartDate != nil {
		patch["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		patch["end_date"] = *req.EndDate
	}
	if req.Image != nil {
		patch["image"] = *req.Image
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}
	if len(patch) == 0 {
		s.derive(existing)
		return existing, nil
	}

	updated, err := s.repo.UpdateCampaign(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("Campaign not found")
	}
	s.derive(updated)
	return updated, nil
}

// DeleteCampaign removes a campaign unless donations reference it. Campaigns
// with donation history can only be deactivated, keeping donation referential
// integrity intact.
func (s *FundraisingService) DeleteCampaign(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.repo.FindCampaignByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Campaign not found")
	}

	hasDonations, err := s.repo.HasDonations(ctx, id)
	if err != nil {
		return err
	}
	if hasDonations {
		return apperr.New(http.StatusBadRequest, "Cannot delete campaign with existing donations. Consider marking it as inactive instead.")
	}

	deleted, err := s.repo.DeleteCampaign(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Campaign not found")
	}
	return nil
}

// ToggleStatus flips a campaign between active and inactive and notifies
// admins of the transition.
func (s *FundraisingService) ToggleStatus(ctx context.Context, id primitive.ObjectID) (*Campaign, error) {
	existing, err := s.repo.FindCampaignByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("Campaign not found")
	}

	updated, err := s.repo.UpdateCampaign(ctx, id, bson.M{"is_active": !existing.IsActive})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("Campaign not found")
	}

	statusMessage := "deactivated"
	if updated.IsActive {
		statusMessage = "activated"
	}
	s.notifier.Emit(ctx, "Campaign Status Changed",
		fmt.Sprintf("Fundraising campaign %q has been %s", updated.Title, statusMessage),
		notification.TypeInfo, notification.AudienceAdmin)

	s.derive(updated)
	return updated, nil
}

// RecordDonation persists a settled donation and applies it to the campaign
// ledger. The raised total moves through a single atomic increment keyed to
// this donation, so replays and concurrent donations cannot double-count or
// lose updates. The goal-reached notification fires on every donation that
// leaves the campaign at or above goal.
func (s *FundraisingService) RecordDonation(ctx context.Context, req DonationRequest) (*Donation, error) {
	if req.Amount <= 0 {
		return nil, apperr.InvalidAmount()
	}

	campaignID, err := primitive.ObjectIDFromHex(req.CampaignID)
	if err != nil {
		return nil, apperr.Validation("Invalid campaign ID format")
	}

	campaign, err := s.repo.FindCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperr.NotFound("Campaign not found")
	}
	if !campaign.IsActive {
		return nil, apperr.InactiveCampaign()
	}

	var alumniID *primitive.ObjectID
	if req.AlumniID != "" {
		id, err := primitive.ObjectIDFromHex(req.AlumniID)
		if err != nil {
			return nil, apperr.Validation("Invalid alumni ID format")
		}
		alumniID = &id
	}

	donation := &Donation{
		ID:            primitive.NewObjectID(),
		CampaignID:    campaignID,
		AlumniID:      alumniID,
		DonorName:     req.Name,
		DonorEmail:    req.Email,
		Amount:        req.Amount,
		Message:       req.Message,
		IsAnonymous:   req.IsAnonymous,
		PaymentStatus: PaymentCompleted,
		PaymentMethod: "direct",
		TransactionID: uuid.NewString(),
		CreatedAt:     s.now(),
	}
	if err := s.repo.InsertDonation(ctx, donation); err != nil {
		return nil, err
	}

	updated, err := s.repo.IncrementRaised(ctx, campaignID, donation.Amount)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("Campaign not found")
	}

	donorName := req.Name
	if req.IsAnonymous {
		donorName = "Anonymous donor"
	}
	s.notifier.Emit(ctx, "New Donation",
		fmt.Sprintf("New donation of $%v received from %s for campaign %q", donation.Amount, donorName, campaign.Title),
		notification.TypeSuccess, notification.AudienceAdmin)

	if updated.Raised >= updated.Goal {
		s.notifier.Emit(ctx, "Campaign Goal Reached",
			fmt.Sprintf("Fundraising goal reached for campaign %q!", campaign.Title),
			notification.TypeSuccess, notification.AudienceAll)
	}

	return donation, nil
}

// DonationsByCampaign returns a campaign's donations, newest first.
func (s *FundraisingService) DonationsByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]*Donation, error) {
	return s.repo.FindDonationsByCampaign(ctx, campaignID)
}

// DonationsByAlumni returns an alumni's donations. Only an admin or the
// alumni themselves may view them.
func (s *FundraisingService) DonationsByAlumni(ctx context.Context, alumniID primitive.ObjectID, claims *auth.JWTClaims) ([]*Donation, error) {
	if !claims.IsAdmin() && claims.UserID != alumniID.Hex() {
		return nil, apperr.Forbidden("Not authorized to view these donations")
	}
	return s.repo.FindDonationsByAlumni(ctx, alumniID)
}

// Stats aggregates the donation ledger for the admin dashboard.
func (s *FundraisingService) Stats(ctx context.Context) (*DonationStats, error) {
	donations, err := s.repo.FindAllDonations(ctx)
	if err != nil {
		return nil, err
	}

	amounts := make([]float64, 0, len(donations))
	var total float64
	for _, d := range donations {
		amounts = append(amounts, d.Amount)
		total += d.Amount
	}

	var mean, median float64
	if len(amounts) > 0 {
		mean, _ = stats.Mean(amounts)
		median, _ = stats.Median(amounts)
	}

	recent, err := s.repo.FindRecentDonations(ctx, 10)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.repo.FindAllCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]*CampaignSummary, 0, len(campaigns))
	for _, c := range campaigns {
		summaries = append(summaries, &CampaignSummary{ID: c.ID, Title: c.Title, Goal: c.Goal, Raised: c.Raised})
	}

	return &DonationStats{
		TotalDonations:  len(donations),
		TotalAmount:     total,
		AverageDonation: mean,
		MedianDonation:  median,
		RecentDonations: recent,
		Campaigns:       summaries,
	}, nil
}

// DeactivateExpired flips every active campaign whose end date has passed and
// emits the same status-change notification as a manual toggle. Returns the
// number of campaigns deactivated.
func (s *FundraisingService) DeactivateExpired(ctx context.Context) (int, error) {
	expired, err := s.repo.FindExpiredActiveCampaigns(ctx, s.now())
	if err != nil {
		return 0, err
	}

	count := 0
	for _, c := range expired {
		updated, err := s.repo.UpdateCampaign(ctx, c.ID, bson.M{"is_active": false})
		if err != nil || updated == nil {
			continue
		}
		count++
		s.notifier.Emit(ctx, "Campaign Status Changed",
			fmt.Sprintf("Fundraising campaign %q has been deactivated", updated.Title),
			notification.TypeInfo, notification.AudienceAdmin)
	}
	return count, nil
}
