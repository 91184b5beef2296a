package fundraising

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign is a fundraising drive. Raised is the running sum of completed
// donation amounts and is only ever mutated through donation recording; the
// update path strips it from external patches.
type Campaign struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Goal        float64            `bson:"goal" json:"goal"`
	Raised      float64            `bson:"raised" json:"raised"`
	StartDate   time.Time          `bson:"start_date" json:"startDate"`
	EndDate     time.Time          `bson:"end_date" json:"endDate"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedBy   primitive.ObjectID `bson:"created_by,omitempty" json:"createdBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`

	// Derived on read, never persisted.
	Progress  int  `bson:"-" json:"progress"`
	IsExpired bool `bson:"-" json:"isExpired"`
}

// Derive fills the computed fields from the persisted ones.
func (c *Campaign) Derive(now time.Time) {
	if c.Goal > 0 {
		c.Progress = int(math.Min(math.Round(c.Raised/c.Goal*100), 100))
	} else {
		c.Progress = 0
	}
	c.IsExpired = now.After(c.EndDate)
}

// Donation is immutable once created except for its payment status. This
// system assumes immediate settlement, so donations are persisted completed.
type Donation struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	CampaignID    primitive.ObjectID  `bson:"campaign_id" json:"campaignId"`
	AlumniID      *primitive.ObjectID `bson:"alumni_id,omitempty" json:"alumniId,omitempty"`
	DonorName     string              `bson:"donor_name" json:"donorName"`
	DonorEmail    string              `bson:"donor_email" json:"donorEmail"`
	Amount        float64             `bson:"amount" json:"amount"`
	Message       string              `bson:"message,omitempty" json:"message,omitempty"`
	IsAnonymous   bool                `bson:"is_anonymous" json:"isAnonymous"`
	PaymentStatus string              `bson:"payment_status" json:"paymentStatus"` // pending, completed, failed
	PaymentMethod string              `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	TransactionID string              `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
}

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type CreateCampaignRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Goal        float64   `json:"goal" validate:"required,gt=0"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required"`
	Image       string    `json:"image"`
}

// UpdateCampaignRequest is a partial update. Raised is deliberately absent:
// the ledger is the only writer of that field.
type UpdateCampaignRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Goal        *float64   `json:"goal" validate:"omitempty,gt=0"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Image       *string    `json:"image"`
	IsActive    *bool      `json:"isActive"`
}

type DonationRequest struct {
	CampaignID  string  `json:"campaignId" validate:"required"`
	AlumniID    string  `json:"alumniId"`
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Amount      float64 `json:"amount"`
	Message     string  `json:"message"`
	IsAnonymous bool    `json:"isAnonymous"`
}

// DonationStats is the admin dashboard aggregate.
type DonationStats struct {
	TotalDonations  int                `json:"totalDonations"`
	TotalAmount     float64            `json:"totalAmount"`
	AverageDonation float64            `json:"averageDonation"`
	MedianDonation  float64            `json:"medianDonation"`
	RecentDonations []*Donation        `json:"recentDonations"`
	Campaigns       []*CampaignSummary `json:"campaigns"`
}

type CampaignSummary struct {
	ID     primitive.ObjectID `json:"_id"`
	Title  string             `json:"title"`
	Goal   float64            `json:"goal"`
	Raised float64            `json:"raised"`
}
