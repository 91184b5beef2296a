package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is an audit/alert record produced by state-changing events
// (donations, verifications, campaign status changes). Records are only ever
// mutated to flip IsRead and are never deleted by normal flow.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Type      string             `bson:"type" json:"type"`         // info, success, warning, error
	Audience  string             `bson:"audience" json:"audience"` // admin or all
	IsRead    bool               `bson:"is_read" json:"isRead"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeError   = "error"

	AudienceAdmin = "admin"
	AudienceAll   = "all"
)
