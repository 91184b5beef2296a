package feedback

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is an alumni testimonial, text or video. Entries are created
// unapproved and only become publicly visible once an admin approves them.
type Feedback struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name       string              `bson:"name" json:"name"`
	AlumniID   *primitive.ObjectID `bson:"alumni_id,omitempty" json:"alumniId,omitempty"`
	Message    string              `bson:"message,omitempty" json:"message,omitempty"`
	VideoURL   string              `bson:"video_url,omitempty" json:"videoUrl,omitempty"`
	Rating     int                 `bson:"rating,omitempty" json:"rating,omitempty"`
	IsApproved bool                `bson:"is_approved" json:"isApproved"`
	CreatedAt  time.Time           `bson:"created_at" json:"createdAt"`
}

type CreateFeedbackRequest struct {
	AlumniName string `json:"alumniName" validate:"required"`
	AlumniID   string `json:"alumniId"`
	Text       string `json:"text"`
	VideoURL   string `json:"videoUrl"`
	Rating     int    `json:"rating" validate:"omitempty,min=1,max=5"`
}
