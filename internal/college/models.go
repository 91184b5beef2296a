package college

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollegeInfo is a singleton document. A fixed singleton key plus a unique
// index guarantees the collection never holds more than one record, and
// updates go through a single atomic upsert.
type CollegeInfo struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SingletonKey     string             `bson:"singleton_key" json:"-"`
	Name             string             `bson:"name" json:"name"`
	Address          string             `bson:"address" json:"address"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email            string             `bson:"email,omitempty" json:"email,omitempty"`
	Website          string             `bson:"website" json:"website"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	FoundedYear      int                `bson:"founded_year" json:"foundedYear"`
	TotalAlumni      int                `bson:"total_alumni" json:"totalAlumni"`
	TotalFundsRaised float64            `bson:"total_funds_raised" json:"totalFundsRaised"`
	Logo             string             `bson:"logo,omitempty" json:"logo,omitempty"`
	SocialLinks      SocialLinks        `bson:"social_links" json:"socialLinks"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

type SocialLinks struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

const singletonKey = "college_info"

type UpsertCollegeInfoRequest struct {
	Name             string      `json:"name" validate:"required"`
	Address          string      `json:"address" validate:"required"`
	Phone            string      `json:"phone"`
	Email            string      `json:"email" validate:"omitempty,email"`
	Website          string      `json:"website" validate:"required"`
	Description      string      `json:"description"`
	FoundedYear      int         `json:"foundedYear" validate:"required,gte=1000"`
	TotalAlumni      int         `json:"totalAlumni" validate:"omitempty,gte=0"`
	TotalFundsRaised float64     `json:"totalFundsRaised" validate:"omitempty,gte=0"`
	Logo             string      `json:"logo"`
	SocialLinks      SocialLinks `json:"socialLinks"`
}
