package alumni

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Alumni is a directory entry for a former student. Email is unique across
// the collection (enforced by index). IsVerified flips only through the
// explicit admin verify action, or at creation time when an admin adds the
// record directly.
type Alumni struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Batch          int                `bson:"batch" json:"batch"` // graduation year
	Degree         string             `bson:"degree" json:"degree"`
	Occupation     string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Company        string             `bson:"company,omitempty" json:"company,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture string             `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
	SocialLinks    SocialLinks        `bson:"social_links" json:"socialLinks"`
	IsVerified     bool               `bson:"is_verified" json:"isVerified"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

type SocialLinks struct {
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Naukri    string `bson:"naukri,omitempty" json:"naukri,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Website   string `bson:"website,omitempty" json:"website,omitempty"`
}

// UpdateAlumniRequest is a partial update; nil fields are left untouched.
// Verification is deliberately absent, it has its own admin-only operation.
type UpdateAlumniRequest struct {
	Name           *string      `json:"name"`
	Email          *string      `json:"email" validate:"omitempty,email"`
	Phone          *string      `json:"phone"`
	Batch          *int         `json:"batch" validate:"omitempty,gte=1900"`
	Degree         *string      `json:"degree"`
	Occupation     *string      `json:"occupation"`
	Company        *string      `json:"company"`
	Location       *string      `json:"location"`
	Bio            *string      `json:"bio"`
	ProfilePicture *string      `json:"profilePicture"`
	SocialLinks    *SocialLinks `json:"socialLinks"`
}

// CreateAlumniRequest carries the fields accepted when adding an alumni.
type CreateAlumniRequest struct {
	Name           string      `json:"name" validate:"required"`
	Email          string      `json:"email" validate:"required,email"`
	Phone          string      `json:"phone"`
	Batch          int         `json:"batch" validate:"required,gte=1900"`
	Degree         string      `json:"degree" validate:"required"`
	Occupation     string      `json:"occupation"`
	Company        string      `json:"company"`
	Location       string      `json:"location"`
	Bio            string      `json:"bio"`
	ProfilePicture string      `json:"profilePicture"`
	SocialLinks    SocialLinks `json:"socialLinks"`
}
