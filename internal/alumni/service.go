package alumni

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
	"github.com/Shoaib232002/Alumni-Project/internal/auth"
	"github.com/Shoaib232002/Alumni-Project/internal/notification"
)

// AlumniStore is the persistence surface the service needs; *AlumniRepository
// implements it against MongoDB.
type AlumniStore interface {
	Create(ctx context.Context, a *Alumni) error
	FindAll(ctx context.Context) ([]*Alumni, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Alumni, error)
	FindByEmail(ctx context.Context, email string) (*Alumni, error)
	FindByBatch(ctx context.Context, batch int) ([]*Alumni, error)
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*Alumni, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*Alumni, error)
}

// Notifier is the emit side of the notification service. Emission never
// fails the triggering operation.
type Notifier interface {
	Emit(ctx context.Context, title, message, notifType, audience string)
	EmitWithLink(ctx context.Context, title, message, notifType, audience, link string)
}

// AlumniService owns the directory business rules.
type AlumniService struct {
	repo     AlumniStore
	notifier Notifier
}

func NewAlumniService(repo AlumniStore, notifier Notifier) *AlumniService {
	return &AlumniService{repo: repo, notifier: notifier}
}

func (s *AlumniService) List(ctx context.Context) ([]*Alumni, error) {
	return s.repo.FindAll(ctx)
}

func (s *AlumniService) Get(ctx context.Context, id primitive.ObjectID) (*Alumni, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Alumni not found")
	}
	return a, nil
}

func (s *AlumniService) ListByBatch(ctx context.Context, batch int) ([]*Alumni, error) {
	return s.repo.FindByBatch(ctx, batch)
}

// Create adds a directory entry. Records added by an admin are auto-verified;
// everything else waits for explicit verification. Duplicate emails are
// rejected.
func (s *AlumniService) Create(ctx context.Context, req CreateAlumniRequest, creatorRole string) (*Alumni, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(http.StatusBadRequest, "Alumni with this email already exists")
	}

	now := time.Now()
	a := &Alumni{
		ID:             primitive.NewObjectID(),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Batch:          req.Batch,
		Degree:         req.Degree,
		Occupation:     req.Occupation,
		Company:        req.Company,
		Location:       req.Location,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		SocialLinks:    req.SocialLinks,
		IsVerified:     creatorRole == auth.RoleAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.New(http.StatusBadRequest, "Alumni with this email already exists")
		}
		return nil, err
	}

	s.notifier.Emit(ctx, "New Alumni Added", fmt.Sprintf("New alumni %s added", a.Name), notification.TypeInfo, notification.AudienceAdmin)
	return a, nil
}

// Update applies a partial update. Only an admin or the record owner (claims
// email matching the record email) may update.
func (s *AlumniService) Update(ctx context.Context, id primitive.ObjectID, req UpdateAlumniRequest, claims *auth.JWTClaims) (*Alumni, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("Alumni not found")
	}
	if !claims.IsAdmin() && claims.Email != existing.Email {
		return nil, apperr.Forbidden("Not authorized to update this alumni")
	}

	patch := bson.M{}
	setString := func(key string, v *string) {
		if v != nil {
			patch[key] = *v
		}
	}
	setString("name", req.Name)
	setString("email", req.Email)
	setString("phone", req.Phone)
	setString("degree", req.Degree)
	setString("occupation", req.Occupation)
	setString("company", req.Company)
	setString("location", req.Location)
	setString("bio", req.Bio)
	setString("profile_picture", req.ProfilePicture)
	if req.Batch != nil {
		patch["batch"] = *req.Batch
	}
	if req.SocialLinks != nil {
		patch["social_links"] = *req.SocialLinks
	}
	if len(patch) == 0 {
		return existing, nil
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.New(http.StatusBadRequest, "Alumni with this email already exists")
		}
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("Alumni not found")
	}
	return updated, nil
}

// Delete removes a directory entry and notifies admins.
func (s *AlumniService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return apperr.NotFound("Alumni not found")
	}

	s.notifier.Emit(ctx, "Alumni Deleted", fmt.Sprintf("Alumni %s has been deleted", deleted.Name), notification.TypeInfo, notification.AudienceAdmin)
	return nil
}

// Verify marks an alumni as verified and announces it.
func (s *AlumniService) Verify(ctx context.Context, id primitive.ObjectID) (*Alumni, error) {
	updated, err := s.repo.Update(ctx, id, bson.M{"is_verified": true})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("Alumni not found")
	}

	s.notifier.Emit(ctx, "Alumni Verified", fmt.Sprintf("Alumni %s has been verified", updated.Name), notification.TypeSuccess, notification.AudienceAll)
	return updated, nil
}
