package feedback

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
	"github.com/Shoaib232002/Alumni-Project/internal/notification"
)

// FeedbackStore is the persistence surface the service needs;
// *FeedbackRepository implements it against MongoDB.
type FeedbackStore interface {
	Create(ctx context.Context, f *Feedback) error
	FindAll(ctx context.Context, approvedOnly bool) ([]*Feedback, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Feedback, error)
	Approve(ctx context.Context, id primitive.ObjectID) (*Feedback, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// Notifier is the emit side of the notification service.
type Notifier interface {
	Emit(ctx context.Context, title, message, notifType, audience string)
}

type FeedbackService struct {
	repo     FeedbackStore
	notifier Notifier
}

func NewFeedbackService(repo FeedbackStore, notifier Notifier) *FeedbackService {
	return &FeedbackService{repo: repo, notifier: notifier}
}

// List returns feedback entries. Anonymous callers only see approved ones.
func (s *FeedbackService) List(ctx context.Context, authenticated bool) ([]*Feedback, error) {
	return s.repo.FindAll(ctx, !authenticated)
}

// Get returns one entry; unapproved entries are hidden from anonymous callers.
func (s *FeedbackService) Get(ctx context.Context, id primitive.ObjectID, authenticated bool) (*Feedback, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperr.NotFound("Feedback not found")
	}
	if !f.IsApproved && !authenticated {
		return nil, apperr.Forbidden("Access denied")
	}
	return f, nil
}

// Create records a new, unapproved testimonial. Either text or a video URL
// must be present.
func (s *FeedbackService) Create(ctx context.Context, req CreateFeedbackRequest) (*Feedback, error) {
	if req.Text == "" && req.VideoURL == "" {
		return nil, apperr.Validation("Either text or video URL is required")
	}

	f := &Feedback{
		ID:         primitive.NewObjectID(),
		Name:       req.AlumniName,
		Message:    req.Text,
		VideoURL:   req.VideoURL,
		Rating:     req.Rating,
		IsApproved: false,
		CreatedAt:  time.Now(),
	}
	// A malformed alumni reference is dropped rather than rejected; the
	// testimonial stands on its own.
	if req.AlumniID != "" {
		if id, err := primitive.ObjectIDFromHex(req.AlumniID); err == nil {
			f.AlumniID = &id
		}
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	s.notifier.Emit(ctx, "New Feedback", fmt.Sprintf("New feedback received from %s", f.Name), notification.TypeInfo, notification.AudienceAdmin)
	return f, nil
}

// Approve publishes a testimonial and announces it.
func (s *FeedbackService) Approve(ctx context.Context, id primitive.ObjectID) (*Feedback, error) {
	f, err := s.repo.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperr.NotFound("Feedback not found")
	}

	s.notifier.Emit(ctx, "Feedback Approved", fmt.Sprintf("Feedback from %s has been approved", f.Name), notification.TypeSuccess, notification.AudienceAll)
	return f, nil
}

func (s *FeedbackService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Feedback not found")
	}
	return nil
}
