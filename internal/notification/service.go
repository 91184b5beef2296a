package notification

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
	"github.com/Shoaib232002/Alumni-Project/internal/config"
)

// NotificationStore is the persistence surface the service needs;
// *NotificationRepository implements it against MongoDB.
type NotificationStore interface {
	Create(ctx context.Context, n *Notification) error
	ListByAudiences(ctx context.Context, audiences []string) ([]*Notification, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (*Notification, error)
	MarkAllRead(ctx context.Context, audiences []string) (int64, error)
}

// NotificationService creates and serves notification records.
type NotificationService struct {
	repo         NotificationStore
	emailService *config.EmailService
	adminEmail   string
}

func NewNotificationService(repo NotificationStore, emailService *config.EmailService, cfg *config.Config) *NotificationService {
	return &NotificationService{repo: repo, emailService: emailService, adminEmail: cfg.AdminEmail}
}

// Emit records a notification. It is fire-and-forget: a failed write is
// logged and must never fail the donation/alumni/campaign operation that
// triggered it, so no error is returned. Admin-audience notifications are
// additionally copied to the configured admin mailbox when email delivery is
// enabled.
func (s *NotificationService) Emit(ctx context.Context, title, message, notifType, audience string) {
	s.EmitWithLink(ctx, title, message, notifType, audience, "")
}

// EmitWithLink is Emit with an optional in-app link attached to the record.
func (s *NotificationService) EmitWithLink(ctx context.Context, title, message, notifType, audience, link string) {
	n := &Notification{
		Title:     title,
		Message:   message,
		Type:      notifType,
		Audience:  audience,
		IsRead:    false,
		Link:      link,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("Failed to create notification %q: %v", title, err)
		return
	}

	if audience == AudienceAdmin && s.emailService.Enabled() && s.adminEmail != "" {
		if err := s.emailService.SendEmail(s.adminEmail, title, message); err != nil {
			log.Printf("Failed to email notification %q to admin: %v", title, err)
		}
	}
}

// audiencesFor maps a caller role to the audiences it may see.
func audiencesFor(role string) []string {
	if role == "admin" {
		return []string{AudienceAdmin, AudienceAll}
	}
	return []string{AudienceAll}
}

// List returns the notifications visible to the given role, newest first.
func (s *NotificationService) List(ctx context.Context, role string) ([]*Notification, error) {
	return s.repo.ListByAudiences(ctx, audiencesFor(role))
}

// MarkRead flips the read flag on one notification. Admin-audience records
// are only reachable by admins.
func (s *NotificationService) MarkRead(ctx context.Context, id primitive.ObjectID, role string) (*Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperr.NotFound("Notification not found")
	}
	if n.Audience == AudienceAdmin && role != "admin" {
		return nil, apperr.Forbidden("Not authorized to access this notification")
	}
	updated, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("Notification not found")
	}
	return updated, nil
}

// MarkAllRead flips the read flag on every notification visible to the role.
func (s *NotificationService) MarkAllRead(ctx context.Context, role string) (int64, error) {
	return s.repo.MarkAllRead(ctx, audiencesFor(role))
}
