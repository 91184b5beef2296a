package scraper

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shoaib232002/Alumni-Project/internal/alumni"
	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
	"github.com/Shoaib232002/Alumni-Project/internal/notification"
)

// AlumniDirectory is the slice of the alumni store the promoter needs;
// *alumni.AlumniRepository implements it.
type AlumniDirectory interface {
	FindByEmail(ctx context.Context, email string) (*alumni.Alumni, error)
	Create(ctx context.Context, a *alumni.Alumni) error
}

// Notifier is the emit side of the notification service.
type Notifier interface {
	EmitWithLink(ctx context.Context, title, message, notifType, audience, link string)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const defaultLimit = 5

// ScraperService generates mock profiles and promotes them into the alumni
// directory.
type ScraperService struct {
	generator *Generator
	directory AlumniDirectory
	notifier  Notifier
}

func NewScraperService(generator *Generator, directory AlumniDirectory, notifier Notifier) *ScraperService {
	return &ScraperService{generator: generator, directory: directory, notifier: notifier}
}

// Scrape returns mock profiles for the keywords. The profiles are an opaque
// candidate data source; nothing is persisted here.
func (s *ScraperService) Scrape(req ScrapeRequest) (*ScrapeResponse, error) {
	keywords := SplitKeywords(req.Keywords)
	if len(keywords) == 0 {
		return nil, apperr.Validation("Keywords and source are required")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	profiles := s.generator.Generate(keywords, req.Source, limit)
	log.Printf("Generated %d %s profiles for keywords: %v", len(profiles), req.Source, keywords)

	return &ScrapeResponse{
		Profiles: profiles,
		Meta: ScrapeMeta{
			Source:   req.Source,
			Keywords: keywords,
			Limit:    limit,
			Count:    len(profiles),
		},
	}, nil
}

// Promote adds a scraped profile to the alumni directory as an unverified
// record and flags it for admin review.
func (s *ScraperService) Promote(ctx context.Context, req PromoteProfileRequest) (*alumni.Alumni, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, apperr.Validation("Invalid email format")
	}

	existing, err := s.directory.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Alumni with this email already exists")
	}

	batch := req.Batch
	if batch == 0 {
		// Estimated graduation year when the profile doesn't carry one.
		batch = time.Now().Year() - 4
	}
	degree := req.Degree
	if degree == "" {
		degree = "Graduate"
	}

	now := time.Now()
	record := &alumni.Alumni{
		ID:             primitive.NewObjectID(),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Batch:          batch,
		Degree:         degree,
		Occupation:     req.Designation,
		Company:        req.Company,
		Location:       req.Location,
		Bio:            req.Bio,
		ProfilePicture: req.Image,
		SocialLinks:    alumni.SocialLinks{LinkedIn: req.ProfileURL},
		IsVerified:     false, // Requires manual verification
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.Source == SourceNaukri {
		record.SocialLinks = alumni.SocialLinks{Naukri: req.ProfileURL}
	}

	if err := s.directory.Create(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("Alumni with this email already exists")
		}
		return nil, err
	}

	s.notifier.EmitWithLink(ctx, "New Alumni Added via Scraping",
		fmt.Sprintf("New alumni %s added from %s and needs verification", record.Name, req.Source),
		notification.TypeInfo, notification.AudienceAdmin,
		"/admin/alumni/"+record.ID.Hex())

	log.Printf("Added new alumni from %s: %s (%s)", req.Source, record.Name, record.Email)
	return record, nil
}
