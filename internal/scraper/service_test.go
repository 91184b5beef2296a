package scraper

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shoaib232002/Alumni-Project/internal/alumni"
	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
)

type fakeDirectory struct {
	records map[string]*alumni.Alumni
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{records: map[string]*alumni.Alumni{}}
}

func (f *fakeDirectory) FindByEmail(ctx context.Context, email string) (*alumni.Alumni, error) {
	a, ok := f.records[email]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (f *fakeDirectory) Create(ctx context.Context, a *alumni.Alumni) error {
	clone := *a
	f.records[a.Email] = &clone
	return nil
}

type linkedEvent struct {
	title    string
	audience string
	link     string
}

type fakeNotifier struct {
	events []linkedEvent
}

func (f *fakeNotifier) EmitWithLink(ctx context.Context, title, message, notifType, audience, link string) {
	f.events = append(f.events, linkedEvent{title: title, audience: audience, link: link})
}

func newTestService() (*ScraperService, *fakeDirectory, *fakeNotifier) {
	directory := newFakeDirectory()
	notifier := &fakeNotifier{}
	return NewScraperService(NewGeneratorWithSeed(1), directory, notifier), directory, notifier
}

func promoteRequest(email string) PromoteProfileRequest {
	return PromoteProfileRequest{
		Name:       "Rohan Patel",
		Email:      email,
		Source:     SourceLinkedIn,
		ProfileURL: "https://www.linkedin.com/in/rohan-patel",
	}
}

func TestScrapeDefaultsAndMeta(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Scrape(ScrapeRequest{Keywords: "computer science 2018", Source: SourceLinkedIn})
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if len(resp.Profiles) != defaultLimit {
		t.Fatalf("got %d profiles, want default %d", len(resp.Profiles), defaultLimit)
	}
	if resp.Meta.Count != defaultLimit || resp.Meta.Source != SourceLinkedIn {
		t.Fatalf("meta = %+v", resp.Meta)
	}
	if len(resp.Meta.Keywords) != 3 {
		t.Fatalf("keywords = %v", resp.Meta.Keywords)
	}
}

func TestScrapeEmptyKeywords(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Scrape(ScrapeRequest{Keywords: "  , ", Source: SourceLinkedIn})
	if !apperr.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected 400 for empty keywords, got %v", err)
	}
}

func TestPromoteCreatesUnverifiedRecord(t *testing.T) {
	svc, directory, notifier := newTestService()

	record, err := svc.Promote(context.Background(), promoteRequest("rohan@gmail.com"))
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if record.IsVerified {
		t.Fatal("scraped alumni must start unverified")
	}
	if record.Batch != time.Now().Year()-4 {
		t.Fatalf("default batch = %d", record.Batch)
	}
	if record.Degree != "Graduate" {
		t.Fatalf("default degree = %q", record.Degree)
	}
	if record.SocialLinks.LinkedIn == "" {
		t.Fatal("linkedin profile url not carried over")
	}
	if _, ok := directory.records["rohan@gmail.com"]; !ok {
		t.Fatal("record not persisted")
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.events))
	}
	e := notifier.events[0]
	if e.title != "New Alumni Added via Scraping" || e.audience != "admin" {
		t.Fatalf("unexpected notification %+v", e)
	}
	if !strings.HasPrefix(e.link, "/admin/alumni/") {
		t.Fatalf("link = %q", e.link)
	}
	if _, err := primitive.ObjectIDFromHex(strings.TrimPrefix(e.link, "/admin/alumni/")); err != nil {
		t.Fatalf("link does not end in a record id: %q", e.link)
	}
}

func TestPromoteNaukriSocialLink(t *testing.T) {
	svc, _, _ := newTestService()

	req := promoteRequest("naukri@gmail.com")
	req.Source = SourceNaukri
	req.ProfileURL = "https://www.naukri.com/mnjuser/profile/naukri-user"

	record, err := svc.Promote(context.Background(), req)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if record.SocialLinks.Naukri != req.ProfileURL || record.SocialLinks.LinkedIn != "" {
		t.Fatalf("social links = %+v", record.SocialLinks)
	}
}

func TestPromoteExplicitFieldsWin(t *testing.T) {
	svc, _, _ := newTestService()

	req := promoteRequest("explicit@gmail.com")
	req.Batch = 2015
	req.Degree = "M.Tech"

	record, err := svc.Promote(context.Background(), req)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if record.Batch != 2015 || record.Degree != "M.Tech" {
		t.Fatalf("defaults overwrote explicit fields: %+v", record)
	}
}

func TestPromoteInvalidEmail(t *testing.T) {
	svc, directory, _ := newTestService()

	for _, email := range []string{"", "no-at-sign", "a@b", "two @spaces.com"} {
		_, err := svc.Promote(context.Background(), promoteRequest(email))
		if !apperr.IsStatus(err, http.StatusBadRequest) {
			t.Fatalf("expected 400 for %q, got %v", email, err)
		}
	}
	if len(directory.records) != 0 {
		t.Fatal("invalid email produced a record")
	}
}

func TestPromoteDuplicateEmail(t *testing.T) {
	svc, _, notifier := newTestService()

	if _, err := svc.Promote(context.Background(), promoteRequest("dup@gmail.com")); err != nil {
		t.Fatalf("first promote: %v", err)
	}

	_, err := svc.Promote(context.Background(), promoteRequest("dup@gmail.com"))
	if !apperr.IsStatus(err, http.StatusConflict) {
		t.Fatalf("expected 409 for duplicate email, got %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("duplicate promote emitted a notification")
	}
}
