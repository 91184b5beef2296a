package notification

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
	"github.com/Shoaib232002/Alumni-Project/internal/config"
)

type fakeStore struct {
	records   map[primitive.ObjectID]*Notification
	createErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[primitive.ObjectID]*Notification{}}
}

func (f *fakeStore) Create(ctx context.Context, n *Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	clone := *n
	f.records[n.ID] = &clone
	return nil
}

func (f *fakeStore) ListByAudiences(ctx context.Context, audiences []string) ([]*Notification, error) {
	allowed := map[string]bool{}
	for _, a := range audiences {
		allowed[a] = true
	}
	out := []*Notification{}
	for _, n := range f.records {
		if allowed[n.Audience] {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*Notification, error) {
	n, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	clone := *n
	return &clone, nil
}

func (f *fakeStore) MarkRead(ctx context.Context, id primitive.ObjectID) (*Notification, error) {
	n, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	n.IsRead = true
	clone := *n
	return &clone, nil
}

func (f *fakeStore) MarkAllRead(ctx context.Context, audiences []string) (int64, error) {
	allowed := map[string]bool{}
	for _, a := range audiences {
		allowed[a] = true
	}
	var count int64
	for _, n := range f.records {
		if allowed[n.Audience] && !n.IsRead {
			n.IsRead = true
			count++
		}
	}
	return count, nil
}

func newTestService() (*NotificationService, *fakeStore) {
	store := newFakeStore()
	// Nil email service: delivery disabled, Emit only persists.
	return NewNotificationService(store, nil, &config.Config{}), store
}

func TestEmitPersistsRecord(t *testing.T) {
	svc, store := newTestService()

	svc.Emit(context.Background(), "New Donation", "donation received", TypeSuccess, AudienceAdmin)

	if len(store.records) != 1 {
		t.Fatalf("expected one record, got %d", len(store.records))
	}
	for _, n := range store.records {
		if n.Title != "New Donation" || n.Audience != AudienceAdmin || n.IsRead {
			t.Fatalf("unexpected record %+v", n)
		}
	}
}

func TestEmitSwallowsStoreErrors(t *testing.T) {
	svc, store := newTestService()
	store.createErr = errors.New("mongo down")

	// Emit must not panic or propagate; the triggering operation never sees
	// notification failures.
	svc.Emit(context.Background(), "New Donation", "donation received", TypeSuccess, AudienceAdmin)

	if len(store.records) != 0 {
		t.Fatal("record persisted despite store error")
	}
}

func TestEmitWithLink(t *testing.T) {
	svc, store := newTestService()

	svc.EmitWithLink(context.Background(), "New Alumni Added via Scraping", "added", TypeInfo, AudienceAdmin, "/admin/alumni/abc")

	for _, n := range store.records {
		if n.Link != "/admin/alumni/abc" {
			t.Fatalf("link not persisted: %+v", n)
		}
	}
}

func TestListAudienceFiltering(t *testing.T) {
	svc, _ := newTestService()

	svc.Emit(context.Background(), "admin only", "m", TypeInfo, AudienceAdmin)
	svc.Emit(context.Background(), "everyone", "m", TypeInfo, AudienceAll)

	adminView, err := svc.List(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(adminView) != 2 {
		t.Fatalf("admin saw %d notifications, want 2", len(adminView))
	}

	alumniView, err := svc.List(context.Background(), "alumni")
	if err != nil {
		t.Fatalf("alumni list: %v", err)
	}
	if len(alumniView) != 1 || alumniView[0].Audience != AudienceAll {
		t.Fatalf("alumni view leaked admin notifications: %+v", alumniView)
	}
}

func TestMarkReadAdminGuard(t *testing.T) {
	svc, store := newTestService()

	svc.Emit(context.Background(), "admin only", "m", TypeInfo, AudienceAdmin)
	var adminID primitive.ObjectID
	for id := range store.records {
		adminID = id
	}

	_, err := svc.MarkRead(context.Background(), adminID, "alumni")
	if !apperr.IsStatus(err, http.StatusForbidden) {
		t.Fatalf("expected 403 for alumni on admin notification, got %v", err)
	}
	if store.records[adminID].IsRead {
		t.Fatal("read flag flipped by rejected request")
	}

	n, err := svc.MarkRead(context.Background(), adminID, "admin")
	if err != nil {
		t.Fatalf("admin mark read: %v", err)
	}
	if !n.IsRead {
		t.Fatal("read flag not set")
	}

	_, err = svc.MarkRead(context.Background(), primitive.NewObjectID(), "admin")
	if !apperr.IsStatus(err, http.StatusNotFound) {
		t.Fatalf("expected 404 for unknown id, got %v", err)
	}
}

func TestMarkAllReadScopedToRole(t *testing.T) {
	svc, store := newTestService()

	svc.Emit(context.Background(), "admin only", "m", TypeInfo, AudienceAdmin)
	svc.Emit(context.Background(), "everyone", "m", TypeInfo, AudienceAll)

	count, err := svc.MarkAllRead(context.Background(), "alumni")
	if err != nil {
		t.Fatalf("alumni mark all: %v", err)
	}
	if count != 1 {
		t.Fatalf("alumni marked %d, want 1", count)
	}
	for _, n := range store.records {
		if n.Audience == AudienceAdmin && n.IsRead {
			t.Fatal("alumni flipped an admin notification")
		}
	}

	count, err = svc.MarkAllRead(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin mark all: %v", err)
	}
	if count != 1 {
		t.Fatalf("admin marked %d remaining, want 1", count)
	}
}
