package alumni

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
	"github.com/Shoaib232002/Alumni-Project/internal/auth"
)

type fakeStore struct {
	records map[primitive.ObjectID]*Alumni
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[primitive.ObjectID]*Alumni{}}
}

func (f *fakeStore) Create(ctx context.Context, a *Alumni) error {
	clone := *a
	f.records[a.ID] = &clone
	return nil
}

func (f *fakeStore) FindAll(ctx context.Context) ([]*Alumni, error) {
	out := []*Alumni{}
	for _, a := range f.records {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*Alumni, error) {
	a, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (f *fakeStore) FindByEmail(ctx context.Context, email string) (*Alumni, error) {
	for _, a := range f.records {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByBatch(ctx context.Context, batch int) ([]*Alumni, error) {
	out := []*Alumni{}
	for _, a := range f.records {
		if a.Batch == batch {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeStore) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*Alumni, error) {
	a, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	for key, value := range patch {
		switch key {
		case "name":
			a.Name = value.(string)
		case "email":
			a.Email = value.(string)
		case "phone":
			a.Phone = value.(string)
		case "batch":
			a.Batch = value.(int)
		case "degree":
			a.Degree = value.(string)
		case "occupation":
			a.Occupation = value.(string)
		case "company":
			a.Company = value.(string)
		case "location":
			a.Location = value.(string)
		case "bio":
			a.Bio = value.(string)
		case "profile_picture":
			a.ProfilePicture = value.(string)
		case "social_links":
			a.SocialLinks = value.(SocialLinks)
		case "is_verified":
			a.IsVerified = value.(bool)
		}
	}
	a.UpdatedAt = time.Now()
	clone := *a
	return &clone, nil
}

func (f *fakeStore) Delete(ctx context.Context, id primitive.ObjectID) (*Alumni, error) {
	a, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	delete(f.records, id)
	return a, nil
}

type emitted struct {
	title    string
	audience string
}

type fakeNotifier struct {
	events []emitted
}

func (f *fakeNotifier) Emit(ctx context.Context, title, message, notifType, audience string) {
	f.events = append(f.events, emitted{title: title, audience: audience})
}

func (f *fakeNotifier) EmitWithLink(ctx context.Context, title, message, notifType, audience, link string) {
	f.events = append(f.events, emitted{title: title, audience: audience})
}

func newTestService() (*AlumniService, *fakeStore, *fakeNotifier) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	return NewAlumniService(store, notifier), store, notifier
}

func createRequest(email string) CreateAlumniRequest {
	return CreateAlumniRequest{
		Name:   "Priya Sharma",
		Email:  email,
		Batch:  2018,
		Degree: "B.Tech Computer Science",
	}
}

func TestCreateVerificationByRole(t *testing.T) {
	tests := []struct {
		role     string
		verified bool
	}{
		{auth.RoleAdmin, true},
		{auth.RoleAlumni, false},
		{"", false},
	}
	for _, tt := range tests {
		svc, _, _ := newTestService()
		a, err := svc.Create(context.Background(), createRequest("priya@example.com"), tt.role)
		if err != nil {
			t.Fatalf("create as %q: %v", tt.role, err)
		}
		if a.IsVerified != tt.verified {
			t.Fatalf("role %q: verified = %v, want %v", tt.role, a.IsVerified, tt.verified)
		}
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc, _, notifier := newTestService()

	if _, err := svc.Create(context.Background(), createRequest("priya@example.com"), auth.RoleAdmin); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(context.Background(), createRequest("priya@example.com"), auth.RoleAdmin)
	if !apperr.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected 400 for duplicate email, got %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.events))
	}
	if notifier.events[0].title != "New Alumni Added" {
		t.Fatalf("unexpected notification %q", notifier.events[0].title)
	}
}

func TestUpdateOwnership(t *testing.T) {
	svc, store, _ := newTestService()
	a, err := svc.Create(context.Background(), createRequest("priya@example.com"), auth.RoleAlumni)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bio := "Software engineer in Pune"

	// The owner is matched by claims email.
	owner := &auth.JWTClaims{UserID: primitive.NewObjectID().Hex(), Email: "priya@example.com", Role: auth.RoleAlumni}
	updated, err := svc.Update(context.Background(), a.ID, UpdateAlumniRequest{Bio: &bio}, owner)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Bio != bio {
		t.Fatalf("bio not applied: %q", updated.Bio)
	}

	// Admins may update anyone.
	admin := &auth.JWTClaims{UserID: primitive.NewObjectID().Hex(), Email: "admin@example.com", Role: auth.RoleAdmin}
	if _, err := svc.Update(context.Background(), a.ID, UpdateAlumniRequest{Bio: &bio}, admin); err != nil {
		t.Fatalf("admin update: %v", err)
	}

	// Any other alumni is rejected and the record is untouched.
	name := "Someone Else"
	stranger := &auth.JWTClaims{UserID: primitive.NewObjectID().Hex(), Email: "other@example.com", Role: auth.RoleAlumni}
	_, err = svc.Update(context.Background(), a.ID, UpdateAlumniRequest{Name: &name}, stranger)
	if !apperr.IsStatus(err, http.StatusForbidden) {
		t.Fatalf("expected 403 for non-owner, got %v", err)
	}
	if store.records[a.ID].Name != "Priya Sharma" {
		t.Fatalf("record mutated by rejected update: %q", store.records[a.ID].Name)
	}
}

func TestUpdateCannotTouchVerification(t *testing.T) {
	svc, store, _ := newTestService()
	a, err := svc.Create(context.Background(), createRequest("priya@example.com"), auth.RoleAlumni)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	owner := &auth.JWTClaims{Email: "priya@example.com", Role: auth.RoleAlumni}
	name := "Priya S"
	if _, err := svc.Update(context.Background(), a.ID, UpdateAlumniRequest{Name: &name}, owner); err != nil {
		t.Fatalf("update: %v", err)
	}
	if store.records[a.ID].IsVerified {
		t.Fatal("update flipped verification")
	}
}

func TestVerify(t *testing.T) {
	svc, store, notifier := newTestService()
	a, err := svc.Create(context.Background(), createRequest("priya@example.com"), auth.RoleAlumni)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	verified, err := svc.Verify(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !verified.IsVerified || !store.records[a.ID].IsVerified {
		t.Fatal("record not verified")
	}

	last := notifier.events[len(notifier.events)-1]
	if last.title != "Alumni Verified" || last.audience != "all" {
		t.Fatalf("unexpected notification %+v", last)
	}

	_, err = svc.Verify(context.Background(), primitive.NewObjectID())
	if !apperr.IsStatus(err, http.StatusNotFound) {
		t.Fatalf("expected 404 for unknown id, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, store, notifier := newTestService()
	a, err := svc.Create(context.Background(), createRequest("priya@example.com"), auth.RoleAdmin)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := store.records[a.ID]; ok {
		t.Fatal("record still present after delete")
	}
	last := notifier.events[len(notifier.events)-1]
	if last.title != "Alumni Deleted" || last.audience != "admin" {
		t.Fatalf("unexpected notification %+v", last)
	}

	err = svc.Delete(context.Background(), a.ID)
	if !apperr.IsStatus(err, http.StatusNotFound) {
		t.Fatalf("expected 404 for repeat delete, got %v", err)
	}
}

func TestGetUnknown(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	if !apperr.IsStatus(err, http.StatusNotFound) {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestListByBatch(t *testing.T) {
	svc, _, _ := newTestService()

	req := createRequest("a@example.com")
	req.Batch = 2018
	if _, err := svc.Create(context.Background(), req, auth.RoleAdmin); err != nil {
		t.Fatalf("create: %v", err)
	}
	req = createRequest("b@example.com")
	req.Batch = 2020
	if _, err := svc.Create(context.Background(), req, auth.RoleAdmin); err != nil {
		t.Fatalf("create: %v", err)
	}

	batch, err := svc.ListByBatch(context.Background(), 2018)
	if err != nil {
		t.Fatalf("list by batch: %v", err)
	}
	if len(batch) != 1 || batch[0].Batch != 2018 {
		t.Fatalf("unexpected batch result: %+v", batch)
	}
}
