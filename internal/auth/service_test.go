package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
)

type fakeStore struct {
	users map[string]*User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*User{}}
}

func (f *fakeStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeStore) CreateUser(ctx context.Context, user *User) error {
	clone := *user
	f.users[user.Email] = &clone
	return nil
}

func newTestService(t *testing.T) (*UserService, *fakeStore) {
	t.Helper()
	InitJWTKey("test-secret")
	store := newFakeStore()
	return NewUserService(store), store
}

func TestRegisterAlwaysCreatesAlumni(t *testing.T) {
	svc, store := newTestService(t)

	token, user, err := svc.RegisterUser(context.Background(), RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != RoleAlumni {
		t.Fatalf("role = %q, want %q", user.Role, RoleAlumni)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Fatal("password stored without hashing")
	}
	if _, ok := store.users["priya@example.com"]; !ok {
		t.Fatal("user not persisted")
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != user.ID.Hex() || claims.Email != user.Email || claims.Role != RoleAlumni {
		t.Fatalf("claims %+v do not match user", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	req := RegisterRequest{Name: "Priya", Email: "priya@example.com", Password: "secret123"}
	if _, _, err := svc.RegisterUser(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, _, err := svc.RegisterUser(context.Background(), req)
	if !apperr.IsStatus(err, http.StatusConflict) {
		t.Fatalf("expected 409 for duplicate email, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)

	if _, _, err := svc.RegisterUser(context.Background(), RegisterRequest{
		Name: "Priya", Email: "priya@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.AuthenticateUser(context.Background(), Credential{Email: "priya@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token == "" || user.Email != "priya@example.com" {
		t.Fatalf("unexpected result %q %+v", token, user)
	}

	// Wrong password and unknown account get the same answer.
	_, _, err = svc.AuthenticateUser(context.Background(), Credential{Email: "priya@example.com", Password: "wrong"})
	if !apperr.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 for wrong password, got %v", err)
	}
	_, _, err = svc.AuthenticateUser(context.Background(), Credential{Email: "nobody@example.com", Password: "secret123"})
	if !apperr.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 for unknown account, got %v", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	InitJWTKey("test-secret")

	token, err := GenerateJWT("abc123", "Priya", "priya@example.com", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "abc123" || claims.Role != RoleAdmin {
		t.Fatalf("claims %+v", claims)
	}
	if !claims.IsAdmin() {
		t.Fatal("IsAdmin() false for admin claims")
	}
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	InitJWTKey("test-secret")

	token, err := GenerateJWT("abc123", "Priya", "priya@example.com", RoleAlumni, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestValidateJWTRejectsWrongKey(t *testing.T) {
	InitJWTKey("test-secret")
	token, err := GenerateJWT("abc123", "Priya", "priya@example.com", RoleAlumni, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	InitJWTKey("other-secret")
	defer InitJWTKey("test-secret")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("token signed with a different key accepted")
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	InitJWTKey("test-secret")
	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("password not hashed")
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestIsAdminNilSafe(t *testing.T) {
	var claims *JWTClaims
	if claims.IsAdmin() {
		t.Fatal("nil claims reported admin")
	}
	if (&JWTClaims{Role: RoleAlumni}).IsAdmin() {
		t.Fatal("alumni claims reported admin")
	}
}
