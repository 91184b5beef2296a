package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shoaib232002/Alumni-Project/internal/apperr"
)

// UserStore is the persistence surface the service needs; *UserRepository
// implements it against MongoDB.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
}

type UserService struct {
	repo UserStore
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{repo: repo}
}

const tokenDuration = 24 * time.Hour

// RegisterUser creates an account and returns a signed session token. The
// endpoint is public, so the role is never taken from the request: every
// registration produces an alumni account, and admin accounts are seeded or
// promoted out of band.
func (s *UserService) RegisterUser(ctx context.Context, req RegisterRequest) (string, *User, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, apperr.Conflict("Email already registered")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	user := &User{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         RoleAlumni,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", nil, apperr.Conflict("Email already registered")
		}
		return "", nil, err
	}

	token, err := GenerateJWT(user.ID.Hex(), user.Name, user.Email, user.Role, tokenDuration)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// AuthenticateUser verifies the credential and returns a signed session token.
func (s *UserService) AuthenticateUser(ctx context.Context, cred Credential) (string, *User, error) {
	user, err := s.repo.FindByEmail(ctx, cred.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !CheckPasswordHash(cred.Password, user.PasswordHash) {
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := GenerateJWT(user.ID.Hex(), user.Name, user.Email, user.Role, tokenDuration)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
