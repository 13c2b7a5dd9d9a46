package services

import (
	"context"
	"regexp"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/taskhub/taskhub-api/internal/apperrors"
	"github.com/taskhub/taskhub-api/internal/auth"
	"github.com/taskhub/taskhub-api/internal/filter"
	"github.com/taskhub/taskhub-api/internal/models"
	"github.com/taskhub/taskhub-api/internal/repository"
	"github.com/taskhub/taskhub-api/internal/schemas"
	"github.com/taskhub/taskhub-api/internal/service"
)

// emailShape decides whether a login identity is an email or a username.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserService handles registration, authentication, and user CRUD.
type UserService struct {
	*service.Service[models.User, schemas.PublicUser]
	hasher auth.PasswordHasher
	tokens *auth.TokenIssuer
	log    *zap.Logger
}

func NewUserService(db *gorm.DB, log *zap.Logger, hasher auth.PasswordHasher, tokens *auth.TokenIssuer) *UserService {
	repo := repository.NewUserRepository(db, log)
	return &UserService{
		Service: service.New(repo, schemas.NewPublicUser, log),
		hasher:  hasher,
		tokens:  tokens,
		log:     log,
	}
}

// AuthRegister creates a new account. Duplicate emails are a conflict; the
// password is hashed before it ever reaches storage.
func (s *UserService) AuthRegister(ctx context.Context, req schemas.RegisterRequest) (schemas.PublicUser, error) {
	var zero schemas.PublicUser
	if err := schemas.Validate(req); err != nil {
		return zero, err
	}

	existing, err := s.GetOneByFilters(ctx, []filter.Descriptor{{Field: "email", Value: req.Email}})
	if err != nil {
		return zero, err
	}
	if existing != nil {
		return zero, apperrors.Conflict("email %q is already registered", req.Email)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("password hashing failed", zap.Error(err))
		return zero, apperrors.Storage(err, "failed to hash password")
	}

	return s.Create(ctx, &models.User{
		Email:    req.Email,
		Username: req.Username,
		Password: digest,
		FullName: req.FullName,
	})
}

// AuthLogin verifies credentials and issues a signed token embedding the
// public user projection. The identity is looked up as an email when it has
// an email shape, as a username otherwise. Both a missing user and a wrong
// password are the same unauthorized error.
func (s *UserService) AuthLogin(ctx context.Context, req schemas.LoginRequest) (*schemas.LoginResult, error) {
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	field := "username"
	if emailShape.MatchString(req.Identity) {
		field = "email"
	}

	user, err := s.GetOneByFilters(ctx, []filter.Descriptor{{Field: field, Value: req.Identity}})
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(req.Password, user.Password) {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	pub := s.Project(user)
	token, err := s.tokens.Issue(map[string]any{
		"sub":       user.ID.String(),
		"email":     pub.Email,
		"full_name": pub.FullName,
	})
	if err != nil {
		s.log.Error("token issuance failed", zap.Error(err))
		return nil, apperrors.Storage(err, "failed to issue token")
	}

	return &schemas.LoginResult{User: pub, Token: token}, nil
}
