package service

import (
	"context"
	"errors"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordIncorrect  = errors.New("password is incorrect")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles registration and login.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
	}
}

// Register creates a new user account with the default USER role.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns the account with a signed
// session token. Unknown email and wrong password fail distinctly.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !match {
		return nil, "", ErrPasswordIncorrect
	}

	token, err := crypto.GenerateToken(model.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns all registered users. Callers gate this behind the
// admin checkpoint.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// SeedAdmin creates the configured admin account if it does not exist.
// A blank email disables seeding.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	return s.repo.SeedAdmin(ctx, email, hash)
}
