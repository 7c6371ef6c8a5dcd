package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"happyhouse/internal/domain"
	"happyhouse/internal/repository"
)

type Service struct {
	users UserRepository
	jwt   tokenIssuer
	now   func() time.Time
}

type LoginResult struct {
	Session domain.Session
	Token   string
}

func NewService(users UserRepository, jwt tokenIssuer) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		now:   time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(req.DisplayName),
		AvatarURL:    req.AvatarURL,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and opens a fresh session. The session's login
// time anchors the fixed expiry window the middleware enforces.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	sess := domain.StartSession(u, s.now())
	token, err := s.jwt.GenerateToken(sess)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Session: sess, Token: token}, nil
}

// Profile re-reads the account behind a session. A token can outlive its
// account; a missing row reads as invalid credentials, not an internal error.
func (s *Service) Profile(ctx context.Context, ownerID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return u, nil
}
