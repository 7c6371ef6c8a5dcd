package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"happyhouse/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubIssuer struct{}

func (stubIssuer) GenerateToken(sess domain.Session) (string, error) {
	return "token-for-" + sess.DisplayName, nil
}

func storedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &domain.User{
		ID:           42,
		Email:        "owner@happyhouse.local",
		PasswordHash: string(hash),
		DisplayName:  "Demo Owner",
	}
}

func TestService_Register_NormalizesEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockUsers, stubIssuer{})

	u, err := service.Register(context.Background(), RegisterRequest{
		Email:       "  Owner@HappyHouse.Local ",
		Password:    "secret-password",
		DisplayName: "Demo Owner",
	})

	assert.NoError(t, err)
	assert.Equal(t, "owner@happyhouse.local", u.Email)
	assert.NotEqual(t, "secret-password", u.PasswordHash)
}

func TestService_Register_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	service := NewService(mockUsers, stubIssuer{})

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:       "owner@happyhouse.local",
		Password:    "secret-password",
		DisplayName: "Demo Owner",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "owner@happyhouse.local").
		Return(storedUser(t, "secret-password"), nil)

	service := NewService(mockUsers, stubIssuer{})
	loginAt := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return loginAt }

	res, err := service.Login(context.Background(), LoginRequest{
		Email:    "owner@happyhouse.local",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), res.Session.OwnerID)
	assert.Equal(t, loginAt, res.Session.LoginAt)
	assert.Equal(t, "token-for-Demo Owner", res.Token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "owner@happyhouse.local").
		Return(storedUser(t, "secret-password"), nil)

	service := NewService(mockUsers, stubIssuer{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "owner@happyhouse.local",
		Password: "not-this-one",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "ghost@happyhouse.local").
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers, stubIssuer{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@happyhouse.local",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Profile_DeletedAccount(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByID", mock.Anything, int64(42)).
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers, stubIssuer{})

	_, err := service.Profile(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionExpiry(t *testing.T) {
	loginAt := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	sess := domain.StartSession(&domain.User{ID: 42, DisplayName: "Demo Owner"}, loginAt)

	ttl := 24 * time.Hour
	assert.False(t, sess.IsExpired(loginAt.Add(23*time.Hour), ttl))
	assert.False(t, sess.IsExpired(loginAt.Add(24*time.Hour), ttl))
	assert.True(t, sess.IsExpired(loginAt.Add(24*time.Hour+time.Minute), ttl))

	sess.End()
	assert.Equal(t, domain.Session{}, sess)
}
