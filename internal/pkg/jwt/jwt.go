package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"happyhouse/internal/domain"
)

type Service struct {
	secret []byte
	ttl    time.Duration
}

type Claims struct {
	OwnerID     int64  `json:"owner_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	LoginAt     int64  `json:"login_at"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken signs the session into a bearer token. The token's own expiry
// matches the session window, so a stale token dies twice over.
func (s *Service) GenerateToken(sess domain.Session) (string, error) {
	claims := Claims{
		OwnerID:     sess.OwnerID,
		DisplayName: sess.DisplayName,
		AvatarURL:   sess.AvatarURL,
		LoginAt:     sess.LoginAt.Unix(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwtlib.NewNumericDate(sess.LoginAt.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(sess.LoginAt),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses a bearer token back into the session it carries.
func (s *Service) ValidateToken(tokenStr string) (domain.Session, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Session{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return domain.Session{}, errors.New("invalid claims")
	}

	return domain.Session{
		OwnerID:     claims.OwnerID,
		DisplayName: claims.DisplayName,
		AvatarURL:   claims.AvatarURL,
		LoginAt:     time.Unix(claims.LoginAt, 0),
	}, nil
}
