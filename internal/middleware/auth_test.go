package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"happyhouse/internal/domain"
	jwtsvc "happyhouse/internal/pkg/jwt"
)

func setupRouter(jwt *jwtsvc.Service, ttl time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequireSession(jwt, ttl))
	router.GET("/protected", func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"owner_id": sess.OwnerID})
	})
	return router
}

func TestRequireSession_ValidToken(t *testing.T) {
	jwt := jwtsvc.New("test-secret", 24*time.Hour)
	router := setupRouter(jwt, 24*time.Hour)

	sess := domain.StartSession(&domain.User{ID: 7, DisplayName: "Demo Owner"}, time.Now())
	token, err := jwt.GenerateToken(sess)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"owner_id":7`)
}

func TestRequireSession_MissingHeader(t *testing.T) {
	jwt := jwtsvc.New("test-secret", 24*time.Hour)
	router := setupRouter(jwt, 24*time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestRequireSession_MalformedToken(t *testing.T) {
	jwt := jwtsvc.New("test-secret", 24*time.Hour)
	router := setupRouter(jwt, 24*time.Hour)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestRequireSession_WrongSecret(t *testing.T) {
	signer := jwtsvc.New("other-secret", 24*time.Hour)
	jwt := jwtsvc.New("test-secret", 24*time.Hour)
	router := setupRouter(jwt, 24*time.Hour)

	token, err := signer.GenerateToken(domain.StartSession(&domain.User{ID: 7}, time.Now()))
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

// A token can outlive the session window: the middleware checks login age on
// every request, so a day-old login is rejected even if the token itself still
// parses.
func TestRequireSession_SessionExpired(t *testing.T) {
	jwt := jwtsvc.New("test-secret", 100*time.Hour)
	router := setupRouter(jwt, 24*time.Hour)

	stale := domain.StartSession(&domain.User{ID: 7}, time.Now().Add(-25*time.Hour))
	token, err := jwt.GenerateToken(stale)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")
}
