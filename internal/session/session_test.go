package session

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", 10*time.Minute)

	token, err := m.GenerateToken(5, 7, RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.Equal(t, int64(7), claims.EstablishmentID)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", 10*time.Minute)
	verifier := NewManager("secret-b", 10*time.Minute)

	token, err := issuer.GenerateToken(5, 7, RoleUser)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.GenerateToken(5, 7, RoleUser)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	m := NewManager("test-secret", 10*time.Minute)

	_, err := m.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func newAuthTestRouter(m *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(m, testLogger()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
		})
	})
	router.GET("/admin-only", AuthMiddleware(m, testLogger()), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newAuthTestRouter(NewManager("test-secret", 10*time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m := NewManager("test-secret", 10*time.Minute)
	router := newAuthTestRouter(m)

	token, err := m.GenerateToken(5, 7, RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":5`)
}

func TestRequireAdmin_RejectsUserRole(t *testing.T) {
	m := NewManager("test-secret", 10*time.Minute)
	router := newAuthTestRouter(m)

	token, err := m.GenerateToken(5, 7, RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AllowsAdminRole(t *testing.T) {
	m := NewManager("test-secret", 10*time.Minute)
	router := newAuthTestRouter(m)

	token, err := m.GenerateToken(0, 0, RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
