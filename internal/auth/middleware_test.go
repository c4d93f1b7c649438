package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"turnos-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, userID, teamID uuid.UUID, role models.Role) string {
	claims := Claims{
		Role:   role,
		TeamID: teamID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func authRouter(m *Middleware) *gin.Engine {
	router := gin.New()
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		p, _ := GetPrincipal(c)
		c.JSON(http.StatusOK, p)
	})
	router.GET("/admin", m.RequireAuth(), m.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/super", m.RequireAuth(), m.RequireSuperAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.POST("/run", m.RequireSchedulerToken(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	m := NewMiddleware(testSecret, "cron-secret")
	router := authRouter(m)

	userID, teamID := uuid.New(), uuid.New()
	token := signToken(t, userID, teamID, models.RoleVoluntario)

	w := doRequest(router, http.MethodGet, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), teamID.String())
}

func TestRequireAuthRejections(t *testing.T) {
	m := NewMiddleware(testSecret, "cron-secret")
	router := authRouter(m)

	// Missing header
	w := doRequest(router, http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = doRequest(router, http.MethodGet, "/protected", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token signed with a different secret
	claims := Claims{
		Role:   models.RoleVoluntario,
		TeamID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)
	w = doRequest(router, http.MethodGet, "/protected", forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Expired token
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	w = doRequest(router, http.MethodGet, "/protected", expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGates(t *testing.T) {
	m := NewMiddleware(testSecret, "cron-secret")
	router := authRouter(m)

	volunteer := signToken(t, uuid.New(), uuid.New(), models.RoleVoluntario)
	admin := signToken(t, uuid.New(), uuid.New(), models.RoleAdmin)
	superAdmin := signToken(t, uuid.New(), uuid.New(), models.RoleSuperAdmin)

	assert.Equal(t, http.StatusForbidden, doRequest(router, http.MethodGet, "/admin", volunteer).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/admin", admin).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/admin", superAdmin).Code)

	assert.Equal(t, http.StatusForbidden, doRequest(router, http.MethodGet, "/super", volunteer).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(router, http.MethodGet, "/super", admin).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/super", superAdmin).Code)
}

func TestRequireSchedulerToken(t *testing.T) {
	m := NewMiddleware(testSecret, "cron-secret")
	router := authRouter(m)

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/run", "cron-secret").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, http.MethodPost, "/run", "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, http.MethodPost, "/run", "").Code)

	// A JWT is not a scheduler token
	jwtToken := signToken(t, uuid.New(), uuid.New(), models.RoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, http.MethodPost, "/run", jwtToken).Code)
}

func TestRequireSchedulerTokenUnconfigured(t *testing.T) {
	// An empty configured token must reject everything, including empty input
	m := NewMiddleware(testSecret, "")
	router := authRouter(m)

	assert.Equal(t, http.StatusUnauthorized, doRequest(router, http.MethodPost, "/run", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, http.MethodPost, "/run", "anything").Code)
}
