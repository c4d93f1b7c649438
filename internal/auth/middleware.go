package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"turnos-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const principalKey = "principal"

// Claims is the JWT payload carrying the principal fields. Token issuance
// happens outside this service; only validation lives here.
type Claims struct {
	Role   models.Role `json:"role"`
	TeamID string      `json:"team_id"`
	jwt.RegisteredClaims
}

// Middleware validates bearer tokens and scheduler secrets
type Middleware struct {
	jwtSecret      []byte
	schedulerToken string
}

// NewMiddleware creates the auth middleware from explicit secrets
func NewMiddleware(jwtSecret, schedulerToken string) *Middleware {
	return &Middleware{
		jwtSecret:      []byte(jwtSecret),
		schedulerToken: schedulerToken,
	}
}

// RequireAuth validates the JWT and stores the principal in the context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token subject"})
			c.Abort()
			return
		}
		teamID, err := uuid.Parse(claims.TeamID)
		if err != nil || !claims.Role.IsValid() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set(principalKey, Principal{
			UserID: userID,
			Role:   claims.Role,
			TeamID: teamID,
		})
		c.Next()
	}
}

// RequireAdmin allows only admin and superAdmin principals past
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok || (p.Role != models.RoleAdmin && p.Role != models.RoleSuperAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "administrator access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin allows only superAdmin principals past
func (m *Middleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok || !p.IsSuperAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "super administrator access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSchedulerToken authenticates the unattended cron trigger with the
// shared secret. Invalid or missing tokens are rejected before any
// notification processing starts.
func (m *Middleware) RequireSchedulerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok || m.schedulerToken == "" ||
			subtle.ConstantTimeCompare([]byte(tokenString), []byte(m.schedulerToken)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid scheduler token"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal extracts the authenticated principal from the gin context
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return "", false
	}
	return token, true
}
