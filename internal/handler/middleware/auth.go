package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pousada-booking/internal/handler/httperr"
	"pousada-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenVerifier is satisfied by *jwt.Verifier.
type TokenVerifier interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	verifier  TokenVerifier
	adminRole string
}

const (
	ctxStaffIDKey   = "staff_id"
	ctxStaffRoleKey = "staff_role"
)

var (
	errMissingToken      = errors.New("missing bearer token")
	errInsufficientScope = errors.New("insufficient role")
)

func NewAuthMiddleware(verifier TokenVerifier, adminRole string) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:  verifier,
		adminRole: adminRole,
	}
}

// RequireAdmin lets through requests carrying a valid token whose role is the
// configured admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.verifier.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		if claims.Role != m.adminRole {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientScope, "Insufficient permissions", nil)
			return
		}

		c.Set(ctxStaffIDKey, claims.Subject)
		c.Set(ctxStaffRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.Subject,
			"role":    claims.Role,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// GetStaffID returns the authenticated staff member's id from context.
func GetStaffID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
