package middleware

import (
	"log"
	"net/http"
	"slices"
	"strings"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/pkg/auth"
	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	issuer   *auth.Issuer
	denylist auth.Denylist
}

func NewAuthMiddleware(issuer *auth.Issuer, denylist auth.Denylist) *AuthMiddleware {
	return &AuthMiddleware{
		issuer:   issuer,
		denylist: denylist,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// RequireAuth verifies the bearer token and stores the caller identity in the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}

		claims, err := m.issuer.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if m.denylist != nil {
			revoked, err := m.denylist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// Redis outage must not lock everyone out.
				log.Printf("[auth] denylist lookup failed: %v", err)
			} else if revoked {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token has been revoked"})
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.Subject)
		c.Set("user_type", claims.UserType)
		c.Set("token_id", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_exp", claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// RequireUserType rejects callers whose token was issued for another account type.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireUserType(types ...entity.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := entity.UserType(c.GetString("user_type"))
		if userType == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		if !slices.Contains(types, userType) {
			c.JSON(http.StatusForbidden, gin.H{"error": "this action is not available for " + string(userType) + " accounts"})
			c.Abort()
			return
		}

		c.Next()
	}
}
