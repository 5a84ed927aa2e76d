package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/officinaverde/blog-api/internal/pkg/auth"
	"github.com/officinaverde/blog-api/pkg/response"
	auth_service "github.com/officinaverde/blog-api/pkg/service/auth"
)

type Middleware struct {
	tokenSvc *auth_service.TokenService
}

func NewMiddleware(tokenSvc *auth_service.TokenService) *Middleware {
	return &Middleware{tokenSvc: tokenSvc}
}

// JWTAuth requires a valid Bearer token and stores the claims on the context.
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.claimsFromHeader(c)
		if !ok {
			c.Abort()
			return
		}
		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// JWTAuthOptional lets anonymous requests through. A present but invalid
// token still fails with 401 so clients can refresh instead of silently
// degrading to guest access.
func (m *Middleware) JWTAuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		claims, ok := m.claimsFromHeader(c)
		if !ok {
			c.Abort()
			return
		}
		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// AdminRequired gates the admin surface. Must run after JWTAuth.
func (m *Middleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(auth.ClaimsKey)
		if !exists {
			response.Fail(c, http.StatusUnauthorized, "missing authentication")
			c.Abort()
			return
		}
		claims, ok := value.(*auth.CustomClaims)
		if !ok || !claims.IsAdmin {
			response.Fail(c, http.StatusForbidden, "administrator access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *Middleware) claimsFromHeader(c *gin.Context) (*auth.CustomClaims, bool) {
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader == "" {
		response.Fail(c, http.StatusUnauthorized, "request carries no token")
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		response.Fail(c, http.StatusUnauthorized, "malformed Authorization header")
		return nil, false
	}

	claims, err := m.tokenSvc.Parse(parts[1])
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "invalid or expired token")
		return nil, false
	}
	return claims, true
}
