package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey is the gin.Context key under which the authenticated user's
// claims are stored by the auth middleware.
const ClaimsKey = "user_claims"

// CustomClaims is the JWT claims payload. UserID carries the public ID string,
// never the database ID.
type CustomClaims struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
