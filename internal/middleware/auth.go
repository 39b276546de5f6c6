package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/tdnghia/jobportal/internal/dto"
)

const identityKey = "authIdentity"

// Identity is everything this service consumes from the external auth
// collaborator's token: an opaque subject, a role label, and the display
// claims snapshotted onto test results.
type Identity struct {
	Subject string
	Role    string
	Name    string
	Email   string
}

// Auth validates the bearer token and stashes the caller's Identity in the
// request context. Token issuance is owned by the external auth service;
// only the shared HMAC secret is known here.
func Auth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("rejected invalid bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid or expired token"})
			return
		}

		identity := Identity{
			Subject: stringClaim(claims, "sub"),
			Role:    stringClaim(claims, "role"),
			Name:    stringClaim(claims, "name"),
			Email:   stringClaim(claims, "email"),
		}
		if identity.Subject == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid or expired token"})
			return
		}

		ctx.Set(identityKey, identity)
		ctx.Next()
	}
}

// RequireRole guards a route group to a single role.
func RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if IdentityFrom(ctx).Role != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "insufficient role for this operation"})
			return
		}
		ctx.Next()
	}
}

// IdentityFrom returns the authenticated caller's identity. It is the zero
// Identity on routes that skipped the Auth middleware.
func IdentityFrom(ctx *gin.Context) Identity {
	if v, ok := ctx.Get(identityKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
