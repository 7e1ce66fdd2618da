package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/IndiraMehta/EduTask/internal/app/services"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
	"github.com/IndiraMehta/EduTask/internal/pkg/auth"
)

// Context keys set by the auth middleware chain
const (
	ContextUIDKey   = "uid"
	ContextEmailKey = "email"
	ContextUserKey  = "currentUser"
)

// JWTAuthMiddleware validates the bearer token and stores the identity's
// uid and email on the request context.
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(ContextUIDKey, claims.UID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// ProfileMiddleware loads the profile for the authenticated identity and
// stores it on the context. Routes behind it can assume a profile exists;
// the save-profile and profile routes stay outside this middleware.
func ProfileMiddleware(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(ContextUIDKey)
		if uid == "" {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}

		user, err := userService.GetUserByUID(c.Request.Context(), uid)
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		if user == nil {
			HandleAPIError(c, apperrors.ErrProfileNotFound)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}
