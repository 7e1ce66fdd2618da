package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IndiraMehta/EduTask/internal/app/models"
	"github.com/IndiraMehta/EduTask/internal/middleware"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
)

// parseIDParam extracts a positive numeric path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &apperrors.CustomError{
			Err:     apperrors.ErrValidationFailed,
			Message: "invalid " + name + " parameter",
		}
	}
	return id, nil
}

// currentUser returns the profile attached by the profile middleware.
func currentUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// mustCurrentUser is currentUser plus the error response when missing. A
// missing user means the route was wired without the profile middleware.
func mustCurrentUser(ctx *gin.Context) (*models.User, bool) {
	user, ok := currentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrProfileNotFound)
		return nil, false
	}
	return user, true
}
