package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
	"github.com/IndiraMehta/EduTask/internal/app/services"
	"github.com/IndiraMehta/EduTask/internal/middleware"
)

// UserController handles profile operations
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// SaveProfile creates the caller's profile if it does not exist yet
// @Summary Save the caller's profile
// @Description Creates the profile on first call. Subsequent calls return the existing profile untouched.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.SaveProfileRequest true "Profile information"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /users/save-profile [post]
func (c *UserController) SaveProfile(ctx *gin.Context) {
	var req dto.SaveProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid save profile payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	uid := ctx.GetString(middleware.ContextUIDKey)
	profile, err := c.userService.SaveProfile(ctx.Request.Context(), uid, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetProfile returns the caller's profile
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse}
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /users/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	uid := ctx.GetString(middleware.ContextUIDKey)
	profile, err := c.userService.GetProfile(ctx.Request.Context(), uid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
