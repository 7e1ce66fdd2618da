package services

import (
	"context"

	"github.com/IndiraMehta/EduTask/internal/app/models"
	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
	"github.com/IndiraMehta/EduTask/internal/app/repositories"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
	"github.com/IndiraMehta/EduTask/internal/pkg/logger"
)

// UserService handles profile creation and lookup
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new UserService instance
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SaveProfile creates the profile for an identity. The call is idempotent:
// when a profile already exists for the uid it is returned untouched, so
// role, branch and year never change after first save.
func (s *UserService) SaveProfile(ctx context.Context, uid string, req *dto.SaveProfileRequest) (*dto.ProfileResponse, error) {
	existing, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toProfileResponse(existing), nil
	}

	role := models.RoleType(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role must be STUDENT or TEACHER")
	}

	user := &models.User{
		UID:    uid,
		Name:   req.Name,
		Email:  req.Email,
		Role:   role,
		Branch: req.Branch,
		Year:   req.Year,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logger.Info().Str("uid", uid).Str("role", string(role)).Msg("Profile created")
	return toProfileResponse(user), nil
}

// GetProfile retrieves the profile for an identity.
func (s *UserService) GetProfile(ctx context.Context, uid string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return toProfileResponse(user), nil
}

// GetUserByUID returns the raw profile model, used by middleware to attach
// the acting user to the request.
func (s *UserService) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	return s.userRepo.GetByUID(ctx, uid)
}

func toProfileResponse(user *models.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:     user.ID,
		UID:    user.UID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		Branch: user.Branch,
		Year:   user.Year,
	}
}
