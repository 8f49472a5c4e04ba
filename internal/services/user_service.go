package services

import (
	"context"
	"mime/multipart"

	"agenda_backend/internal/apperrors"
	"agenda_backend/internal/logger"
	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"
	"agenda_backend/internal/services/dto"

	"gorm.io/gorm"
)

type UserService interface {
	Me(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest, photo *multipart.FileHeader) error
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	photos      *photoStore
}

func NewUserService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	photos *photoStore,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		photos:      photos,
	}
}

// Me returns the user merged with its profile. The photo path is
// rewritten to a public URL.
func (s *UserServiceImpl) Me(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserInactive
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Status == models.StatusDisabled {
		return nil, apperrors.ErrUserInactive
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Profile != nil {
		resp.Profile = &dto.ProfileResponse{
			Name:    user.Profile.Name,
			Surname: user.Profile.Surname,
			Photo:   s.photos.URL(ctx, user.Profile.Photo),
		}
	}
	return resp, nil
}

// UpdateProfile persists name and surname, and when a new photo comes
// in, deletes the previous file (and its emptied directory) before
// storing the new one.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest, photo *multipart.FileHeader) error {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrUserInactive
		}
		return apperrors.InternalError(err)
	}

	if photo != nil {
		if profile.Photo != nil {
			s.photos.Remove(ctx, *profile.Photo)
		}
		path, err := s.photos.Store(ctx, "profiles", photo)
		if err != nil {
			if isPhotoValidationError(err) {
				return apperrors.ValidationError(map[string]string{"photo": err.Error()})
			}
			return apperrors.InternalError(err)
		}
		profile.Photo = &path
	}

	profile.Name = req.Name
	profile.Surname = req.Surname

	if err := s.profileRepo.Update(db, profile); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Profile updated", "user_id", userID)
	return nil
}
