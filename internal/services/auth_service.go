package services

import (
	"context"
	"fmt"
	"time"

	"agenda_backend/internal/apperrors"
	"agenda_backend/internal/auth"
	"agenda_backend/internal/config"
	"agenda_backend/internal/logger"
	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"agenda_backend/internal/services/dto"
)

type AuthService interface {
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResult, error)
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) error
	Logout(ctx context.Context, db *gorm.DB, userID string) error
	ChangePassword(ctx context.Context, db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error
	DisableUser(ctx context.Context, db *gorm.DB, userID string) error
	DeleteUser(ctx context.Context, db *gorm.DB, userID string) error
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	eventRepo   repositories.EventRepository
	tokenRepo   repositories.AccessTokenRepository
	photos      *photoStore
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	eventRepo repositories.EventRepository,
	tokenRepo repositories.AccessTokenRepository,
	photos *photoStore,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		eventRepo:   eventRepo,
		tokenRepo:   tokenRepo,
		photos:      photos,
	}
}

// Login authenticates by email and password and issues a bearer token
// valid for the configured number of days.
func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResult, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserInactive
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Status == models.StatusDisabled {
		return nil, apperrors.ErrUserInactive
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		// Deliberately does not reveal which field was wrong.
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var name, surname string
	if user.Profile != nil {
		name = user.Profile.Name
		surname = user.Profile.Surname
	}

	logger.CtxInfo(ctx, "User logged in", "user_id", user.ID)

	return &dto.LoginResult{
		Token:   token,
		Message: fmt.Sprintf("Bienvenido, %s %s.", name, surname),
	}, nil
}

func (s *AuthServiceImpl) issueToken(db *gorm.DB, userID string) (string, error) {
	ttl := time.Duration(config.GetConfig().JWT.TTLDays) * 24 * time.Hour
	tokenID := uuid.NewString()

	record := &models.AccessToken{
		UserID:    userID,
		TokenID:   tokenID,
		Abilities: datatypes.JSON(`["*"]`),
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.tokenRepo.Create(db, record); err != nil {
		return "", err
	}

	return auth.GenerateToken(userID, tokenID, ttl)
}

// Register creates the user and its profile atomically. Either both
// rows exist afterwards or neither does.
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) error {
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.InternalError(err)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		user := &models.User{
			Email:        req.Email,
			PasswordHash: hashed,
			Status:       models.StatusActive,
		}
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		profile := &models.Profile{
			UserID:  user.ID,
			Name:    req.Name,
			Surname: req.Surname,
		}
		return s.profileRepo.Create(tx, profile)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.CtxWithError(ctx, "Registration failed", err, "email", req.Email)
		return apperrors.ErrUserCreateFailed
	}

	logger.CtxInfo(ctx, "User registered", "email", req.Email)
	return nil
}

// Logout revokes every bearer token of the user. Idempotent.
func (s *AuthServiceImpl) Logout(ctx context.Context, db *gorm.DB, userID string) error {
	if err := s.tokenRepo.DeleteByUser(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "User logged out", "user_id", userID)
	return nil
}

func (s *AuthServiceImpl) ChangePassword(ctx context.Context, db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserInactive
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrWrongCurrentPassword
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.UpdatePassword(db, userID, hashed); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Password changed", "user_id", userID)
	return nil
}

func (s *AuthServiceImpl) DisableUser(ctx context.Context, db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserInactive
		}
		return apperrors.InternalError(err)
	}
	if user.Status == models.StatusDisabled {
		return apperrors.ErrUserInactive
	}

	if err := s.userRepo.UpdateStatus(db, userID, models.StatusDisabled); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User disabled", "user_id", userID)
	return nil
}

// DeleteUser removes the account and everything it owns: tokens,
// events, profile, then the user row, in that order inside one
// transaction. Photo files are cleaned up after the commit.
func (s *AuthServiceImpl) DeleteUser(ctx context.Context, db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserInactive
		}
		return apperrors.InternalError(err)
	}
	if user.Status == models.StatusDisabled {
		return apperrors.ErrUserInactive
	}

	events, err := s.eventRepo.FindAllByOwner(db, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	var photoPaths []string
	if user.Profile != nil && user.Profile.Photo != nil {
		photoPaths = append(photoPaths, *user.Profile.Photo)
	}
	for _, event := range events {
		if event.Photo != nil {
			photoPaths = append(photoPaths, *event.Photo)
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.tokenRepo.DeleteByUser(tx, userID); err != nil {
			return err
		}
		if err := s.eventRepo.DeleteByOwner(tx, userID); err != nil {
			return err
		}
		if err := s.profileRepo.DeleteByUserID(tx, userID); err != nil {
			return err
		}
		return s.userRepo.Delete(tx, userID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Best effort: the rows are gone, orphaned files only get logged.
	for _, path := range photoPaths {
		s.photos.Remove(ctx, path)
	}

	logger.CtxInfo(ctx, "User deleted", "user_id", userID)
	return nil
}
