package repositories

import (
	"errors"
	"time"

	"agenda_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTokenNotFound = errors.New("access token not found")

type AccessTokenRepository interface {
	Create(db *gorm.DB, token *models.AccessToken) error
	FindByTokenID(db *gorm.DB, tokenID string) (*models.AccessToken, error)
	DeleteByUser(db *gorm.DB, userID string) error
	DeleteExpired(db *gorm.DB) error
}

type AccessTokenRepositoryImpl struct{}

func NewAccessTokenRepository() AccessTokenRepository {
	return &AccessTokenRepositoryImpl{}
}

func (r *AccessTokenRepositoryImpl) Create(db *gorm.DB, token *models.AccessToken) error {
	return db.Create(token).Error
}

func (r *AccessTokenRepositoryImpl) FindByTokenID(db *gorm.DB, tokenID string) (*models.AccessToken, error) {
	var token models.AccessToken
	err := db.First(&token, "token_id = ?", tokenID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// DeleteByUser revokes every token of the user. Deleting zero rows is
// not an error, which makes logout idempotent.
func (r *AccessTokenRepositoryImpl) DeleteByUser(db *gorm.DB, userID string) error {
	return db.Delete(&models.AccessToken{}, "user_id = ?", userID).Error
}

func (r *AccessTokenRepositoryImpl) DeleteExpired(db *gorm.DB) error {
	return db.Delete(&models.AccessToken{}, "expires_at < ?", time.Now()).Error
}
