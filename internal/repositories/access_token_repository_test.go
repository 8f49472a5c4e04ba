package repositories

import (
	"testing"
	"time"

	"agenda_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTokenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.AccessToken{}))
	return db
}

func seedToken(t *testing.T, db *gorm.DB, userID string, expiresAt time.Time) *models.AccessToken {
	t.Helper()

	token := &models.AccessToken{
		UserID:    userID,
		TokenID:   uuid.NewString(),
		Abilities: datatypes.JSON(`["*"]`),
		ExpiresAt: expiresAt,
	}
	require.NoError(t, db.Create(token).Error)
	return token
}

func TestFindByTokenID(t *testing.T) {
	db := newTokenTestDB(t)
	repo := NewAccessTokenRepository()

	token := seedToken(t, db, "user-1", time.Now().Add(time.Hour))

	found, err := repo.FindByTokenID(db, token.TokenID)
	require.NoError(t, err)
	assert.Equal(t, token.UserID, found.UserID)

	_, err = repo.FindByTokenID(db, uuid.NewString())
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestDeleteByUserIsIdempotent(t *testing.T) {
	db := newTokenTestDB(t)
	repo := NewAccessTokenRepository()

	seedToken(t, db, "user-1", time.Now().Add(time.Hour))
	seedToken(t, db, "user-1", time.Now().Add(time.Hour))
	keep := seedToken(t, db, "user-2", time.Now().Add(time.Hour))

	require.NoError(t, repo.DeleteByUser(db, "user-1"))
	require.NoError(t, repo.DeleteByUser(db, "user-1"))

	var count int64
	db.Model(&models.AccessToken{}).Where("user_id = ?", "user-1").Count(&count)
	assert.Equal(t, int64(0), count)

	_, err := repo.FindByTokenID(db, keep.TokenID)
	assert.NoError(t, err, "other users' tokens survive")
}

func TestDeleteExpired(t *testing.T) {
	db := newTokenTestDB(t)
	repo := NewAccessTokenRepository()

	expired := seedToken(t, db, "user-1", time.Now().Add(-time.Minute))
	valid := seedToken(t, db, "user-1", time.Now().Add(time.Hour))

	require.NoError(t, repo.DeleteExpired(db))

	_, err := repo.FindByTokenID(db, expired.TokenID)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	_, err = repo.FindByTokenID(db, valid.TokenID)
	assert.NoError(t, err, "unexpired tokens survive the sweep")
}
