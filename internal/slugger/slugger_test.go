package slugger

import (
	"strings"
	"testing"

	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Event{}))
	return db
}

func seedEvent(t *testing.T, db *gorm.DB, userID, slug string) *models.Event {
	t.Helper()

	event := &models.Event{
		UserID: userID,
		Slug:   slug,
		Title:  slug,
		Status: models.StatusActive,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func TestDeriveFromTitle(t *testing.T) {
	db := newTestDB(t)
	events := repositories.NewEventRepository()

	got, err := Derive(db, events, "user-1", "Reunión de Equipo", "")
	require.NoError(t, err)
	assert.Equal(t, "reunion-de-equipo", got)
}

func TestDeriveProbesSequentially(t *testing.T) {
	db := newTestDB(t)
	events := repositories.NewEventRepository()

	seedEvent(t, db, "user-1", "meeting")
	seedEvent(t, db, "user-1", "meeting-1")

	got, err := Derive(db, events, "user-1", "Meeting", "")
	require.NoError(t, err)
	assert.Equal(t, "meeting-2", got)
}

func TestDeriveIgnoresOtherOwners(t *testing.T) {
	db := newTestDB(t)
	events := repositories.NewEventRepository()

	seedEvent(t, db, "user-1", "meeting")

	got, err := Derive(db, events, "user-2", "Meeting", "")
	require.NoError(t, err)
	assert.Equal(t, "meeting", got)
}

func TestDeriveExcludesOwnEvent(t *testing.T) {
	db := newTestDB(t)
	events := repositories.NewEventRepository()

	own := seedEvent(t, db, "user-1", "meeting")

	got, err := Derive(db, events, "user-1", "Meeting", own.ID)
	require.NoError(t, err)
	assert.Equal(t, "meeting", got, "an event must not collide with itself on update")
}

func TestDeriveCountsSoftDeletedEvents(t *testing.T) {
	db := newTestDB(t)
	events := repositories.NewEventRepository()

	deleted := seedEvent(t, db, "user-1", "meeting")
	require.NoError(t, db.Model(deleted).Update("status", models.StatusDisabled).Error)

	got, err := Derive(db, events, "user-1", "Meeting", "")
	require.NoError(t, err)
	assert.Equal(t, "meeting-1", got, "soft-deleted rows still hold their slug")
}

func TestDeriveTruncatesLongSlugs(t *testing.T) {
	db := newTestDB(t)
	events := repositories.NewEventRepository()

	got, err := Derive(db, events, "user-1", strings.Repeat("palabra ", 30), "")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 100)
}
