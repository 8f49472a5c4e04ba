package helpers

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"testing"
	"time"

	"agenda_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts an active user with a bcrypt-hashed password and
// a profile. The raw password stays with the caller.
func CreateUser(t *testing.T, db *gorm.DB, email, password, name, surname string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err, "failed to hash password")

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Status:       models.StatusActive,
	}
	require.NoError(t, db.Create(user).Error, "failed to create user")

	profile := &models.Profile{
		UserID:  user.ID,
		Name:    name,
		Surname: surname,
	}
	require.NoError(t, db.Create(profile).Error, "failed to create profile")

	user.Profile = profile
	return user
}

// CreateAndLoginUser creates a user and logs in through the API,
// returning the bearer token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string) (string, *models.User) {
	t.Helper()

	user := CreateUser(t, ts.DB, email, password, "Ana", "García")

	res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should answer 200: "+body)

	envelope := ParseEnvelope(t, body)
	require.Equal(t, true, envelope["success"], "login should succeed: "+body)

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "login response should carry data: "+body)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token, "login should return a token")

	return token, user
}

// PNGBytes encodes a real 1x1 PNG so uploads survive content sniffing.
func PNGBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	return buf.Bytes()
}

// UniqueEmail builds an email unlikely to collide across tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateEvent inserts an event row directly, bypassing the API.
func CreateEvent(t *testing.T, db *gorm.DB, userID, title, slug string) *models.Event {
	t.Helper()

	event := &models.Event{
		UserID:   userID,
		Slug:     slug,
		Title:    title,
		Start:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		Priority: 1,
		Color:    "bg-blue-200",
		Status:   models.StatusActive,
	}
	require.NoError(t, db.Create(event).Error, "failed to create event")
	return event
}
