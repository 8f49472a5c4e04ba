package integration

import (
	"net/http"
	"testing"

	"agenda_backend/internal/models"
	"agenda_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisableUser(t *testing.T) {
	ts := helpers.NewTestServer(t)
	email := helpers.UniqueEmail("disable")
	token, user := helpers.CreateAndLoginUser(t, ts, email, "secret123")

	res, body := ts.SendRequest(t, http.MethodDelete, "/disable-user", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	envelope := helpers.ParseEnvelope(t, body)
	assert.Equal(t, true, envelope["success"], body)
	assert.Equal(t, "Usuario desactivado exitosamente.", envelope["message"])

	var fresh models.User
	require.NoError(t, ts.DB.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, models.StatusDisabled, fresh.Status, "the row survives, only the status flips")

	res, body = ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	})
	envelope = helpers.ParseEnvelope(t, body)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "El usuario no existe o no está activo.", envelope["message"])
}

func TestDeleteUserRemovesEverything(t *testing.T) {
	ts := helpers.NewTestServer(t)
	email := helpers.UniqueEmail("delete")
	token, user := helpers.CreateAndLoginUser(t, ts, email, "secret123")

	res, body := ts.SendMultipart(t, http.MethodPost, "/events", token, map[string]string{
		"title":    "Farewell",
		"start":    "2026-05-01",
		"end":      "2026-05-01",
		"priority": "1",
	}, "photo.png", helpers.PNGBytes(t))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, true, helpers.ParseEnvelope(t, body)["success"], body)

	_, body = ts.SendRequest(t, http.MethodGet, "/events/farewell", token, nil)
	event := helpers.ParseEnvelope(t, body)["data"].(map[string]interface{})
	photoURL := event["photo"].(string)

	res, body = ts.SendRequest(t, http.MethodDelete, "/delete-user", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	envelope := helpers.ParseEnvelope(t, body)
	assert.Equal(t, true, envelope["success"], body)
	assert.Equal(t, "Usuario eliminado exitosamente.", envelope["message"])

	var count int64
	ts.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count, "the user row is gone")

	ts.DB.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count, "the profile is gone")

	ts.DB.Model(&models.Event{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count, "events are hard-deleted with the account")

	ts.DB.Model(&models.AccessToken{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count, "tokens are revoked")

	res, _ = ts.SendRequest(t, http.MethodGet, "/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, photoURL, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "event photos are removed from storage")

	res, body = ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	})
	envelope = helpers.ParseEnvelope(t, body)
	assert.Equal(t, false, envelope["success"])
}
