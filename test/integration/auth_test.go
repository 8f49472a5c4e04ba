package integration

import (
	"net/http"
	"testing"

	"agenda_backend/internal/models"
	"agenda_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := helpers.NewTestServer(t)
	email := helpers.UniqueEmail("register")

	res, body := ts.SendRequest(t, http.MethodPost, "/register", "", map[string]interface{}{
		"email":                 email,
		"password":              "secret123",
		"password_confirmation": "secret123",
		"name":                  "Ana",
		"surname":               "García",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := helpers.ParseEnvelope(t, body)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Registro exitoso.", envelope["message"])

	res, body = ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope = helpers.ParseEnvelope(t, body)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Bienvenido, Ana García.", envelope["message"])

	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)
	email := helpers.UniqueEmail("dup")

	payload := map[string]interface{}{
		"email":                 email,
		"password":              "secret123",
		"password_confirmation": "secret123",
		"name":                  "Ana",
		"surname":               "García",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/register", "", payload)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/register", "", payload)
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := helpers.ParseEnvelope(t, body)
	assert.Equal(t, false, envelope["success"])
	assert.Contains(t, envelope["message"], "correo electrónico ya esta registrado")

	var count int64
	ts.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	assert.Equal(t, int64(1), count, "duplicate registration must not create a second user")
}

func TestRegisterValidation(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/register", "", map[string]interface{}{
		"email":                 "not-an-email",
		"password":              "secret123",
		"password_confirmation": "different",
		"name":                  "Ana",
		"surname":               "García",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := helpers.ParseEnvelope(t, body)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Error de validación.", envelope["message"])

	errs := envelope["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password_confirmation")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	email := helpers.UniqueEmail("wrongpass")
	helpers.CreateUser(t, ts.DB, email, "secret123", "Ana", "García")

	res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": "not-the-password",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := helpers.ParseEnvelope(t, body)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "El usuario o contraseña son incorrectos.", envelope["message"])
}

func TestLoginDisabledUser(t *testing.T) {
	ts := helpers.NewTestServer(t)
	email := helpers.UniqueEmail("disabled")
	user := helpers.CreateUser(t, ts.DB, email, "secret123", "Ana", "García")

	require.NoError(t, ts.DB.Model(&models.User{}).Where("id = ?", user.ID).
		Update("status", models.StatusDisabled).Error)

	res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := helpers.ParseEnvelope(t, body)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "El usuario no existe o no está activo.", envelope["message"])
}

func TestLogoutRevokesToken(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, helpers.UniqueEmail("logout"), "secret123")

	res, _ := ts.SendRequest(t, http.MethodGet, "/user", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodDelete, "/logout", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	envelope := helpers.ParseEnvelope(t, body)
	assert.Equal(t, "Sesión cerrada exitosamente.", envelope["message"])

	res, _ = ts.SendRequest(t, http.MethodGet, "/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "a revoked token must stop working")
}

func TestChangePassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	email := helpers.UniqueEmail("changepass")
	token, _ := helpers.CreateAndLoginUser(t, ts, email, "secret123")

	res, body := ts.SendRequest(t, http.MethodPut, "/change-password", token, map[string]interface{}{
		"current_password":      "wrong-password",
		"password":              "newsecret456",
		"password_confirmation": "newsecret456",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	envelope := helpers.ParseEnvelope(t, body)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "La contraseña actual es incorrecta.", envelope["message"])

	res, body = ts.SendRequest(t, http.MethodPut, "/change-password", token, map[string]interface{}{
		"current_password":      "secret123",
		"password":              "newsecret456",
		"password_confirmation": "newsecret456",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	envelope = helpers.ParseEnvelope(t, body)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, "Contraseña actualizada exitosamente.", envelope["message"])

	res, body = ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	})
	envelope = helpers.ParseEnvelope(t, body)
	assert.Equal(t, false, envelope["success"], "the old password must stop working")

	res, body = ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    email,
		"password": "newsecret456",
	})
	envelope = helpers.ParseEnvelope(t, body)
	assert.Equal(t, true, envelope["success"], "the new password must work: "+body)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/events", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
