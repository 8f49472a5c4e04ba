package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrationForm struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Name                 string `json:"name" validate:"required,max=100"`
}

type dateForm struct {
	Start string `json:"start" validate:"required,dateonly"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registrationForm{
		Email:                "not-an-email",
		Password:             "secret",
		PasswordConfirmation: "different",
		Name:                 "Ana",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password_confirmation")
	assert.NotContains(t, vErr.Errors, "Email", "field names come from json tags")
}

func TestValidatePasses(t *testing.T) {
	v := New()

	err := v.Validate(&registrationForm{
		Email:                "ana@test.com",
		Password:             "secret",
		PasswordConfirmation: "secret",
		Name:                 "Ana",
	})
	assert.NoError(t, err)
}

func TestDateonlyRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dateForm{Start: "2026-03-10"}))

	for _, bad := range []string{"10/03/2026", "2026-03-10T00:00:00Z", "yesterday"} {
		err := v.Validate(&dateForm{Start: bad})
		require.Error(t, err, "value %q should fail", bad)

		vErr := err.(*ValidationError)
		assert.Equal(t, "Must be a date in YYYY-MM-DD format", vErr.Errors["start"])
	}
}

func TestRequiredBeatsDateonlyOnEmpty(t *testing.T) {
	v := New()

	err := v.Validate(&dateForm{Start: ""})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "This field is required", vErr.Errors["start"])
}
