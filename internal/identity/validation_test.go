package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	got := Normalize(Credentials{
		FirstName: " Jose\u0301 ",
		LastName:  "\tSharma",
		Email:     " a@example.com ",
		Password:  " spaced password ",
		Role:      "student\n",
	})

	assert.Equal(t, "Jos\u00e9", got.FirstName, "names are NFC-composed")
	assert.Equal(t, "Sharma", got.LastName)
	assert.Equal(t, "a@example.com", got.Email)
	assert.Equal(t, " spaced password ", got.Password, "password is never altered")
	assert.Equal(t, "student", got.Role)
}

func TestValidate_NameLengthCountsCharacters(t *testing.T) {
	v := newValidator()

	creds := validCredentials()
	// 100 two-byte characters are within the limit.
	name := make([]rune, 100)
	for i := range name {
		name[i] = 'é'
	}
	creds.FirstName = string(name)

	assert.NoError(t, validate(v, creds))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Messages: []string{"Invalid email address", "Role is required"}}

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation error: Invalid email address, Role is required", err.Error())
}
