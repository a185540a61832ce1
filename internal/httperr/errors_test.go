package httperr_test

import (
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"taskboard/internal/httperr"
)

func TestFromBinding_ValidatorErrors(t *testing.T) {
	type form struct {
		Name     string `validate:"required,min=2"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	v := validator.New()
	err := v.Struct(form{Name: "A", Email: "nope", Password: "123"})
	assert.Error(t, err)

	e := httperr.FromBinding(err)
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Equal(t, "validation failed", e.Message)
	assert.Len(t, e.Fields, 3)

	byField := map[string]string{}
	for _, f := range e.Fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "must be at least 2 characters", byField["Name"])
	assert.Equal(t, "must be a valid email address", byField["Email"])
	assert.Equal(t, "must be at least 6 characters", byField["Password"])
}

func TestFromBinding_NonValidatorError(t *testing.T) {
	e := httperr.FromBinding(assert.AnError)
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Empty(t, e.Fields)
}

func TestInvalidCredentialsIsNonSpecific(t *testing.T) {
	e := httperr.InvalidCredentials()
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.NotContains(t, e.Message, "email not found")
	assert.NotContains(t, e.Message, "wrong password")
}
