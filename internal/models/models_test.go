package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("").Valid())
	assert.False(t, Category("Hazardous").Valid())
	assert.False(t, Category("recyclable").Valid(), "categories are case-sensitive")
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	require.NoError(t, verr.OrNil())

	verr.Add("itemName", "required")
	verr.Add("quantity", "must be at least 1")

	err := verr.OrNil()
	require.Error(t, err)
	assert.Equal(t, "validation failed: itemName: required; quantity: must be at least 1", err.Error())

	var target *ValidationError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, []string{"itemName", "quantity"}, target.FieldNames())
}

func TestUserProfileOmitsPassword(t *testing.T) {
	u := &User{ID: "u1", Name: "Ada", Email: "ada@example.com", Password: "secret", Community: "EcoVille"}
	assert.Equal(t, &Profile{ID: "u1", Name: "Ada", Email: "ada@example.com", Community: "EcoVille"}, u.Profile())
}
