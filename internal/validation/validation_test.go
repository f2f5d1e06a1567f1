package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evmotors/internal/validation"
)

func TestValidators(t *testing.T) {
	v := validation.Violations{}
	validation.Required("name", "  ", v)
	validation.PositiveFloat("price", 0, v)
	validation.Email("email", "nope", v)
	assert.Len(t, v, 3)

	ok := validation.Violations{}
	validation.Required("name", "x", ok)
	validation.PositiveFloat("price", 0.01, ok)
	validation.Email("email", "a@b.com", ok)
	assert.True(t, ok.Empty())
}

func TestErrOrder(t *testing.T) {
	v := validation.Violations{}
	validation.Required("name", "", v)
	validation.Required("location", "", v)

	err := v.Err("name", "location")
	var fe *validation.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "name", fe.Field)
	assert.Equal(t, "name must be a non-empty string", fe.Error())

	assert.NoError(t, validation.Violations{}.Err("name"))
}
