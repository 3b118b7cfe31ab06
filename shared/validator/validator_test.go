package validator_test

import (
	"net/http"
	"testing"

	"flavours/shared/failure"
	"flavours/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	Name   string   `json:"name"   validate:"required,min=2"`
	Email  string   `json:"email"  validate:"required,email"`
	Phones []string `json:"phones" validate:"min=1,dive,min=10"`
	Nested nested   `json:"nested"`
}

type nested struct {
	Level int `json:"level" validate:"min=1"`
}

func TestValidateStruct_Valid(t *testing.T) {
	p := profile{
		Name:   "Alex",
		Email:  "alex@example.com",
		Phones: []string{"4165550100"},
		Nested: nested{Level: 3},
	}

	assert.NoError(t, validator.ValidateStruct(&p))
}

func TestValidateStruct_PathsFollowJSONTags(t *testing.T) {
	p := profile{
		Name:   "A",
		Email:  "not-an-email",
		Phones: []string{"4165550100"},
		Nested: nested{Level: 0},
	}

	err := validator.ValidateStruct(&p)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	fields := failure.GetFields(err)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "nested.level")
}

func TestValidateStruct_ArrayIndicesGrouped(t *testing.T) {
	p := profile{
		Name:   "Alex",
		Email:  "alex@example.com",
		Phones: []string{"123", "456"},
		Nested: nested{Level: 1},
	}

	err := validator.ValidateStruct(&p)
	require.Error(t, err)

	fields := failure.GetFields(err)
	require.Contains(t, fields, "phones")
	assert.Len(t, fields["phones"], 2)
	assert.NotContains(t, fields, "phones[0]")
}

func TestValidateStruct_RegisteredMessageOverridesTemplate(t *testing.T) {
	validator.RegisterMessages(map[string]string{
		"email|email": "Enter a real email address.",
	})

	p := profile{
		Name:   "Alex",
		Email:  "nope",
		Phones: []string{"4165550100"},
		Nested: nested{Level: 1},
	}

	err := validator.ValidateStruct(&p)
	require.Error(t, err)

	fields := failure.GetFields(err)
	require.Contains(t, fields, "email")
	assert.Equal(t, []string{"Enter a real email address."}, fields["email"])
}

func TestValidateStruct_GenericTemplateFallback(t *testing.T) {
	p := profile{
		Name:   "Alex",
		Email:  "alex@example.com",
		Phones: []string{"4165550100"},
		Nested: nested{Level: 0},
	}

	err := validator.ValidateStruct(&p)
	require.Error(t, err)

	fields := failure.GetFields(err)
	require.Contains(t, fields, "nested.level")
	assert.Equal(t, []string{"level must be greater than or equal to 1"}, fields["nested.level"])
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("alex@example.com", "email"))
	assert.Error(t, validator.ValidateVar("nope", "email"))
}
