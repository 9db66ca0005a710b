package models

import (
	"strings"
	"testing"

	apperrors "ashen-backend/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *CreateUserInput {
	return &CreateUserInput{
		Username:    "carol",
		DisplayName: "Carol",
		Email:       "carol@example.com",
	}
}

func TestValidateCreate_AppliesDefaults(t *testing.T) {
	user, verr := ValidateCreate(validInput())
	require.Nil(t, verr)

	assert.NotNil(t, user.Links)
	assert.Empty(t, user.Links)
	assert.True(t, user.IsActive)
	assert.Nil(t, user.Bio)
	assert.Nil(t, user.AvatarURL)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestValidateCreate_ExplicitIsActiveFalse(t *testing.T) {
	input := validInput()
	inactive := false
	input.IsActive = &inactive

	user, verr := ValidateCreate(input)
	require.Nil(t, verr)
	assert.False(t, user.IsActive)
}

func TestValidateCreate_UsernameLength(t *testing.T) {
	cases := map[string]string{
		"too short": "ab",
		"too long":  strings.Repeat("a", 25),
	}
	for name, username := range cases {
		t.Run(name, func(t *testing.T) {
			input := validInput()
			input.Username = username

			user, verr := ValidateCreate(input)
			require.NotNil(t, verr)
			assert.Nil(t, user)
			assert.Equal(t, apperrors.ErrCodeValidation, verr.Code)
			assert.Contains(t, verr.Details, "username")
		})
	}
}

func TestValidateCreate_UsernameCharset(t *testing.T) {
	for _, username := range []string{"has space", "dash-ed", "dötted", "semi;colon"} {
		input := validInput()
		input.Username = username

		_, verr := ValidateCreate(input)
		require.NotNil(t, verr, "username %q should be rejected", username)
		assert.Contains(t, verr.Details, "username")
	}

	input := validInput()
	input.Username = "Under_score_09"
	_, verr := ValidateCreate(input)
	assert.Nil(t, verr)
}

func TestValidateCreate_BioTooLong(t *testing.T) {
	input := validInput()
	bio := strings.Repeat("x", 181)
	input.Bio = &bio

	_, verr := ValidateCreate(input)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Details, "bio")
}

func TestValidateCreate_LinkURL(t *testing.T) {
	input := validInput()
	input.Links = []LinkInput{{Label: "Site", URL: "not a url"}}

	_, verr := ValidateCreate(input)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Details, "links[0].url")

	input.Links = []LinkInput{{Label: "Site", URL: "https://example.com/me"}}
	user, verr := ValidateCreate(input)
	require.Nil(t, verr)
	require.Len(t, user.Links, 1)
	assert.Equal(t, "Site", user.Links[0].Label)
}

func TestValidateCreate_EnumeratesEveryViolation(t *testing.T) {
	input := &CreateUserInput{
		Username:    "a",
		DisplayName: "",
		Email:       "",
		Links:       []LinkInput{{Label: "", URL: "nope"}},
	}

	_, verr := ValidateCreate(input)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Details, "username")
	assert.Contains(t, verr.Details, "display_name")
	assert.Contains(t, verr.Details, "email")
	assert.Contains(t, verr.Details, "links[0].label")
	assert.Contains(t, verr.Details, "links[0].url")
}
