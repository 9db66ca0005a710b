package mapper

import (
	"encoding/json"
	"testing"
	"time"

	apperrors "ashen-backend/internal/common/errors"
	"ashen-backend/internal/features/user/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func storedUser() *models.User {
	bio := "Hello"
	return &models.User{
		ID:          primitive.NewObjectID(),
		Username:    "alice",
		DisplayName: "Alice",
		Email:       "alice@example.com",
		Bio:         &bio,
		Links:       []models.Link{{Label: "Site", URL: "https://alice.example"}},
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestToPublic_DropsPrivateFields(t *testing.T) {
	pub, err := ToPublic(storedUser())
	require.NoError(t, err)

	raw, err := json.Marshal(pub)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.NotContains(t, fields, "email")
	assert.NotContains(t, fields, "links")
	assert.NotContains(t, fields, "is_active")
	assert.NotContains(t, fields, "_id")
	assert.Equal(t, "alice", fields["username"])
	assert.Equal(t, "Alice", fields["display_name"])
}

func TestToPublic_NullsForAbsentOptionals(t *testing.T) {
	user := storedUser()
	user.Bio = nil
	user.AvatarURL = nil

	pub, err := ToPublic(user)
	require.NoError(t, err)

	raw, err := json.Marshal(pub)
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","display_name":"Alice","bio":null,"avatar_url":null}`, string(raw))
}

func TestToPublic_MissingRequiredField(t *testing.T) {
	user := storedUser()
	user.DisplayName = ""

	pub, err := ToPublic(user)
	assert.Nil(t, pub)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeProjection, appErr.Code)
}

func TestToAdminView_StringifiesID(t *testing.T) {
	user := storedUser()

	view := ToAdminView(user)
	assert.Equal(t, user.ID.Hex(), view.ID)
	assert.Equal(t, user.Email, view.Email)
	assert.Equal(t, user.Links, view.Links)
	assert.True(t, view.IsActive)
}

func TestToAdminView_ZeroIDPassedThrough(t *testing.T) {
	user := storedUser()
	user.ID = primitive.NilObjectID

	view := ToAdminView(user)
	assert.Empty(t, view.ID)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"_id"`)
}
