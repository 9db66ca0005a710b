package mapper

import (
	apperrors "ashen-backend/internal/common/errors"
	"ashen-backend/internal/features/user/models"
)

// ToPublic maps a stored User to its public projection, dropping
// email, links, is_active and the identifier. It fails only when a
// required field is absent from the stored record, which should not
// occur for well-formed data.
func ToPublic(user *models.User) (*models.PublicUser, error) {
	if user.Username == "" {
		return nil, apperrors.NewProjectionError("username")
	}
	if user.DisplayName == "" {
		return nil, apperrors.NewProjectionError("display_name")
	}

	return &models.PublicUser{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
	}, nil
}

// ToAdminView maps a stored User to the admin listing shape with the
// opaque identifier rendered as text. A zero identifier is passed
// through as absent rather than treated as an error.
func ToAdminView(user *models.User) *models.AdminUser {
	view := &models.AdminUser{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
		Links:       user.Links,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
	}
	if !user.ID.IsZero() {
		view.ID = user.ID.Hex()
	}
	return view
}
