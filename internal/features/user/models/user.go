package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Link represents one external profile link. Order within a user's
// links slice is display order.
type Link struct {
	Label string  `bson:"label" json:"label" example:"GitHub"`
	URL   string  `bson:"url" json:"url" example:"https://github.com/johndoe"`
	Icon  *string `bson:"icon,omitempty" json:"icon,omitempty" example:"github"`
}

// User is the stored profile document, one per user in the "user"
// collection. The ObjectID is assigned by the store on insert and is
// immutable afterwards.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username    string             `bson:"username" json:"username" example:"johndoe"`
	DisplayName string             `bson:"display_name" json:"display_name" example:"John Doe"`
	Email       string             `bson:"email" json:"email" example:"john@example.com"`
	Bio         *string            `bson:"bio,omitempty" json:"bio,omitempty" example:"Building things"`
	AvatarURL   *string            `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Links       []Link             `bson:"links" json:"links"`
	IsActive    bool               `bson:"is_active" json:"is_active" example:"true"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at" example:"2024-03-15T14:30:00Z"`
}

// PublicUser is the public-facing projection of a profile: email,
// links, is_active and the identifier are never included. Bio and
// avatar_url serialize as null when absent.
type PublicUser struct {
	Username    string  `json:"username" example:"johndoe"`
	DisplayName string  `json:"display_name" example:"John Doe"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
}

// AdminUser is the admin-listing projection: the full record with the
// opaque identifier rendered as text.
type AdminUser struct {
	ID          string    `json:"_id,omitempty" example:"662a1f0c9a1b2c3d4e5f6a7b"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Bio         *string   `json:"bio,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	Links       []Link    `json:"links"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreatedResponse is returned by the create endpoint.
type CreatedResponse struct {
	ID       string `json:"id" example:"662a1f0c9a1b2c3d4e5f6a7b"`
	Username string `json:"username" example:"johndoe"`
}

// DeletedResponse is returned by the admin delete endpoint.
type DeletedResponse struct {
	Status   string `json:"status" example:"deleted"`
	Username string `json:"username" example:"johndoe"`
}

// LinkInput is the untrusted link shape accepted on create.
type LinkInput struct {
	Label string  `json:"label" validate:"required"`
	URL   string  `json:"url" validate:"required,url"`
	Icon  *string `json:"icon"`
}

// CreateUserInput is the untrusted body accepted by the create
// endpoint. IsActive is tri-state so an omitted value can default to
// true.
type CreateUserInput struct {
	Username    string      `json:"username" validate:"required,min=3,max=24,handle"`
	DisplayName string      `json:"display_name" validate:"required,min=1,max=64"`
	Email       string      `json:"email" validate:"required"`
	Bio         *string     `json:"bio" validate:"omitempty,max=180"`
	AvatarURL   *string     `json:"avatar_url"`
	Links       []LinkInput `json:"links" validate:"omitempty,dive"`
	IsActive    *bool       `json:"is_active"`
}
