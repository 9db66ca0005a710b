package repository

import (
	"context"
	"errors"

	"ashen-backend/internal/features/user/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("duplicate key")
)

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	List(ctx context.Context, limit int64) ([]*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteByUsername(ctx context.Context, username string) error
}
