package service

import (
	"context"
	"errors"

	apperrors "ashen-backend/internal/common/errors"
	"ashen-backend/internal/features/user/mapper"
	"ashen-backend/internal/features/user/models"
	"ashen-backend/internal/features/user/repository"
)

// listLimit caps both the public and the admin listing.
const listLimit = 100

type UserService interface {
	Create(ctx context.Context, input *models.CreateUserInput) (*models.CreatedResponse, error)
	ListPublic(ctx context.Context) ([]*models.PublicUser, error)
	ListAdmin(ctx context.Context) ([]*models.AdminUser, error)
	Delete(ctx context.Context, username string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create validates the input, rejects duplicate usernames and emails,
// and inserts the record. The email check only runs once the username
// check has passed. The store's unique indexes back both checks, so a
// concurrent duplicate that slips past them still surfaces as a
// conflict from the insert.
func (s *userService) Create(ctx context.Context, input *models.CreateUserInput) (*models.CreatedResponse, error) {
	user, verr := models.ValidateCreate(input)
	if verr != nil {
		return nil, verr
	}

	if err := s.checkAvailable(ctx, user); err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflictError("username", "Username or email already exists")
		}
		return nil, apperrors.NewDatabaseError("insert", err)
	}

	return &models.CreatedResponse{ID: id.Hex(), Username: user.Username}, nil
}

func (s *userService) checkAvailable(ctx context.Context, user *models.User) error {
	_, err := s.repo.FindByUsername(ctx, user.Username)
	switch {
	case err == nil:
		return apperrors.NewConflictError("username", "Username already exists")
	case !errors.Is(err, repository.ErrNotFound):
		return apperrors.NewDatabaseError("find username", err)
	}

	_, err = s.repo.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return apperrors.NewConflictError("email", "Email already registered")
	case !errors.Is(err, repository.ErrNotFound):
		return apperrors.NewDatabaseError("find email", err)
	}

	return nil
}

func (s *userService) ListPublic(ctx context.Context) ([]*models.PublicUser, error) {
	users, err := s.repo.List(ctx, listLimit)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list", err)
	}

	out := make([]*models.PublicUser, 0, len(users))
	for _, u := range users {
		pub, err := mapper.ToPublic(u)
		if err != nil {
			return nil, err
		}
		out = append(out, pub)
	}
	return out, nil
}

func (s *userService) ListAdmin(ctx context.Context) ([]*models.AdminUser, error) {
	users, err := s.repo.List(ctx, listLimit)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list", err)
	}

	out := make([]*models.AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, mapper.ToAdminView(u))
	}
	return out, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	if err := s.repo.DeleteByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFoundError("User", username)
		}
		return apperrors.NewDatabaseError("delete", err)
	}
	return nil
}
