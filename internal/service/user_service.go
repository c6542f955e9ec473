package service

import (
	"blogly/internal/config"
	"blogly/internal/models"
	"blogly/internal/repository"
	"context"
)

type UserService interface {
	CreateUser(ctx context.Context, form models.CreateUserForm) (*models.User, error)
	UpdateUser(ctx context.Context, userID int64, form models.UpdateUserForm) (*models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *userService) CreateUser(ctx context.Context, form models.CreateUserForm) (*models.User, error) {
	form = form.WithDefaults()

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		ImageURL:  form.ImageURL,
	}

	err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, form models.UpdateUserForm) (*models.User, error) {
	// get user by id
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// пустые поля формы сохраняют прежние значения
	updated := form.Merge(*user)

	err = s.userRepo.UpdateUser(ctx, &updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	err := s.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}

	return nil
}
