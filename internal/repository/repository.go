package repository

import (
	"blogly/internal/models"
	"context"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID int64) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int64) error
}

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, tagID int64) (*models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	GetPostsByTagID(ctx context.Context, tagID int64) ([]models.Post, error)
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, tagID int64) error
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	User   UserRepository
	Post   PostRepository
	Tag    TagRepository
	Tables TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Post:   NewPostRepository(db),
		Tag:    NewTagRepository(db),
		Tables: NewTablesRepository(db),
	}
}
