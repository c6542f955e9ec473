package service

import (
	"blogly/internal/config"
	"blogly/internal/models"
	"blogly/internal/repository"
	"context"
)

type PostService interface {
	CreatePost(ctx context.Context, userID int64, form models.PostForm) (*models.Post, error)
	UpdatePost(ctx context.Context, postID int64, form models.PostForm) (*models.Post, error)
	DeletePost(ctx context.Context, postID int64) (int64, error)
}

type postService struct {
	postRepo repository.PostRepository
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		cfg:      cfg,
	}
}

// CreatePost не валидирует заголовок и текст: пустые значения
// дойдут до ограничения NOT NULL в БД
func (p *postService) CreatePost(ctx context.Context, userID int64, form models.PostForm) (*models.Post, error) {
	post := &models.Post{
		Title:   form.Title,
		Content: form.Content,
		UserID:  userID,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, postID int64, form models.PostForm) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	updated := form.Merge(*post)

	err = p.postRepo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeletePost возвращает id владельца для редиректа на его страницу
func (p *postService) DeletePost(ctx context.Context, postID int64) (int64, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return 0, err
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return 0, err
	}

	return post.UserID, nil
}
