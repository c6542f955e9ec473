package service

import (
	"blogly/internal/config"
	"blogly/internal/models"
	"blogly/internal/repository"
	"context"
)

type TagService interface {
	CreateTag(ctx context.Context, form models.TagForm) (*models.Tag, error)
	UpdateTag(ctx context.Context, tagID int64, form models.TagForm) (*models.Tag, error)
	DeleteTag(ctx context.Context, tagID int64) error
}

type tagService struct {
	tagRepo repository.TagRepository
	cfg     *config.Config
}

func NewTagService(tagRepo repository.TagRepository, cfg *config.Config) TagService {
	return &tagService{
		tagRepo: tagRepo,
		cfg:     cfg,
	}
}

// CreateTag без предварительной проверки имени: дубликат
// упадёт на UNIQUE в БД
func (s *tagService) CreateTag(ctx context.Context, form models.TagForm) (*models.Tag, error) {
	tag := &models.Tag{
		Name: form.Name,
	}

	err := s.tagRepo.Create(ctx, tag)
	if err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) UpdateTag(ctx context.Context, tagID int64, form models.TagForm) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}

	updated := form.Merge(*tag)

	err = s.tagRepo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteTag сначала ищет тег, чтобы отсутствие превратилось в 404,
// затем удаляет по id. Связи в posttags не чистятся
func (s *tagService) DeleteTag(ctx context.Context, tagID int64) error {
	_, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return err
	}

	err = s.tagRepo.Delete(ctx, tagID)
	if err != nil {
		return err
	}

	return nil
}
