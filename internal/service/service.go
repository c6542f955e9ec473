package service

import (
	"blogly/internal/config"
	"blogly/internal/repository"
)

type Service struct {
	User UserService
	Post PostService
	Tag  TagService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		User: NewUserService(rep.User, cfg),
		Post: NewPostService(rep.Post, cfg),
		Tag:  NewTagService(rep.Tag, cfg),
	}
}
