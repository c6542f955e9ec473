package handlers

import (
	"blogly/internal/config"
	"blogly/internal/render"
	"blogly/internal/repository"
	"blogly/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	UserService service.UserService
	UserRepo    repository.UserRepository
	PostService service.PostService
	PostRepo    repository.PostRepository
	TagService  service.TagService
	TagRepo     repository.TagRepository
	TablesRepo  repository.TablesRepository
	Cfg         *config.Config
	Validate    *validator.Validate
	Renderer    *render.Renderer
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config, renderer *render.Renderer) *Handlers {
	return &Handlers{
		UserService: service.User,
		UserRepo:    repo.User,
		PostService: service.Post,
		PostRepo:    repo.Post,
		TagService:  service.Tag,
		TagRepo:     repo.Tag,
		TablesRepo:  repo.Tables,
		Cfg:         config,
		Validate:    validator.New(),
		Renderer:    renderer,
	}
}
