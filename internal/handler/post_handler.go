package handlers

import (
	"blogly/internal/models"
	"blogly/internal/repository"
	"errors"
	"fmt"
	"net/http"
)

func (h *Handlers) NewPostForm(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "new_post.html", map[string]interface{}{
		"User": user,
	})
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderServerError(w, err)
		return
	}

	// заголовок и текст не валидируются: пустая отправка
	// упадёт на NOT NULL и уйдёт страницей 500
	form := models.PostForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	post, err := h.PostService.CreatePost(r.Context(), user.ID, form)
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%d", post.ID), http.StatusFound)
}

func (h *Handlers) ShowPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), post.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "post_details.html", map[string]interface{}{
		"Post": post,
		"User": user,
	})
}

func (h *Handlers) EditPostForm(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "edit_post.html", map[string]interface{}{
		"Post": post,
	})
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderServerError(w, err)
		return
	}

	form := models.PostForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	// известный пробел: отсутствующий пост здесь не переводится
	// в 404, любая ошибка уходит страницей 500
	_, err = h.PostService.UpdatePost(r.Context(), postID, form)
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%d", postID), http.StatusFound)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	ownerID, err := h.PostService.DeletePost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%d", ownerID), http.StatusFound)
}
