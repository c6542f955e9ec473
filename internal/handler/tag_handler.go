package handlers

import (
	"blogly/internal/models"
	"blogly/internal/repository"
	"errors"
	"fmt"
	"net/http"
)

func (h *Handlers) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.TagRepo.List(r.Context())
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "tag_list.html", map[string]interface{}{
		"Tags": tags,
	})
}

func (h *Handlers) NewTagForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "new_tag.html", nil)
}

func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderServerError(w, err)
		return
	}

	// имя приходит из поля формы "tag", дубликаты не проверяем -
	// нарушение UNIQUE уйдёт страницей 500
	form := models.TagForm{
		Name: r.PostFormValue("tag"),
	}

	_, err := h.TagService.CreateTag(r.Context(), form)
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, "/tags", http.StatusFound)
}

func (h *Handlers) ShowTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	tag, err := h.TagRepo.GetByID(r.Context(), tagID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	posts, err := h.TagRepo.GetPostsByTagID(r.Context(), tagID)
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "tag_details.html", map[string]interface{}{
		"Tag":   tag,
		"Posts": posts,
	})
}

func (h *Handlers) EditTagForm(w http.ResponseWriter, r *http.Request) {
	tagID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	tag, err := h.TagRepo.GetByID(r.Context(), tagID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "edit_tag.html", map[string]interface{}{
		"Tag": tag,
	})
}

func (h *Handlers) UpdateTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderServerError(w, err)
		return
	}

	form := models.TagForm{
		Name: r.PostFormValue("tag"),
	}

	_, err = h.TagService.UpdateTag(r.Context(), tagID, form)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/tags/%d", tagID), http.StatusFound)
}

func (h *Handlers) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	if err := h.TagService.DeleteTag(r.Context(), tagID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, "/tags", http.StatusFound)
}
