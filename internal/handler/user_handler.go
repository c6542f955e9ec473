package handlers

import (
	"blogly/internal/models"
	"blogly/internal/repository"
	"errors"
	"fmt"
	"net/http"
)

// flashNameRequired показывается при пустом имени или фамилии -
// единственная валидируемая форма во всём приложении
const flashNameRequired = "Users must have both a First Name and a Last Name, please try again."

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.ListUsers(r.Context())
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "list.html", map[string]interface{}{
		"Users": users,
	})
}

func (h *Handlers) NewUserForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "new_user.html", nil)
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderServerError(w, err)
		return
	}

	form := models.CreateUserForm{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		ImageURL:  r.PostFormValue("image_url"),
	}

	// пустое имя или фамилия: повторный показ формы с flash-сообщением,
	// в БД ничего не пишем
	if err := h.Validate.Struct(form); err != nil {
		h.Renderer.Render(w, http.StatusOK, "new_user.html", map[string]interface{}{
			"Flash": []string{flashNameRequired},
		})
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), form)
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusFound)
}

func (h *Handlers) ShowUser(w http.ResponseWriter, r *http.Request) {
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

	posts, err := h.PostRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		h.renderServerError(w, err)
		return
	}

	h.Renderer.Render(w, http.StatusOK, "user_details.html", map[string]interface{}{
		"User":  user,
		"Posts": posts,
	})
}

func (h *Handlers) EditUserForm(w http.ResponseWriter, r *http.Request) {
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

	h.Renderer.Render(w, http.StatusOK, "edit_user.html", map[string]interface{}{
		"User": user,
	})
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderServerError(w, err)
		return
	}

	form := models.UpdateUserForm{
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		ImageURL:  r.PostFormValue("image_url"),
	}

	_, err = h.UserService.UpdateUser(r.Context(), userID, form)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%d", userID), http.StatusFound)
}

// DeleteUser удаляет слепо: несуществующий id не ошибка.
// Редирект на корень, не на /users
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "id")
	if err != nil {
		h.renderNotFound(w)
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), userID); err != nil {
		h.renderServerError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
