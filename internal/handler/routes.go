package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes собирает таблицу маршрутов; используется сервером и тестами
func (h *Handlers) Routes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", h.Home).Methods(http.MethodGet)
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	router.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	router.HandleFunc("/users/new", h.NewUserForm).Methods(http.MethodGet)
	router.HandleFunc("/users/new", h.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/users/{id:[0-9]+}", h.ShowUser).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}/edit", h.EditUserForm).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}/edit", h.UpdateUser).Methods(http.MethodPost)
	router.HandleFunc("/users/{id:[0-9]+}/delete", h.DeleteUser).Methods(http.MethodPost)

	router.HandleFunc("/users/{id:[0-9]+}/posts/new", h.NewPostForm).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}/posts/new", h.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id:[0-9]+}", h.ShowPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id:[0-9]+}/edit", h.EditPostForm).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id:[0-9]+}/edit", h.UpdatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id:[0-9]+}/delete", h.DeletePost).Methods(http.MethodPost)

	router.HandleFunc("/tags", h.ListTags).Methods(http.MethodGet)
	router.HandleFunc("/tags/new", h.NewTagForm).Methods(http.MethodGet)
	router.HandleFunc("/tags/new", h.CreateTag).Methods(http.MethodPost)
	router.HandleFunc("/tags/{id:[0-9]+}", h.ShowTag).Methods(http.MethodGet)
	router.HandleFunc("/tags/{id:[0-9]+}/edit", h.EditTagForm).Methods(http.MethodGet)
	router.HandleFunc("/tags/{id:[0-9]+}/edit", h.UpdateTag).Methods(http.MethodPost)
	router.HandleFunc("/tags/{id:[0-9]+}/delete", h.DeleteTag).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(h.NotFound)

	return router
}
