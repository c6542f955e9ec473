package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// renderNotFound - стандартная страница 404
func (h *Handlers) renderNotFound(w http.ResponseWriter) {
	h.Renderer.Render(w, http.StatusNotFound, "404.html", nil)
}

// renderServerError - общая страница 500, детали только в лог
func (h *Handlers) renderServerError(w http.ResponseWriter, err error) {
	log.Printf("внутренняя ошибка: %v", err)
	h.Renderer.Render(w, http.StatusInternalServerError, "500.html", nil)
}

// NotFound вешается на роутер для незарегистрированных путей
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w)
}

func parseID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[key], 10, 64)
}
