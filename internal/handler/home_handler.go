package handlers

import (
	"fmt"
	"net/http"
)

// Home - корень сайта сразу уводит на список пользователей
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/users", http.StatusFound)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesRepo.CountTablesDB()
	if err != nil {
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	fmt.Fprintf(w, "OK, tables: %d\n", count)
}
