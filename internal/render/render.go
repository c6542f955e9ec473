package render

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer - тонкий слой над html/template: имя шаблона плюс
// контекст страницы, на выходе готовый HTML
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе шаблонов: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, statusCode int, name string, data map[string]interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	// статус уже ушёл, при сбое шаблона остаётся только залогировать
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("ошибка при рендеринге шаблона %s: %v", name, err)
	}
}
