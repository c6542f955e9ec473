package main

import (
	"blogly/cmd/app"
	"blogly/internal/config"
	handlers "blogly/internal/handler"
	"blogly/internal/middleware"
	"blogly/internal/render"
	"fmt"
	"log"
	"net/http"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatalf("Не удалось загрузить шаблоны: %v", err)
	}

	handler := handlers.NewHandlers(repo, services, cfg, renderer)

	// setting up routes
	router := handler.Routes()

	handlerChain := middleware.Chain(
		router,
		middleware.RecoverMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)
	fmt.Printf("Адресс: http://localhost:%d/\n", cfg.ServerPort)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
