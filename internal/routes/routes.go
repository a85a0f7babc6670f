package routes

import (
	"net/http"

	"crossblog/internal/handlers"
	"crossblog/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitRoutes(
	router *mux.Router,
	articleH *handlers.ArticleHandler,
	commentH *handlers.CommentHandler,
) {
	router.Use(middleware.RequestID, middleware.Logging, middleware.Metrics, middleware.Recoverer)

	// --- Статьи ---
	router.HandleFunc("/articles", articleH.Search).Methods(http.MethodGet)
	router.HandleFunc("/articles", articleH.Post).Methods(http.MethodPost)
	router.HandleFunc("/articles/{id:[0-9]+}", articleH.Get).Methods(http.MethodGet)
	router.HandleFunc("/articles/{id:[0-9]+}", articleH.Put).Methods(http.MethodPut)
	router.HandleFunc("/articles/{id:[0-9]+}", articleH.Delete).Methods(http.MethodDelete)

	// --- Комментарии ---
	comments := router.PathPrefix("/articles/{articleId:[0-9]+}/comments").Subrouter()
	comments.HandleFunc("", commentH.List).Methods(http.MethodGet)
	comments.HandleFunc("", commentH.Post).Methods(http.MethodPost)
	comments.HandleFunc("/{commentId:[0-9]+}", commentH.Get).Methods(http.MethodGet)
	comments.HandleFunc("/{commentId:[0-9]+}", commentH.Put).Methods(http.MethodPut)
	comments.HandleFunc("/{commentId:[0-9]+}", commentH.Delete).Methods(http.MethodDelete)

	// --- Служебные ---
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}
