package app

import (
	"context"
	"fmt"

	"crossblog/internal/config"
	"crossblog/internal/db"
	"crossblog/internal/handlers"
	"crossblog/internal/logger"
	"crossblog/internal/repository"
	"crossblog/internal/repository/memstore"
	"crossblog/internal/routes"
	"crossblog/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// InitApp собирает репозитории, сервисы и маршруты. Возвращает функцию закрытия ресурсов.
func InitApp(ctx context.Context, cfg *config.Config) (*mux.Router, func(), error) {
	var (
		articleRepo repository.ArticleRepo
		commentRepo repository.CommentRepo
		closeFn     = func() {}
	)

	switch cfg.Storage {
	case config.StorageMemory:
		store := memstore.New()
		articleRepo = store.Articles()
		commentRepo = store.Comments()
		logger.Log.Info("Хранилище: память")

	case config.StoragePostgres:
		conn, err := db.NewPostgresConnection(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		logger.Log.Info("Подключение к БД установлено", zap.String("dsn", cfg.GetDSNSafe()))

		if cfg.DbMigrate {
			if err := db.Migrate(ctx, conn); err != nil {
				conn.Close()
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}

		articleRepo = repository.NewArticleRepo(conn)
		commentRepo = repository.NewCommentRepo(conn)
		closeFn = conn.Close

	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	router := NewRouter(articleRepo, commentRepo, services.SearchOptions{
		CaseSensitive: cfg.SearchCaseSensitive,
		Limit:         cfg.SearchLimit,
	})
	return router, closeFn, nil
}

// NewRouter: сервисы, хендлеры и маршруты поверх готовых репозиториев.
func NewRouter(articles repository.ArticleRepo, comments repository.CommentRepo, opts services.SearchOptions) *mux.Router {
	// Сервисы
	articleSvc := services.NewArticleService(articles, opts)
	commentSvc := services.NewCommentService(articles, comments)

	// Хендлеры
	articleH := handlers.NewArticleHandler(articleSvc)
	commentH := handlers.NewCommentHandler(commentSvc)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, articleH, commentH)

	return router
}
