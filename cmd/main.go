package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "crossblog/docs"
	"crossblog/internal/app"
	"crossblog/internal/config"
	"crossblog/internal/logger"
	"crossblog/internal/middleware"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title        Crossblog API
// @version      1.0
// @description  Статьи и комментарии к ним.
// @BasePath     /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.InitLogger(&config.Config{Log: "dev", LogLevel: "info"})
		logger.Log.Fatal("Ошибка загрузки конфига", zap.Error(err))
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("Некорректный конфиг", zap.Error(err))
	}
	for _, w := range warnings {
		logger.Log.Warn("Конфиг", zap.String("warning", w))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, closeApp, err := app.InitApp(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка инициализации приложения", zap.Error(err))
	}
	defer closeApp()

	// Swagger по префиксу /swagger/
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{"Location", middleware.HeaderRequestID},
		MaxAge:         86400,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsMiddleware.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Сервер запущен", zap.String("port", cfg.Port), zap.String("storage", cfg.Storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Остановка сервера")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Ошибка остановки сервера", zap.Error(err))
	}
}
