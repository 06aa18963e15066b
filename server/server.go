package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"storelinks/database"
	"storelinks/internal/config"
	"storelinks/server/handlers"
	"storelinks/server/middleware"
	"storelinks/server/services"
)

// Server HTTP сервер очистки и сравнения списков магазинов
type Server struct {
	cfg        *config.Config
	db         *database.DB
	httpServer *http.Server
}

// NewServer собирает сервер: сервисы, обработчики, middleware, маршруты
func NewServer(cfg *config.Config, db *database.DB) *Server {
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.GzipMiddleware())
	router.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())

	dedupService := services.NewDedupService(db, cfg.ResultsDir)
	compareService := services.NewCompareService(db, cfg.ResultsDir)

	handlers.RegisterRoutes(router, handlers.Handlers{
		Inspect: handlers.NewInspectHandler(cfg),
		Dedup:   handlers.NewDedupHandler(dedupService, cfg),
		Compare: handlers.NewCompareHandler(compareService, cfg),
		Jobs:    handlers.NewJobsHandler(db),
	})
	handlers.RegisterSwaggerRoutes(router, "localhost:"+cfg.Port)

	return &Server{
		cfg: cfg,
		db:  db,
		httpServer: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Start запускает HTTP сервер и блокируется до остановки
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown останавливает сервер с ожиданием активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// EnsureDirectories создает каталоги загрузок и результатов
func EnsureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.UploadsDir, cfg.ResultsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		log.Printf("✓ Каталог готов: %s", dir)
	}
	return nil
}
