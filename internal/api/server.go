package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/rpgo/pillar-calculator/internal/api/handlers"
	"github.com/rpgo/pillar-calculator/internal/api/middleware"
	"github.com/rpgo/pillar-calculator/internal/calculation"
	"github.com/rpgo/pillar-calculator/internal/config"
)

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg config.ServerConfig, engine *calculation.CalculationEngine, log *slog.Logger) *gin.Engine {
	if log == nil {
		log = slog.Default()
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))

	calculator := handlers.NewCalculatorHandler(engine)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/projection", calculator.Project)
		api.POST("/compare", calculator.Compare)
		api.POST("/sensitivity", calculator.Sensitivity)
		api.POST("/report/:format", calculator.Report)
		api.GET("/defaults", calculator.Defaults)
		api.GET("/formats", calculator.Formats)
	}
	return router
}

// NewHandler wraps the router with CORS handling for the configured origins.
func NewHandler(cfg config.ServerConfig, engine *calculation.CalculationEngine, log *slog.Logger) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(NewRouter(cfg, engine, log))
}

// NewServer returns an HTTP server listening on cfg.Addr.
func NewServer(cfg config.ServerConfig, engine *calculation.CalculationEngine, log *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewHandler(cfg, engine, log),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Serve runs srv until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, srv *http.Server, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("server.starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("server.stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
