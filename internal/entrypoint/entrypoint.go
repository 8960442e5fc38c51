package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookify/bookify-server/internal/config"
	"github.com/bookify/bookify-server/internal/database"
	"github.com/bookify/bookify-server/internal/database/books"
	"github.com/bookify/bookify-server/internal/database/journal"
	"github.com/bookify/bookify-server/internal/database/reviews"
	http_controllers "github.com/bookify/bookify-server/internal/http"
	"github.com/bookify/bookify-server/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then shut down gracefully within the
	// configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookify v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	booksRepo := books.NewRepository(db.DB)
	reviewsRepo := reviews.NewRepository(db.DB)
	journalRepo := journal.NewRepository(db.DB)

	var sweeper *scheduler.RatingSweeper
	if cfg.RatingSweep.Enabled {
		sweeper = scheduler.NewRatingSweeper(db, reviewsRepo, cfg.RatingSweep.Schedule)
		if err := sweeper.Start(); err != nil {
			log.Fatalf("Failed to start rating sweep: %v", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       db,
		CatalogStore:   booksRepo,
		ReviewStore:    reviewsRepo,
		JournalStore:   journalRepo,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Version:        version,
	})

	onShutdown := func(ctx context.Context) {
		if sweeper != nil {
			sweeper.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
