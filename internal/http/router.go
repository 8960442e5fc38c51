package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bookify/bookify-server/internal/database"
)

// RouterConfig carries all dependencies the router needs. Receiving
// them as one struct keeps the constructor testable and the parameter
// count down.
type RouterConfig struct {
	Database       *database.Database
	CatalogStore   CatalogStore
	ReviewStore    ReviewStore
	JournalStore   JournalStore
	AllowedOrigins []string
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.CatalogStore)
	reviewsController := NewReviewsController(cfg.ReviewStore)
	journalController := NewJournalController(cfg.JournalStore)

	api := router.Group("/api")
	{
		api.GET("/health", health.Status)

		api.GET("/books", booksController.ListBooks)
		api.POST("/books", booksController.CreateBook)
		api.GET("/books/:id", booksController.GetBook)
		api.DELETE("/books/:id", booksController.DeleteBook)
		api.GET("/genres", booksController.ListGenres)

		api.POST("/reviews", reviewsController.CreateReview)
		api.DELETE("/reviews/:id", reviewsController.DeleteReview)

		api.GET("/journal", journalController.ListJournalEntries)
		api.POST("/journal", journalController.CreateJournalEntry)
		api.PUT("/journal/:id", journalController.UpdateJournalEntry)
		api.DELETE("/journal/:id", journalController.DeleteJournalEntry)
	}

	return router
}
