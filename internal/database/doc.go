// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── errors.go        # Shared invariant-violation errors
//	├── books/           # Catalog CRUD, search, genres, cascading delete
//	├── reviews/         # Review CRUD and derived-rating maintenance
//	└── journal/         # Reading-journal entries, one per book
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./bookify.db")
//
//	booksRepo := books.NewRepository(db.DB)
//	reviewsRepo := reviews.NewRepository(db.DB)
//	journalRepo := journal.NewRepository(db.DB)
//
// The repositories implement the store interfaces that the HTTP layer
// declares in internal/http (CatalogStore, ReviewStore, JournalStore);
// compile-time checks live in internal/interfaces.
//
// # Error Conventions
//
// Lookups of missing records return gorm.ErrRecordNotFound, which the
// HTTP layer maps to 404. Invariant violations return the sentinel
// errors in errors.go (mapped to 409). Every mutating operation runs in
// a single transaction so cascades and the derived rating are never
// observed half-applied.
package database
