// Package books provides database operations for the book catalog:
// creation with ISBN uniqueness, search with pagination, the genre
// listing, and the cascading book delete.
package books

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bookify/bookify-server/internal/database"
	"github.com/bookify/bookify-server/internal/entities"
)

// PageSize is the fixed number of books per search result page.
const PageSize = 15

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new book. Returns database.ErrDuplicateISBN when a
// book with the same ISBN already exists.
func (r *Repository) Create(book *entities.Book) error {
	if book.ISBN != nil && *book.ISBN != "" {
		var existing entities.Book
		err := r.db.Where("isbn = ?", *book.ISBN).First(&existing).Error
		if err == nil {
			return database.ErrDuplicateISBN
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
	}
	return r.db.Create(book).Error
}

// GetByID returns a book with its reviews preloaded in creation order.
// Returns gorm.ErrRecordNotFound when the book does not exist.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Reviews", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC, id ASC")
	}).First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Search returns one page of books matching the given filters, plus the
// total number of matches and the page count.
//
// The text filter is a case-insensitive substring match against title,
// author or ISBN; the genre filter is a case-insensitive substring match
// against genre. When both are supplied a book must satisfy both. An
// out-of-range page yields an empty slice with correct metadata.
func (r *Repository) Search(text, genre string, page int) ([]entities.Book, int64, int, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.applyFilters(r.db.Model(&entities.Book{}), text, genre).Count(&total).Error; err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count books: %w", err)
	}
	totalPages := int((total + PageSize - 1) / PageSize)

	// Order by id so that paging through a fixed query partitions the
	// result set with no duplicates or omissions at page boundaries.
	var books []entities.Book
	err := r.applyFilters(r.db.Model(&entities.Book{}), text, genre).
		Preload("Reviews").
		Order("id ASC").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&books).Error
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to search books: %w", err)
	}

	return books, total, totalPages, nil
}

func (r *Repository) applyFilters(query *gorm.DB, text, genre string) *gorm.DB {
	if text != "" {
		pattern := "%" + text + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?) OR LOWER(isbn) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if genre != "" {
		query = query.Where("LOWER(genre) LIKE LOWER(?)", "%"+genre+"%")
	}
	return query
}

// Genres returns the distinct non-empty genre values across all books.
func (r *Repository) Genres() ([]string, error) {
	var genres []string
	err := r.db.Model(&entities.Book{}).
		Where("genre IS NOT NULL AND genre <> ''").
		Distinct().
		Pluck("genre", &genres).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

// Delete removes a book together with its reviews and journal entry in
// a single transaction, so no partial cascade is ever observable.
// Returns gorm.ErrRecordNotFound when the book does not exist.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", id).Delete(&entities.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete reviews for book %d: %w", id, err)
		}
		if err := tx.Where("book_id = ?", id).Delete(&entities.JournalEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete journal entry for book %d: %w", id, err)
		}
		return tx.Delete(&entities.Book{}, id).Error
	})
}
