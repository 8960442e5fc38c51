// Package reviews provides database operations for book reviews and
// keeps the parent book's derived rating consistent with its review set.
package reviews

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bookify/bookify-server/internal/entities"
)

// Repository handles all review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a new review and recomputes the book's rating in the
// same transaction, so the rating is never observably stale.
// Returns gorm.ErrRecordNotFound when the book does not exist.
func (r *Repository) Create(review *entities.Review) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		if err := tx.First(&book, review.BookID).Error; err != nil {
			return err
		}
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		return recomputeRating(tx, review.BookID)
	})
}

// GetByID returns a review by id.
func (r *Repository) GetByID(id uint) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review and recomputes the book's rating in the same
// transaction. Returns gorm.ErrRecordNotFound when the review does not
// exist.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var review entities.Review
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.Review{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return recomputeRating(tx, review.BookID)
	})
}

// RecomputeRating re-derives a book's rating from its current review
// set. Used by the reconciliation sweep; the create/delete paths
// recompute inside their own transactions.
func (r *Repository) RecomputeRating(bookID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return recomputeRating(tx, bookID)
	})
}

// recomputeRating writes the arithmetic mean of the book's review
// ratings, or 0.0 when the book has no reviews. The stored value keeps
// full precision; rounding to one decimal happens at read time.
func recomputeRating(tx *gorm.DB, bookID uint) error {
	var reviews []entities.Review
	if err := tx.Where("book_id = ?", bookID).Find(&reviews).Error; err != nil {
		return fmt.Errorf("failed to load reviews for book %d: %w", bookID, err)
	}

	rating := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		rating = float64(sum) / float64(len(reviews))
	}

	err := tx.Model(&entities.Book{}).Where("id = ?", bookID).Update("rating", rating).Error
	if err != nil {
		return fmt.Errorf("failed to update rating for book %d: %w", bookID, err)
	}
	return nil
}
