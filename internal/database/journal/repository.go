// Package journal provides database operations for reading-journal
// entries and enforces the one-entry-per-book invariant.
package journal

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bookify/bookify-server/internal/database"
	"github.com/bookify/bookify-server/internal/entities"
)

// Repository handles all journal database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new journal repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpdateParams carries a partial journal update; nil fields are left
// unchanged. UpdatedAt is refreshed on every successful update, even
// when the supplied values equal the stored ones.
type UpdateParams struct {
	UserNotes *string
	Status    *entities.JournalStatus
	Rating    *int
}

// Create stores a new journal entry for a book, defaulting the status
// to want-to-read when omitted. Returns gorm.ErrRecordNotFound when the
// book does not exist and database.ErrJournalEntryExists when the book
// already has an entry.
func (r *Repository) Create(entry *entities.JournalEntry) error {
	if entry.Status == "" {
		entry.Status = entities.JournalStatusWantToRead
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		if err := tx.First(&book, entry.BookID).Error; err != nil {
			return err
		}

		var existing entities.JournalEntry
		err := tx.Where("book_id = ?", entry.BookID).First(&existing).Error
		if err == nil {
			return database.ErrJournalEntryExists
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create journal entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	// Reload with the parent book for the view join.
	return r.db.Preload("Book").First(entry, entry.ID).Error
}

// GetByID returns a journal entry with its parent book preloaded.
func (r *Repository) GetByID(id uint) (*entities.JournalEntry, error) {
	var entry entities.JournalEntry
	if err := r.db.Preload("Book").First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update applies a partial update to a journal entry. Returns
// gorm.ErrRecordNotFound when the entry does not exist.
func (r *Repository) Update(id uint, params UpdateParams) (*entities.JournalEntry, error) {
	var entry entities.JournalEntry
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Book").First(&entry, id).Error; err != nil {
			return err
		}

		if params.UserNotes != nil {
			entry.UserNotes = *params.UserNotes
		}
		if params.Status != nil {
			entry.Status = *params.Status
		}
		if params.Rating != nil {
			entry.Rating = params.Rating
		}

		// Save writes every column, so UpdatedAt is refreshed even when
		// the supplied fields are unchanged in value.
		if err := tx.Omit("Book").Save(&entry).Error; err != nil {
			return fmt.Errorf("failed to update journal entry %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns all journal entries with their parent books preloaded,
// optionally filtered to an exact status match.
func (r *Repository) List(status string) ([]entities.JournalEntry, error) {
	query := r.db.Preload("Book").Order("id ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var entries []entities.JournalEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// Delete removes a journal entry. Returns gorm.ErrRecordNotFound when
// the entry does not exist.
func (r *Repository) Delete(id uint) error {
	var entry entities.JournalEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&entities.JournalEntry{}, id).Error
}
