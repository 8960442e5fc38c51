package entities

import (
	"time"
)

// JournalStatus labels a reading-journal entry. The three values are
// informational labels, not gated transitions: any status may be set
// from any other.
type JournalStatus string

const (
	JournalStatusWantToRead JournalStatus = "want-to-read"
	JournalStatusReading    JournalStatus = "reading"
	JournalStatusCompleted  JournalStatus = "completed"
)

// Book is the catalog aggregate root. It owns its Reviews and at most
// one JournalEntry; deleting a book cascades both.
type Book struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Title           string  `gorm:"index;size:200;not null" json:"title"`
	Author          string  `gorm:"index;size:200;not null" json:"author"`
	ISBN            *string `gorm:"uniqueIndex;size:20" json:"isbn,omitempty"`
	Description     string  `gorm:"type:text" json:"description,omitempty"`
	CoverImage      string  `gorm:"size:500" json:"cover_image,omitempty"`
	Genre           string  `gorm:"size:100" json:"genre,omitempty"`
	PublicationYear int     `json:"publication_year,omitempty"`

	// Rating is the arithmetic mean of the book's review ratings,
	// stored at full precision and rounded to one decimal on read.
	// 0.0 when the book has no reviews.
	Rating float64 `gorm:"default:0" json:"rating"`

	Reviews      []Review      `gorm:"foreignKey:BookID" json:"reviews,omitempty"`
	JournalEntry *JournalEntry `gorm:"foreignKey:BookID" json:"journal_entry,omitempty"`
}

// Review is a third-party rating and comment attached to a book.
// Reviews are immutable once created.
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BookID       uint      `gorm:"index;not null" json:"book_id"`
	ReviewerName string    `gorm:"size:200;not null" json:"reviewer_name"`
	Rating       int       `json:"rating"` // 1-5
	Comment      string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	Book Book `gorm:"foreignKey:BookID" json:"-"`
}

// JournalEntry is a user's private reading-status record for a book.
// The unique index on BookID enforces at most one entry per book.
type JournalEntry struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	BookID    uint          `gorm:"uniqueIndex;not null" json:"book_id"`
	UserNotes string        `gorm:"type:text" json:"user_notes,omitempty"`
	Status    JournalStatus `gorm:"size:20;default:'want-to-read'" json:"status"`
	Rating    *int          `json:"rating,omitempty"` // personal rating, independent of reviews
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Book Book `gorm:"foreignKey:BookID" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

func (Review) TableName() string {
	return "reviews"
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
