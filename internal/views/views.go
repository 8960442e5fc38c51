// Package views projects entities into API response shapes. All
// projections are side-effect-free: derived values (rounded rating,
// review count, parent book title) are computed at read time and never
// written back.
package views

import (
	"math"
	"time"

	"github.com/bookify/bookify-server/internal/entities"
)

// BookSummary is the list/creation projection of a book.
type BookSummary struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	ISBN            *string `json:"isbn"`
	Description     string  `json:"description"`
	CoverImage      string  `json:"cover_image"`
	Genre           string  `json:"genre"`
	PublicationYear int     `json:"publication_year"`
	Rating          float64 `json:"rating"`
	ReviewCount     int     `json:"review_count"`
}

// BookDetail is the single-book projection: the summary plus the full
// review list in creation order.
type BookDetail struct {
	BookSummary
	Reviews []ReviewView `json:"reviews"`
}

// ReviewView is the API projection of a review.
type ReviewView struct {
	ID           uint   `json:"id"`
	BookID       uint   `json:"book_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"created_at"`
}

// JournalEntryView is the API projection of a journal entry, with the
// parent book's title resolved at read time.
type JournalEntryView struct {
	ID        uint                   `json:"id"`
	BookID    uint                   `json:"book_id"`
	BookTitle string                 `json:"book_title"`
	UserNotes string                 `json:"user_notes"`
	Status    entities.JournalStatus `json:"status"`
	Rating    *int                   `json:"rating"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

// NewBookSummary projects a book. The stored rating keeps full
// precision; summaries report it rounded to one decimal place.
func NewBookSummary(book *entities.Book) BookSummary {
	return BookSummary{
		ID:              book.ID,
		Title:           book.Title,
		Author:          book.Author,
		ISBN:            book.ISBN,
		Description:     book.Description,
		CoverImage:      book.CoverImage,
		Genre:           book.Genre,
		PublicationYear: book.PublicationYear,
		Rating:          roundRating(book.Rating),
		ReviewCount:     len(book.Reviews),
	}
}

// NewBookSummaries projects a slice of books, returning an empty slice
// (never nil) so the JSON encodes as [].
func NewBookSummaries(books []entities.Book) []BookSummary {
	summaries := make([]BookSummary, 0, len(books))
	for i := range books {
		summaries = append(summaries, NewBookSummary(&books[i]))
	}
	return summaries
}

// NewBookDetail projects a book with its preloaded reviews.
func NewBookDetail(book *entities.Book) BookDetail {
	reviews := make([]ReviewView, 0, len(book.Reviews))
	for i := range book.Reviews {
		reviews = append(reviews, NewReviewView(&book.Reviews[i]))
	}
	return BookDetail{
		BookSummary: NewBookSummary(book),
		Reviews:     reviews,
	}
}

// NewReviewView projects a review.
func NewReviewView(review *entities.Review) ReviewView {
	return ReviewView{
		ID:           review.ID,
		BookID:       review.BookID,
		ReviewerName: review.ReviewerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewJournalEntryView projects a journal entry with its preloaded book.
func NewJournalEntryView(entry *entities.JournalEntry) JournalEntryView {
	return JournalEntryView{
		ID:        entry.ID,
		BookID:    entry.BookID,
		BookTitle: entry.Book.Title,
		UserNotes: entry.UserNotes,
		Status:    entry.Status,
		Rating:    entry.Rating,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: entry.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NewJournalEntryViews projects a slice of journal entries.
func NewJournalEntryViews(entries []entities.JournalEntry) []JournalEntryView {
	views := make([]JournalEntryView, 0, len(entries))
	for i := range entries {
		views = append(views, NewJournalEntryView(&entries[i]))
	}
	return views
}

func roundRating(rating float64) float64 {
	return math.Round(rating*10) / 10
}
