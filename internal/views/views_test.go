package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookify/bookify-server/internal/entities"
)

func TestNewBookSummary_RoundsRatingToOneDecimal(t *testing.T) {
	book := &entities.Book{
		ID:     1,
		Title:  "Brave New World",
		Author: "Aldous Huxley",
		Rating: 14.0 / 3.0, // 4.666...
	}

	summary := NewBookSummary(book)
	assert.Equal(t, 4.7, summary.Rating)
}

func TestNewBookSummary_ReviewCountIsLiveCount(t *testing.T) {
	book := &entities.Book{
		ID:     1,
		Title:  "1984",
		Author: "George Orwell",
		Reviews: []entities.Review{
			{ID: 1, Rating: 4},
			{ID: 2, Rating: 5},
		},
	}

	summary := NewBookSummary(book)
	assert.Equal(t, 2, summary.ReviewCount)

	empty := &entities.Book{ID: 2, Title: "Dune", Author: "Frank Herbert"}
	assert.Zero(t, NewBookSummary(empty).ReviewCount)
}

func TestNewBookDetail_IncludesReviewProjections(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	book := &entities.Book{
		ID:     7,
		Title:  "The Hobbit",
		Author: "J.R.R. Tolkien",
		Reviews: []entities.Review{
			{ID: 3, BookID: 7, ReviewerName: "Lena Hoffmann", Rating: 5, Comment: "Wonderful", CreatedAt: created},
		},
	}

	detail := NewBookDetail(book)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, uint(3), detail.Reviews[0].ID)
	assert.Equal(t, "Lena Hoffmann", detail.Reviews[0].ReviewerName)
	assert.Equal(t, "2025-03-14T09:26:53Z", detail.Reviews[0].CreatedAt)
	assert.Equal(t, 1, detail.ReviewCount)
}

func TestNewBookSummaries_EmptyInputYieldsEmptySlice(t *testing.T) {
	summaries := NewBookSummaries(nil)
	require.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestNewJournalEntryView_EmbedsParentBookTitle(t *testing.T) {
	rating := 4
	entry := &entities.JournalEntry{
		ID:        2,
		BookID:    7,
		UserNotes: "halfway through",
		Status:    entities.JournalStatusReading,
		Rating:    &rating,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 3, 3, 4, 5, 0, time.UTC),
		Book:      entities.Book{ID: 7, Title: "The Hobbit"},
	}

	view := NewJournalEntryView(entry)
	assert.Equal(t, "The Hobbit", view.BookTitle)
	assert.Equal(t, entities.JournalStatusReading, view.Status)
	require.NotNil(t, view.Rating)
	assert.Equal(t, 4, *view.Rating)
	assert.Equal(t, "2025-01-02T03:04:05Z", view.CreatedAt)
	assert.Equal(t, "2025-01-03T03:04:05Z", view.UpdatedAt)
}
