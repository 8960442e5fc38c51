package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookify/bookify-server/internal/database/journal"
	"github.com/bookify/bookify-server/internal/entities"
	"github.com/bookify/bookify-server/internal/views"
)

// JournalStore defines the journal operations needed by the journal API.
type JournalStore interface {
	Create(entry *entities.JournalEntry) error
	Update(id uint, params journal.UpdateParams) (*entities.JournalEntry, error)
	List(status string) ([]entities.JournalEntry, error)
	Delete(id uint) error
}

type JournalController struct {
	store JournalStore
}

func NewJournalController(store JournalStore) *JournalController {
	return &JournalController{store: store}
}

type createJournalEntryRequest struct {
	BookID    uint                   `json:"book_id" binding:"required"`
	UserNotes string                 `json:"user_notes"`
	Status    entities.JournalStatus `json:"status" binding:"omitempty,oneof=want-to-read reading completed"`
	Rating    *int                   `json:"rating" binding:"omitempty,min=1,max=5"`
}

type updateJournalEntryRequest struct {
	UserNotes *string                 `json:"user_notes"`
	Status    *entities.JournalStatus `json:"status" binding:"omitempty,oneof=want-to-read reading completed"`
	Rating    *int                    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// ListJournalEntries returns all journal entries, optionally filtered
// by exact status.
// GET /api/journal?status=
func (controller *JournalController) ListJournalEntries(c *gin.Context) {
	entries, err := controller.store.List(c.Query("status"))
	if err != nil {
		respondInternalError(c, err, "list journal entries")
		return
	}
	c.JSON(http.StatusOK, views.NewJournalEntryViews(entries))
}

// CreateJournalEntry creates the journal entry for a book. A book can
// have at most one entry; a second create returns 409.
// POST /api/journal
func (controller *JournalController) CreateJournalEntry(c *gin.Context) {
	var req createJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	entry := entities.JournalEntry{
		BookID:    req.BookID,
		UserNotes: req.UserNotes,
		Status:    req.Status,
		Rating:    req.Rating,
	}

	if err := controller.store.Create(&entry); err != nil {
		respondStoreError(c, err, "book")
		return
	}

	c.JSON(http.StatusCreated, views.NewJournalEntryView(&entry))
}

// UpdateJournalEntry applies a partial update: only fields present in
// the request body change.
// PUT /api/journal/:id
func (controller *JournalController) UpdateJournalEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	entry, err := controller.store.Update(id, journal.UpdateParams{
		UserNotes: req.UserNotes,
		Status:    req.Status,
		Rating:    req.Rating,
	})
	if err != nil {
		respondStoreError(c, err, "journal entry")
		return
	}

	c.JSON(http.StatusOK, views.NewJournalEntryView(entry))
}

// DeleteJournalEntry removes a journal entry.
// DELETE /api/journal/:id
func (controller *JournalController) DeleteJournalEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(id); err != nil {
		respondStoreError(c, err, "journal entry")
		return
	}

	c.Status(http.StatusNoContent)
}
