package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookify/bookify-server/internal/entities"
	"github.com/bookify/bookify-server/internal/views"
)

// ReviewStore defines the review operations needed by the reviews API.
type ReviewStore interface {
	Create(review *entities.Review) error
	Delete(id uint) error
}

type ReviewsController struct {
	store ReviewStore
}

func NewReviewsController(store ReviewStore) *ReviewsController {
	return &ReviewsController{store: store}
}

type createReviewRequest struct {
	BookID       uint   `json:"book_id" binding:"required"`
	ReviewerName string `json:"reviewer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

// CreateReview submits a review for a book and refreshes the book's
// derived rating.
// POST /api/reviews
func (controller *ReviewsController) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	review := entities.Review{
		BookID:       req.BookID,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := controller.store.Create(&review); err != nil {
		respondStoreError(c, err, "book")
		return
	}

	c.JSON(http.StatusCreated, views.NewReviewView(&review))
}

// DeleteReview removes a review and refreshes the book's derived rating.
// DELETE /api/reviews/:id
func (controller *ReviewsController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(id); err != nil {
		respondStoreError(c, err, "review")
		return
	}

	c.Status(http.StatusNoContent)
}
