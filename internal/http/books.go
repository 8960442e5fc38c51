package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookify/bookify-server/internal/entities"
	"github.com/bookify/bookify-server/internal/views"
)

// CatalogStore defines the catalog operations needed by the books API.
type CatalogStore interface {
	Create(book *entities.Book) error
	GetByID(id uint) (*entities.Book, error)
	Search(text, genre string, page int) ([]entities.Book, int64, int, error)
	Genres() ([]string, error)
	Delete(id uint) error
}

type BooksController struct {
	store CatalogStore
}

func NewBooksController(store CatalogStore) *BooksController {
	return &BooksController{store: store}
}

// BookListResponse is one page of catalog search results.
type BookListResponse struct {
	Books       []views.BookSummary `json:"books"`
	Total       int64               `json:"total"`
	Pages       int                 `json:"pages"`
	CurrentPage int                 `json:"current_page"`
}

type createBookRequest struct {
	Title           string  `json:"title" binding:"required"`
	Author          string  `json:"author" binding:"required"`
	ISBN            *string `json:"isbn"`
	Description     string  `json:"description"`
	CoverImage      string  `json:"cover_image"`
	Genre           string  `json:"genre"`
	PublicationYear int     `json:"publication_year"`
}

// ListBooks returns a page of books with optional search and genre filters.
// GET /api/books?search=&genre=&page=
func (controller *BooksController) ListBooks(c *gin.Context) {
	page, ok := parsePageQuery(c)
	if !ok {
		return
	}

	books, total, pages, err := controller.store.Search(c.Query("search"), c.Query("genre"), page)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	c.JSON(http.StatusOK, BookListResponse{
		Books:       views.NewBookSummaries(books),
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
	})
}

// GetBook returns a single book with its reviews.
// GET /api/books/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}

	c.JSON(http.StatusOK, views.NewBookDetail(book))
}

// CreateBook adds a new book to the catalog.
// POST /api/books
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	book := entities.Book{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Description:     req.Description,
		CoverImage:      req.CoverImage,
		Genre:           req.Genre,
		PublicationYear: req.PublicationYear,
	}

	if err := controller.store.Create(&book); err != nil {
		respondStoreError(c, err, "book")
		return
	}

	c.JSON(http.StatusCreated, views.NewBookSummary(&book))
}

// DeleteBook removes a book together with its reviews and journal entry.
// DELETE /api/books/:id
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(id); err != nil {
		respondStoreError(c, err, "book")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListGenres returns the distinct genres currently present in the catalog.
// GET /api/genres
func (controller *BooksController) ListGenres(c *gin.Context) {
	genres, err := controller.store.Genres()
	if err != nil {
		respondInternalError(c, err, "list genres")
		return
	}
	if genres == nil {
		genres = []string{}
	}
	c.JSON(http.StatusOK, genres)
}
