package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBookViaAPI(t *testing.T, router *gin.Engine, body map[string]any) map[string]any {
	t.Helper()
	w := doRequest(t, router, "POST", "/api/books", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]any
	decodeJSON(t, w, &created)
	return created
}

func TestBooksAPI_CreateAndGet(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	created := createBookViaAPI(t, router, map[string]any{
		"title":            "1984",
		"author":           "George Orwell",
		"isbn":             "9780451524935",
		"genre":            "Dystopian",
		"publication_year": 1949,
	})
	assert.Equal(t, "1984", created["title"])
	assert.Equal(t, float64(0), created["rating"])
	assert.Equal(t, float64(0), created["review_count"])

	w := doRequest(t, router, "GET", fmt.Sprintf("/api/books/%v", created["id"]), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var detail map[string]any
	decodeJSON(t, w, &detail)
	assert.Equal(t, "George Orwell", detail["author"])
	assert.Empty(t, detail["reviews"])
}

func TestBooksAPI_CreateRequiresTitleAndAuthor(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	w := doRequest(t, router, "POST", "/api/books", map[string]any{"author": "Anonymous"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, "POST", "/api/books", map[string]any{"title": "Untitled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBooksAPI_DuplicateISBNConflicts(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	createBookViaAPI(t, router, map[string]any{
		"title": "1984", "author": "George Orwell", "isbn": "9780451524935",
	})

	w := doRequest(t, router, "POST", "/api/books", map[string]any{
		"title": "Nineteen Eighty-Four", "author": "George Orwell", "isbn": "9780451524935",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBooksAPI_GetNotFound(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	w := doRequest(t, router, "GET", "/api/books/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooksAPI_ListPaginationMetadata(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	for i := 0; i < 17; i++ {
		createBookViaAPI(t, router, map[string]any{
			"title":  fmt.Sprintf("Book %02d", i),
			"author": "Author",
		})
	}

	w := doRequest(t, router, "GET", "/api/books?page=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page BookListResponse
	decodeJSON(t, w, &page)
	assert.Equal(t, int64(17), page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Books, 15)

	w = doRequest(t, router, "GET", "/api/books?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	assert.Len(t, page.Books, 2)

	// Out-of-range page: empty list, unchanged metadata.
	w = doRequest(t, router, "GET", "/api/books?page=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	assert.Empty(t, page.Books)
	assert.Equal(t, int64(17), page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 3, page.CurrentPage)
}

func TestBooksAPI_SearchAndGenreFilters(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	createBookViaAPI(t, router, map[string]any{
		"title": "The Hobbit", "author": "J.R.R. Tolkien", "genre": "Fantasy",
	})
	createBookViaAPI(t, router, map[string]any{
		"title": "The Silmarillion", "author": "J.R.R. Tolkien", "genre": "Mythology",
	})
	createBookViaAPI(t, router, map[string]any{
		"title": "Dune", "author": "Frank Herbert", "genre": "Science Fiction",
	})

	var page BookListResponse

	w := doRequest(t, router, "GET", "/api/books?search=tolkien", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	assert.Equal(t, int64(2), page.Total)

	w = doRequest(t, router, "GET", "/api/books?search=tolkien&genre=Fantasy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &page)
	require.Len(t, page.Books, 1)
	assert.Equal(t, "The Hobbit", page.Books[0].Title)
}

func TestBooksAPI_DeleteCascades(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	created := createBookViaAPI(t, router, map[string]any{
		"title": "The Hobbit", "author": "J.R.R. Tolkien",
	})
	bookID := created["id"]

	w := doRequest(t, router, "POST", "/api/reviews", map[string]any{
		"book_id": bookID, "reviewer_name": "Lena Hoffmann", "rating": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var review map[string]any
	decodeJSON(t, w, &review)

	w = doRequest(t, router, "POST", "/api/journal", map[string]any{"book_id": bookID})
	require.Equal(t, http.StatusCreated, w.Code)
	var entry map[string]any
	decodeJSON(t, w, &entry)

	w = doRequest(t, router, "DELETE", fmt.Sprintf("/api/books/%v", bookID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, "GET", fmt.Sprintf("/api/books/%v", bookID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(t, router, "DELETE", fmt.Sprintf("/api/reviews/%v", review["id"]), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(t, router, "DELETE", fmt.Sprintf("/api/journal/%v", entry["id"]), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooksAPI_ListGenres(t *testing.T) {
	router, _, cleanup := setupAPITest(t)
	defer cleanup()

	w := doRequest(t, router, "GET", "/api/genres", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var genres []string
	decodeJSON(t, w, &genres)
	assert.Empty(t, genres)

	createBookViaAPI(t, router, map[string]any{"title": "The Hobbit", "author": "J.R.R. Tolkien", "genre": "Fantasy"})
	createBookViaAPI(t, router, map[string]any{"title": "Dune", "author": "Frank Herbert", "genre": "Science Fiction"})
	createBookViaAPI(t, router, map[string]any{"title": "Sketchbook", "author": "Anonymous"})

	w = doRequest(t, router, "GET", "/api/genres", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &genres)
	assert.ElementsMatch(t, []string{"Fantasy", "Science Fiction"}, genres)
}
