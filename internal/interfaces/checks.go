// Package interfaces contains compile-time interface implementation
// checks. These ensure that concrete types satisfy their interfaces at
// compile time, catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...
package interfaces

import (
	"github.com/bookify/bookify-server/internal/database/books"
	"github.com/bookify/bookify-server/internal/database/journal"
	"github.com/bookify/bookify-server/internal/database/reviews"
	"github.com/bookify/bookify-server/internal/http"
)

// CatalogStore implementations
var _ http.CatalogStore = (*books.Repository)(nil)

// ReviewStore implementations
var _ http.ReviewStore = (*reviews.Repository)(nil)

// JournalStore implementations
var _ http.JournalStore = (*journal.Repository)(nil)
