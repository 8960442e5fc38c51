package database

import "errors"

// ErrDuplicateISBN indicates a book with the same ISBN already exists.
var ErrDuplicateISBN = errors.New("a book with this ISBN already exists")

// ErrJournalEntryExists indicates the book already has a journal entry.
var ErrJournalEntryExists = errors.New("a journal entry already exists for this book")
