package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookify/bookify-server/internal/entities"
)

func TestNewDatabase_MigratesEntities(t *testing.T) {
	dbPath := "./test_database_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.DB.Migrator().HasTable(&entities.Book{}))
	assert.True(t, db.DB.Migrator().HasTable(&entities.Review{}))
	assert.True(t, db.DB.Migrator().HasTable(&entities.JournalEntry{}))
}

func TestDatabase_Close(t *testing.T) {
	dbPath := "./test_database_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}
