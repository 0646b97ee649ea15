package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"journal_backend/internal/feature/journal/domain/entity"
	"journal_backend/internal/feature/journal/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Entry{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func day(offset int) time.Time {
	base := time.Date(2026, 8, 20, 0, 0, 0, 0, time.Local)
	return base.AddDate(0, 0, offset)
}

func seedEntry(t *testing.T, repo *entryPostgres, userID uint, title string, tradingDay time.Time) *entity.Entry {
	t.Helper()
	e := &entity.Entry{
		UserID:       userID,
		Title:        title,
		Mood:         entity.MoodGood,
		Tags:         []string{"discipline", "setup-a"},
		TradingDay:   tradingDay,
		FollowedPlan: true,
	}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func TestEntryPostgres_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)

	seedEntry(t, repo, 1, "older", day(0))
	seedEntry(t, repo, 1, "newer", day(2))
	seedEntry(t, repo, 2, "foreign", day(1))

	entries, err := repo.FindByUser(context.Background(), 1, 10)

	require.NoError(t, err)
	require.Len(t, entries, 2, "only the owner's entries should be returned")
	assert.Equal(t, "newer", entries[0].Title, "entries must be ordered newest first")
	assert.Equal(t, "older", entries[1].Title)
	assert.Equal(t, []string{"discipline", "setup-a"}, entries[0].Tags, "tags must survive the JSON round trip")
}

func TestEntryPostgres_Update(t *testing.T) {
	t.Run("owner update overwrites fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)
		e := seedEntry(t, repo, 1, "draft", day(0))

		e.Title = "final"
		e.Mood = entity.MoodBad
		e.Tags = []string{"revenge-trading", "overtrading"}
		e.FollowedPlan = false
		err := repo.Update(context.Background(), e)

		require.NoError(t, err)
		entries, ferr := repo.FindByUser(context.Background(), 1, 10)
		require.NoError(t, ferr)
		require.Len(t, entries, 1)
		assert.Equal(t, "final", entries[0].Title)
		assert.Equal(t, entity.MoodBad, entries[0].Mood)
		assert.Equal(t, []string{"revenge-trading", "overtrading"}, entries[0].Tags,
			"tags must be JSON-serialized through the update path")
		assert.False(t, entries[0].FollowedPlan, "false must overwrite true")
	})

	t.Run("foreign owner update has no effect", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)
		e := seedEntry(t, repo, 1, "mine", day(0))

		foreign := *e
		foreign.UserID = 2
		foreign.Title = "tampered"
		err := repo.Update(context.Background(), &foreign)

		assert.ErrorIs(t, err, usecase.ErrEntryNotFound)

		entries, ferr := repo.FindByUser(context.Background(), 1, 10)
		require.NoError(t, ferr)
		assert.Equal(t, "mine", entries[0].Title, "the row must be untouched")
	})
}

func TestEntryPostgres_Delete(t *testing.T) {
	t.Run("owner delete removes the row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)
		e := seedEntry(t, repo, 1, "gone", day(0))

		require.NoError(t, repo.Delete(context.Background(), e.ID, 1))

		entries, err := repo.FindByUser(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("foreign owner delete has no effect", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEntryRepository(db)
		e := seedEntry(t, repo, 1, "kept", day(0))

		err := repo.Delete(context.Background(), e.ID, 2)

		assert.ErrorIs(t, err, usecase.ErrEntryNotFound)

		entries, ferr := repo.FindByUser(context.Background(), 1, 10)
		require.NoError(t, ferr)
		assert.Len(t, entries, 1, "the row must still exist")
	})
}
