package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"journal_backend/internal/feature/auth/domain/entity"
	"journal_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError maps driver-specific duplicate key errors to gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestUserPostgres_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user := &entity.User{
			Email:    "test@example.com",
			Username: "tester",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email returns ErrUserAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		first := &entity.User{Email: "dup@example.com", Username: "first", Password: "x"}
		require.NoError(t, repo.Create(context.Background(), first))

		second := &entity.User{Email: "dup@example.com", Username: "second", Password: "x"}
		err := repo.Create(context.Background(), second)

		assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)
	})

	t.Run("duplicate username returns ErrUserAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		first := &entity.User{Email: "a@example.com", Username: "taken", Password: "x"}
		require.NoError(t, repo.Create(context.Background(), first))

		second := &entity.User{Email: "b@example.com", Username: "taken", Password: "x"}
		err := repo.Create(context.Background(), second)

		assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		created := &entity.User{Email: "find@example.com", Username: "finder", Password: "x"}
		require.NoError(t, repo.Create(context.Background(), created))

		got, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "finder", got.Username)
	})

	t.Run("not found returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		created := &entity.User{Email: "id@example.com", Username: "byid", Password: "x"}
		require.NoError(t, repo.Create(context.Background(), created))

		got, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, "id@example.com", got.Email)
	})

	t.Run("not found returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		_, err := repo.FindByID(context.Background(), 4242)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
