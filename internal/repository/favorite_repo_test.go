package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travelnest/internal/database"
	"travelnest/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// One connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return db
}

func seedDestination(t *testing.T, db *gorm.DB, title string) *domain.Destination {
	t.Helper()

	img := "uploads/test.jpg"
	d := &domain.Destination{
		CatalogItem: domain.CatalogItem{
			Title:       title,
			Description: "A destination used only in tests.",
			BasePrice:   decimal.RequireFromString("100.00"),
			IsActive:    true,
			ImageRef:    &img,
		},
	}
	require.NoError(t, db.Create(d).Error)
	return d
}

func TestFavoriteAdd_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	dest := seedDestination(t, db, "Santorini Getaway")

	first, err := repo.Add(ctx, 1, dest.ID)
	require.NoError(t, err)

	second, err := repo.Add(ctx, 1, dest.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&domain.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFavoriteAdd_PreloadsDestination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)

	dest := seedDestination(t, db, "Santorini Getaway")

	fav, err := repo.Add(context.Background(), 1, dest.ID)
	require.NoError(t, err)
	require.NotNil(t, fav.Destination)
	assert.Equal(t, "Santorini Getaway", fav.Destination.Title)
}

func TestFavoriteRemove(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	dest := seedDestination(t, db, "Santorini Getaway")

	_, err := repo.Add(ctx, 1, dest.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, 1, dest.ID))

	// removing again reports not found
	err = repo.Remove(ctx, 1, dest.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFavoriteGetByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	a := seedDestination(t, db, "Santorini Getaway")
	b := seedDestination(t, db, "Alpine Adventure")

	_, err := repo.Add(ctx, 1, a.ID)
	require.NoError(t, err)
	_, err = repo.Add(ctx, 1, b.ID)
	require.NoError(t, err)
	_, err = repo.Add(ctx, 2, a.ID)
	require.NoError(t, err)

	favorites, total, err := repo.GetByUserID(ctx, 1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, favorites, 2)
	for _, f := range favorites {
		assert.NotNil(t, f.Destination)
	}
}

func TestFavoriteExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	dest := seedDestination(t, db, "Santorini Getaway")

	ok, err := repo.Exists(ctx, 1, dest.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Add(ctx, 1, dest.ID)
	require.NoError(t, err)

	ok, err = repo.Exists(ctx, 1, dest.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
