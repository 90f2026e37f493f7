package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/foodlog/internal/db"
	"github.com/vbonduro/foodlog/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "foodlog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestMealStoreCreate(t *testing.T) {
	store := NewMealStore(openTestDB(t))
	ctx := context.Background()

	id, err := store.Create(ctx, &domain.Meal{
		Name:     "Greek Yogurt With Honey",
		Calories: 220,
		Protein:  18,
		Fiber:    0,
		Date:     "2026-10-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	rowID, err := strconv.ParseInt(id, 10, 64)
	require.NoError(t, err)

	meal, err := store.GetByID(ctx, rowID)
	require.NoError(t, err)
	require.NotNil(t, meal)
	assert.Equal(t, rowID, meal.ID)
	assert.Equal(t, "Greek Yogurt With Honey", meal.Name)
	assert.Equal(t, 220, meal.Calories)
	assert.Equal(t, 18, meal.Protein)
	assert.Equal(t, 0, meal.Fiber)
	assert.Equal(t, "2026-10-15", meal.Date)
	assert.False(t, meal.CreatedAt.IsZero())
}

func TestMealStoreCreateAssignsDistinctIDs(t *testing.T) {
	store := NewMealStore(openTestDB(t))
	ctx := context.Background()

	first, err := store.Create(ctx, &domain.Meal{Name: "Toast", Date: "2026-10-14"})
	require.NoError(t, err)
	second, err := store.Create(ctx, &domain.Meal{Name: "Toast", Date: "2026-10-15"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMealStoreGetByIDNotFound(t *testing.T) {
	store := NewMealStore(openTestDB(t))

	meal, err := store.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, meal)
}

func TestMealStoreCreateClosedDB(t *testing.T) {
	d := openTestDB(t)
	store := NewMealStore(d)
	require.NoError(t, d.Close())

	_, err := store.Create(context.Background(), &domain.Meal{Name: "Toast", Date: "2026-10-15"})
	assert.Error(t, err)
}
