package repository

import (
	"context"
	"testing"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_FindByID(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)

	repo := NewProductRepository(database)

	t.Run("existing product", func(t *testing.T) {
		product, err := repo.FindByID(context.Background(), "P2")

		require.NoError(t, err)
		assert.Equal(t, "Espresso", product.Name)
		assert.Equal(t, "espresso", product.Type)
		assert.Equal(t, int64(300), product.PriceCents)
	})

	t.Run("unknown product", func(t *testing.T) {
		product, err := repo.FindByID(context.Background(), "P999")

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, product)
	})
}

func TestProductRepository_BatchGet(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)

	repo := NewProductRepository(database)

	t.Run("all ids present", func(t *testing.T) {
		products, err := repo.BatchGet(context.Background(), []string{"P1", "P3"})

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Latte", products["P1"].Name)
		assert.Equal(t, "Still Water", products["P3"].Name)
	})

	t.Run("unknown ids silently absent", func(t *testing.T) {
		products, err := repo.BatchGet(context.Background(), []string{"P1", "P999"})

		require.NoError(t, err)
		require.Len(t, products, 1)
		_, ok := products["P999"]
		assert.False(t, ok)
	})

	t.Run("empty id list", func(t *testing.T) {
		products, err := repo.BatchGet(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, products)
	})
}
