package store

import (
	"context"
	"testing"

	perrors "github.com/akosmin/prodcatalog/internal/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryStore_Create(t *testing.T) {
	// given
	s := NewMemoryStore()
	ctx := context.Background()
	// when
	created, err := s.Create(ctx, ProductFields{Name: "Tea", Weight: 1, Price: 500})
	// then
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID, "store must assign an ID")
	assert.Equal(t, "Tea", created.Name)
	assert.Equal(t, 1.0, created.Weight)
	assert.Equal(t, 500.0, created.Price)
	assert.False(t, created.CreatedAt.IsZero(), "store must assign CreatedAt")
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func Test_MemoryStore_Update(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	t.Run("Success - fields replaced, id and createdAt kept, updatedAt advanced", func(t *testing.T) {
		// given
		created, err := s.Create(ctx, ProductFields{Name: "Rice", Weight: 1, Price: 250})
		require.NoError(t, err)
		// when
		updated, err := s.Update(ctx, created.ID, ProductFields{Name: "Brown Rice", Weight: 2, Price: 300})
		// then
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, "Brown Rice", updated.Name)
		assert.Equal(t, 2.0, updated.Weight)
		assert.Equal(t, 300.0, updated.Price)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "UpdatedAt must advance")
	})

	t.Run("Error - missing id mutates nothing", func(t *testing.T) {
		// given
		before, err := s.FindAll(ctx)
		require.NoError(t, err)
		// when
		_, err = s.Update(ctx, uuid.New(), ProductFields{Name: "Ghost", Weight: 1, Price: 1})
		// then
		assert.ErrorIs(t, err, perrors.ErrProductNotFound)
		after, findErr := s.FindAll(ctx)
		require.NoError(t, findErr)
		assert.ElementsMatch(t, before, after)
	})
}

func Test_MemoryStore_DeleteByID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.Create(ctx, ProductFields{Name: "Sugar", Weight: 1, Price: 200})
	require.NoError(t, err)

	t.Run("Success - record removed from subsequent lists", func(t *testing.T) {
		require.NoError(t, s.DeleteByID(ctx, created.ID))

		list, err := s.FindAll(ctx)
		require.NoError(t, err)
		for _, p := range list {
			assert.NotEqual(t, created.ID, p.ID)
		}
		_, err = s.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, perrors.ErrProductNotFound)
	})

	t.Run("Success - deleting a missing id is a no-op", func(t *testing.T) {
		assert.NoError(t, s.DeleteByID(ctx, created.ID))
		assert.NoError(t, s.DeleteByID(ctx, uuid.New()))
	})
}

func Test_MemoryStore_FindAll(t *testing.T) {
	// given
	s := NewMemoryStore()
	ctx := context.Background()

	empty, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = s.Create(ctx, ProductFields{Name: "Rice", Weight: 1, Price: 250})
	require.NoError(t, err)
	_, err = s.Create(ctx, ProductFields{Name: "Sugar", Weight: 1, Price: 200})
	require.NoError(t, err)
	// when
	list, err := s.FindAll(ctx)
	// then
	require.NoError(t, err)
	require.Len(t, list, 2)
	names := []string{list[0].Name, list[1].Name}
	assert.ElementsMatch(t, []string{"Rice", "Sugar"}, names)
}
