package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-registry/internal/ports/storage"
)

type item struct {
	ID   string
	Name string
}

var _ storage.Collection[item] = (*Collection[item])(nil)

func TestCollection_InsertGetList(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[item]("items")

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, c.Insert(ctx, id, item{ID: id, Name: "n-" + id}))
	}

	got, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, item{ID: "a", Name: "n-a"}, got)

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// orden de inserción, no orden de key
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "b", list[2].ID)
}

func TestCollection_GetMissing(t *testing.T) {
	c := NewCollection[item]("items")

	_, err := c.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestCollection_InsertRejectsDuplicateAndEmptyID(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[item]("items")

	require.NoError(t, c.Insert(ctx, "a", item{ID: "a"}))
	err := c.Insert(ctx, "a", item{ID: "a", Name: "other"})
	assert.True(t, errors.Is(err, storage.ErrDuplicateKey))

	assert.Error(t, c.Insert(ctx, " ", item{}))
	assert.Equal(t, 1, c.Len())

	got, _ := c.Get(ctx, "a")
	assert.Equal(t, "", got.Name)
}

func TestCollection_ListIsACopy(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[item]("items")
	require.NoError(t, c.Insert(ctx, "a", item{ID: "a", Name: "orig"}))

	list, _ := c.List(ctx)
	list[0].Name = "mutated"

	again, _ := c.List(ctx)
	assert.Equal(t, "orig", again[0].Name)
}

func TestCollection_DeleteFreesKey(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[item]("items")
	require.NoError(t, c.Insert(ctx, "a", item{ID: "a"}))
	require.NoError(t, c.Insert(ctx, "b", item{ID: "b"}))

	require.NoError(t, c.Delete(ctx, "a"))
	require.NoError(t, c.Delete(ctx, "missing"))

	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, c.Insert(ctx, "a", item{ID: "a", Name: "again"}))
	list, _ := c.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "again", list[1].Name)
}
