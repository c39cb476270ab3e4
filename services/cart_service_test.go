package services

import (
	"context"
	"testing"

	"esencia-shop/models"
	"esencia-shop/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*CartStore, *repositories.MemoryCartRepository) {
	t.Helper()
	repo := repositories.NewMemoryCartRepository()
	store := NewCartStore(repo, "test-token")
	store.Load(context.Background())
	return store, repo
}

func oudAlLayl() models.Perfume {
	return models.Perfume{
		ID:       "1",
		Name:     "Oud Al Layl",
		Brand:    "Lattafa",
		Category: "Árabe",
		Price:    45000,
		InStock:  true,
	}
}

func amberOud() models.Perfume {
	return models.Perfume{
		ID:       "4",
		Name:     "Amber Oud",
		Brand:    "Al Haramain",
		Category: "Árabe",
		Price:    38000,
		InStock:  true,
	}
}

func TestAddItemNewLine(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	notice := store.AddItem(ctx, oudAlLayl(), 1)

	assert.Equal(t, models.NoticeSuccess, notice.Level)
	assert.Equal(t, "Agregado al carrito", notice.Title)
	assert.Equal(t, "Oud Al Layl", notice.Description)

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].PerfumeID)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestAddItemMergesByID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, oudAlLayl(), 1)
	notice := store.AddItem(ctx, oudAlLayl(), 2)

	assert.Equal(t, models.NoticeSuccess, notice.Level)
	assert.Equal(t, "Cantidad actualizada", notice.Title)
	assert.Equal(t, "Oud Al Layl (3)", notice.Description)

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, oudAlLayl(), 1)
	store.AddItem(ctx, amberOud(), 1)
	store.AddItem(ctx, oudAlLayl(), 1)

	lines := store.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].PerfumeID)
	assert.Equal(t, "4", lines[1].PerfumeID)
}

func TestAddItemRejectsInvalidInput(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.Empty(t, store.AddItem(ctx, models.Perfume{Name: "No ID", Price: 100}, 1).Level)
	assert.Empty(t, store.AddItem(ctx, models.Perfume{ID: "x", Price: -1}, 1).Level)
	assert.Empty(t, store.AddItem(ctx, oudAlLayl(), 0).Level)
	assert.Empty(t, store.AddItem(ctx, oudAlLayl(), -3).Level)

	assert.Empty(t, store.Lines())
}

func TestRemoveItem(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, oudAlLayl(), 2)
	notice := store.RemoveItem(ctx, "1")

	assert.Equal(t, models.NoticeInfo, notice.Level)
	assert.Equal(t, "Eliminado del carrito", notice.Title)
	assert.Equal(t, "Oud Al Layl", notice.Description)
	assert.Empty(t, store.Lines())
}

func TestRemoveItemAbsentIDIsSilent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, oudAlLayl(), 1)
	notice := store.RemoveItem(ctx, "nope")

	assert.Empty(t, notice.Level)
	assert.Len(t, store.Lines(), 1)
}

func TestSetQuantityOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, oudAlLayl(), 1)
	notice := store.SetQuantity(ctx, "1", 5)

	assert.Empty(t, notice.Level)
	require.Len(t, store.Lines(), 1)
	assert.Equal(t, 5, store.Lines()[0].Quantity)
}

func TestSetQuantityZeroRemovesWithNotice(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, oudAlLayl(), 2)
	notice := store.SetQuantity(ctx, "1", 0)

	assert.Equal(t, models.NoticeInfo, notice.Level)
	assert.Equal(t, "Eliminado del carrito", notice.Title)
	assert.Empty(t, store.Lines())
}

func TestSetQuantityNegativeRemoves(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, oudAlLayl(), 2)
	notice := store.SetQuantity(ctx, "1", -1)

	assert.Equal(t, "Eliminado del carrito", notice.Title)
	assert.Empty(t, store.Lines())
}

func TestClear(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, oudAlLayl(), 1)
	store.AddItem(ctx, amberOud(), 2)

	notice := store.Clear(ctx)

	assert.Equal(t, models.NoticeInfo, notice.Level)
	assert.Equal(t, "Carrito vaciado", notice.Title)
	assert.Empty(t, store.Lines())

	// the empty cart must be persisted, not just dropped in memory
	lines, err := repo.Load(ctx, "test-token")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestClearEmptyCartStillAcknowledges(t *testing.T) {
	store, _ := newTestStore(t)

	notice := store.Clear(context.Background())
	assert.Equal(t, "Carrito vaciado", notice.Title)
}

func TestTotals(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, oudAlLayl(), 1)
	store.AddItem(ctx, amberOud(), 2)

	assert.Equal(t, 3, store.TotalItems())
	assert.Equal(t, 45000+38000*2, store.Subtotal())
	assert.Equal(t, store.Subtotal(), store.Total())
	assert.Equal(t, 121000, store.Total())
}

func TestTotalsEmptyCart(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, 0, store.Subtotal())
	assert.Equal(t, 0, store.Total())
}

func TestCartSurvivesReload(t *testing.T) {
	repo := repositories.NewMemoryCartRepository()
	ctx := context.Background()

	store := NewCartStore(repo, "tok")
	store.Load(ctx)
	store.AddItem(ctx, oudAlLayl(), 2)
	store.AddItem(ctx, amberOud(), 1)

	reloaded := NewCartStore(repo, "tok")
	reloaded.Load(ctx)

	require.Len(t, reloaded.Lines(), 2)
	assert.Equal(t, "Oud Al Layl", reloaded.Lines()[0].Name)
	assert.Equal(t, 2, reloaded.Lines()[0].Quantity)
	assert.Equal(t, 45000*2+38000, reloaded.Total())
}

func TestCorruptSlotYieldsEmptyCart(t *testing.T) {
	repo := repositories.NewMemoryCartRepository()
	repo.Put("tok", []byte("{not json"))
	ctx := context.Background()

	store := NewCartStore(repo, "tok")
	store.Load(ctx)

	assert.Empty(t, store.Lines())

	// mutations after a corrupt load work normally and persist cleanly
	store.AddItem(ctx, oudAlLayl(), 1)
	lines, err := repo.Load(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, lines, 1)
}

func TestUnsupportedSchemaVersionYieldsEmptyCart(t *testing.T) {
	repo := repositories.NewMemoryCartRepository()
	repo.Put("tok", []byte(`{"version":99,"items":[{"perfume_id":"1","quantity":1}]}`))

	store := NewCartStore(repo, "tok")
	store.Load(context.Background())

	assert.Empty(t, store.Lines())
}

func TestPersistGuardedUntilLoad(t *testing.T) {
	repo := repositories.NewMemoryCartRepository()
	ctx := context.Background()

	seeded := NewCartStore(repo, "tok")
	seeded.Load(ctx)
	seeded.AddItem(ctx, oudAlLayl(), 2)

	// a store that never hydrated must not clobber the slot
	fresh := NewCartStore(repo, "tok")
	fresh.Clear(ctx)

	lines, err := repo.Load(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}
