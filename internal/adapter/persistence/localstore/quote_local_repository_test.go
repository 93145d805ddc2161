package localstore

import (
	"context"
	"testing"
	"time"

	"laminasycortes/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuote(id, number string) entities.Quote {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Quote{
		ID:     id,
		Number: number,
		Client: entities.QuoteClient{Name: "Carlos Mendoza", Email: "carlos@example.com"},
		Product: entities.QuoteProduct{
			Description: "Lámina galvanizada",
			Quantity:    2,
			UnitPrice:   100,
			Subtotal:    200,
			IVA:         32,
			Total:       232,
		},
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: entities.AnonymousAuthor,
	}
}

func TestQuoteLocalRepository_CreateAndList(t *testing.T) {
	repo := NewQuoteLocalRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testQuote("q-1", "COT-001"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testQuote("q-2", "COT-002"))
	require.NoError(t, err)

	quotes, err := repo.ListByOwner(ctx, "ignored")
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "q-1", quotes[0].ID)
	assert.Equal(t, "q-2", quotes[1].ID)
}

func TestQuoteLocalRepository_GetByID(t *testing.T) {
	repo := NewQuoteLocalRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testQuote("q-1", "COT-001"))
	require.NoError(t, err)

	q, err := repo.GetByID(ctx, "", "q-1")
	require.NoError(t, err)
	assert.Equal(t, "COT-001", q.Number)
	assert.Equal(t, 232.0, q.Product.Total)

	// Missing id comes back as the zero value, not an error.
	q, err = repo.GetByID(ctx, "", "ghost")
	require.NoError(t, err)
	assert.Empty(t, q.ID)
}

func TestQuoteLocalRepository_Update(t *testing.T) {
	repo := NewQuoteLocalRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testQuote("q-1", "COT-001"))
	require.NoError(t, err)

	changed := testQuote("q-1", "COT-001")
	changed.Client.Name = "Ana Ruiz"
	_, err = repo.Update(ctx, changed)
	require.NoError(t, err)

	q, err := repo.GetByID(ctx, "", "q-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Ruiz", q.Client.Name)

	// Updating an unknown id is a no-op returning the zero value.
	missing := testQuote("ghost", "COT-099")
	q, err = repo.Update(ctx, missing)
	require.NoError(t, err)
	assert.Empty(t, q.ID)
}

func TestQuoteLocalRepository_DeleteByID(t *testing.T) {
	repo := NewQuoteLocalRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testQuote("q-1", "COT-001"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testQuote("q-2", "COT-002"))
	require.NoError(t, err)

	removed, err := repo.DeleteByID(ctx, "", "q-1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteByID(ctx, "", "q-1")
	require.NoError(t, err)
	assert.False(t, removed)

	quotes, err := repo.ListByOwner(ctx, "")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "q-2", quotes[0].ID)
}

func TestQuoteLocalRepository_DeleteByOwnerClearsEverything(t *testing.T) {
	repo := NewQuoteLocalRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testQuote("q-1", "COT-001"))
	require.NoError(t, err)
	require.NoError(t, repo.DeleteByOwner(ctx, "anything"))

	quotes, err := repo.ListByOwner(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestQuoteLocalRepository_ListNumbers(t *testing.T) {
	repo := NewQuoteLocalRepository(newTestStore(t))
	ctx := context.Background()

	numbers, err := repo.ListNumbers(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, numbers)

	_, err = repo.Create(ctx, testQuote("q-1", "COT-001"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testQuote("q-2", "COT-002"))
	require.NoError(t, err)

	numbers, err = repo.ListNumbers(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"COT-001", "COT-002"}, numbers)
}
