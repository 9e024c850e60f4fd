package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoltTestRepo(t *testing.T) *BoltR {
	t.Helper()

	repo, err := NewBoltRepository(filepath.Join(t.TempDir(), "flashcards.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestBoltR_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := newBoltTestRepo(t)
	ctx := context.Background()

	deck := []models.Card{
		{English: "zebra", Vietnamese: "ngựa vằn"},
		{English: "cat", Vietnamese: "con mèo", Learned: true},
		{English: "apple", Vietnamese: "quả táo"},
	}

	require.NoError(t, repo.Save(ctx, deck))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(deck))

	// Insertion order survives the keyed storage.
	for i, card := range loaded {
		assert.Equal(t, deck[i].English, card.English)
		assert.Equal(t, deck[i].Vietnamese, card.Vietnamese)
		assert.Equal(t, deck[i].Learned, card.Learned)
	}
}

func TestBoltR_LoadEmptyStore(t *testing.T) {
	t.Parallel()

	repo := newBoltTestRepo(t)

	cards, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestBoltR_SaveShrinksTheDeck(t *testing.T) {
	t.Parallel()

	repo := newBoltTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []models.Card{
		{English: "cat", Vietnamese: "con mèo"},
		{English: "dog", Vietnamese: "con chó"},
		{English: "zebra", Vietnamese: "ngựa vằn"},
	}))
	require.NoError(t, repo.Save(ctx, []models.Card{
		{English: "dog", Vietnamese: "con chó"},
	}))

	cards, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "dog", cards[0].English)
}
