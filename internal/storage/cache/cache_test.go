package cache

import (
	"testing"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Projection(t *testing.T) {
	t.Parallel()

	c := NewCache()
	view := models.ViewState{FilterLearned: true}
	cards := []models.Card{{ID: 1, English: "cat", Vietnamese: "con mèo"}}

	_, ok := c.Projection(1, view)
	assert.False(t, ok)

	c.SetProjection(1, view, cards)

	got, ok := c.Projection(1, view)
	require.True(t, ok)
	assert.Equal(t, cards, got)

	// Same version, different view state: miss.
	_, ok = c.Projection(1, models.ViewState{})
	assert.False(t, ok)

	// Different version: miss.
	_, ok = c.Projection(2, view)
	assert.False(t, ok)
}

func TestCache_StoringEvictsThePreviousEntry(t *testing.T) {
	t.Parallel()

	c := NewCache()
	oldView := models.ViewState{}
	newView := models.ViewState{SearchQuery: "cat"}

	c.SetProjection(1, oldView, []models.Card{{ID: 1, English: "cat", Vietnamese: "con mèo"}})
	c.SetProjection(1, newView, []models.Card{})

	_, ok := c.Projection(1, oldView)
	assert.False(t, ok, "only the most recent projection is retained")

	got, ok := c.Projection(1, newView)
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestCache_EmptyProjectionIsStillAHit(t *testing.T) {
	t.Parallel()

	c := NewCache()
	view := models.ViewState{SearchQuery: "no match"}

	c.SetProjection(3, view, []models.Card{})

	got, ok := c.Projection(3, view)
	require.True(t, ok)
	assert.Empty(t, got)
}
