package tui_test

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
	"github.com/linhnt-hub/reflex-flash-cards/internal/repository"
	"github.com/linhnt-hub/reflex-flash-cards/internal/service"
	"github.com/linhnt-hub/reflex-flash-cards/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, cards []models.Card) tui.App {
	t.Helper()

	repo := repository.NewFileRepository(filepath.Join(t.TempDir(), "flashcards.json"))
	require.NoError(t, repo.Save(context.Background(), cards))

	services := service.InitServices(repo, zap.NewNop())
	services.Deck.Load(context.Background())

	return tui.NewApp(services.Session)
}

func press(t *testing.T, app tui.App, keys ...rune) tui.App {
	t.Helper()

	for _, r := range keys {
		updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		app = updated.(tui.App)
	}
	return app
}

func pressSpecial(t *testing.T, app tui.App, keyType tea.KeyType) tui.App {
	t.Helper()

	updated, _ := app.Update(tea.KeyMsg{Type: keyType})
	return updated.(tui.App)
}

func studyDeck() []models.Card {
	return []models.Card{
		{English: "cat", Vietnamese: "con mèo"},
		{English: "dog", Vietnamese: "con chó", Learned: true},
		{English: "zebra", Vietnamese: "ngựa vằn"},
	}
}

func TestApp_SingleNavigation(t *testing.T) {
	app := newTestApp(t, studyDeck())

	require.Equal(t, 0, app.Session().CurrentIndex())

	app = press(t, app, 'n')
	assert.Equal(t, 1, app.Session().CurrentIndex())

	app = press(t, app, 'p')
	assert.Equal(t, 0, app.Session().CurrentIndex())

	// Wrap backwards from the first card.
	app = press(t, app, 'p')
	assert.Equal(t, 2, app.Session().CurrentIndex())
}

func TestApp_FlipRevealsTranslation(t *testing.T) {
	app := newTestApp(t, studyDeck())

	assert.False(t, app.Session().ShowAnswer())

	app = pressSpecial(t, app, tea.KeySpace)
	assert.True(t, app.Session().ShowAnswer())

	app = press(t, app, 'n')
	assert.False(t, app.Session().ShowAnswer(), "moving on hides the answer")
}

func TestApp_FilterAndSortKeys(t *testing.T) {
	app := newTestApp(t, studyDeck())

	app = press(t, app, 'f')
	view := app.Session().View()
	assert.True(t, view.FilterLearned)
	assert.Len(t, app.Session().Visible(), 2)

	app = press(t, app, 's')
	view = app.Session().View()
	assert.True(t, view.SortAlpha)
	assert.Equal(t, "cat", app.Session().Visible()[0].English)
	assert.Equal(t, "zebra", app.Session().Visible()[1].English)
}

func TestApp_GridModeFlipAndLearn(t *testing.T) {
	app := newTestApp(t, studyDeck())

	app = press(t, app, 'g')
	require.Equal(t, models.ViewGrid, app.Session().View().Mode)
	require.Equal(t, 0, app.GridCursor())

	// Move to the second cell and flip it.
	app = press(t, app, 'l')
	require.Equal(t, 1, app.GridCursor())

	second := app.Session().Visible()[1]
	app = pressSpecial(t, app, tea.KeySpace)
	assert.True(t, app.Session().Flipped(second.ID))

	// Mark the hovered card learned; the deck must reflect it.
	third := app.Session().Visible()[2]
	app = press(t, app, 'l', 'm')
	assert.True(t, app.Session().Visible()[2].Learned)
	assert.Equal(t, third.English, app.Session().Visible()[2].English)
}

func TestApp_GridCursorBounds(t *testing.T) {
	app := newTestApp(t, studyDeck())

	app = press(t, app, 'g')

	app = press(t, app, 'h')
	assert.Equal(t, 0, app.GridCursor(), "no wrap below zero")

	app = press(t, app, 'l', 'l', 'l', 'l')
	assert.Equal(t, 2, app.GridCursor(), "no wrap past the last cell")
}

func TestApp_AddCardFlow(t *testing.T) {
	app := newTestApp(t, nil)

	app = press(t, app, 'a')
	require.Equal(t, tui.ModeAdd, app.Mode())

	app = press(t, app, 'c', 'a', 't')
	app = pressSpecial(t, app, tea.KeyEnter) // move focus to the translation
	app = press(t, app, 'm', 'è', 'o')
	app = pressSpecial(t, app, tea.KeyEnter) // submit

	assert.Equal(t, tui.ModeStudy, app.Mode())

	visible := app.Session().Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "cat", visible[0].English)
	assert.Equal(t, "mèo", visible[0].Vietnamese)
	assert.Equal(t, "Card 1 of 1", app.Session().CounterText())
}

func TestApp_AddCardRejectsEmptyTranslation(t *testing.T) {
	app := newTestApp(t, nil)

	app = press(t, app, 'a')
	app = press(t, app, 'c', 'a', 't')
	app = pressSpecial(t, app, tea.KeyEnter)
	app = pressSpecial(t, app, tea.KeyEnter) // submit with empty translation

	assert.Equal(t, tui.ModeAdd, app.Mode(), "form stays open")
	assert.Empty(t, app.Session().Visible())
}

func TestApp_AddCancelled(t *testing.T) {
	app := newTestApp(t, nil)

	app = press(t, app, 'a')
	app = pressSpecial(t, app, tea.KeyEsc)

	assert.Equal(t, tui.ModeStudy, app.Mode())
	assert.Empty(t, app.Session().Visible())
}

func TestApp_SearchFlow(t *testing.T) {
	app := newTestApp(t, studyDeck())

	app = press(t, app, '/')
	require.Equal(t, tui.ModeSearch, app.Mode())

	app = press(t, app, 'z', 'e', 'b')
	assert.Len(t, app.Session().Visible(), 1)

	app = pressSpecial(t, app, tea.KeyEnter)
	assert.Equal(t, tui.ModeStudy, app.Mode())
	assert.Equal(t, "zeb", app.Session().View().SearchQuery)

	// Esc from a fresh search clears the query.
	app = press(t, app, '/')
	app = pressSpecial(t, app, tea.KeyEsc)
	assert.Equal(t, "", app.Session().View().SearchQuery)
	assert.Len(t, app.Session().Visible(), 3)
}

func TestApp_RemoveCurrentCard(t *testing.T) {
	app := newTestApp(t, []models.Card{{English: "cat", Vietnamese: "con mèo"}})

	app = press(t, app, 'd')

	assert.Empty(t, app.Session().Visible())
	assert.Equal(t, 0, app.Session().CurrentIndex())
	assert.Equal(t, "No cards", app.Session().CounterText())
}

func TestApp_ViewContainsCounterAndWord(t *testing.T) {
	app := newTestApp(t, studyDeck())

	out := app.View()
	assert.Contains(t, out, "Card 1 of 3")
	assert.Contains(t, out, "cat")

	app = press(t, app, 'd', 'd', 'd')
	out = app.View()
	assert.Contains(t, out, "No flashcards available")
}
