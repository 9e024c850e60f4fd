package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
	"github.com/linhnt-hub/reflex-flash-cards/internal/service"
)

// Mode is the input mode of the UI, orthogonal to the session's view mode.
type Mode int

const (
	ModeStudy Mode = iota
	ModeAdd
	ModeSearch
)

// App is the bubbletea model. All card and view semantics live in the session
// service; App only translates key presses into session calls and renders the
// result.
type App struct {
	session *service.SessionS
	keys    KeyMap
	styles  Styles

	mode Mode

	// grid view: index of the hovered cell in the current projection
	gridCursor int

	englishInput    textinput.Model
	vietnameseInput textinput.Model
	searchInput     textinput.Model

	width  int
	height int
}

func NewApp(session *service.SessionS) App {
	english := textinput.New()
	english.Placeholder = "English word"
	english.CharLimit = 100
	english.Width = 32

	vietnamese := textinput.New()
	vietnamese.Placeholder = "Nghĩa tiếng Việt"
	vietnamese.CharLimit = 200
	vietnamese.Width = 32

	search := textinput.New()
	search.Placeholder = "search both sides"
	search.CharLimit = 100
	search.Width = 32

	return App{
		session:         session,
		keys:            DefaultKeyMap(),
		styles:          DefaultStyles(),
		mode:            ModeStudy,
		englishInput:    english,
		vietnameseInput: vietnamese,
		searchInput:     search,
		width:           80,
		height:          24,
	}
}

// Mode returns the current input mode.
func (a App) Mode() Mode { return a.mode }

// GridCursor returns the hovered cell index in grid view.
func (a App) GridCursor() int { return a.gridCursor }

// Session exposes the underlying session, mainly for tests.
func (a App) Session() *service.SessionS { return a.session }

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		switch a.mode {
		case ModeAdd:
			return a.updateAdd(msg)
		case ModeSearch:
			return a.updateSearch(msg)
		default:
			return a.updateStudy(msg)
		}
	}
	return a, nil
}

func (a App) updateStudy(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	grid := a.session.View().Mode == models.ViewGrid

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Add):
		a.mode = ModeAdd
		a.englishInput.SetValue("")
		a.vietnameseInput.SetValue("")
		a.vietnameseInput.Blur()
		a.englishInput.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Search):
		a.mode = ModeSearch
		a.searchInput.SetValue(a.session.View().SearchQuery)
		a.searchInput.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Filter):
		a.session.ToggleFilter()
		a.gridCursor = 0
		return a, nil

	case key.Matches(msg, a.keys.Sort):
		a.session.SetSortAlpha(!a.session.View().SortAlpha)
		a.clampGridCursor()
		return a, nil

	case key.Matches(msg, a.keys.ViewMode):
		a.session.ToggleViewMode()
		a.gridCursor = 0
		return a, nil

	case key.Matches(msg, a.keys.Learned):
		if grid {
			if card, ok := a.hoveredCard(); ok {
				a.session.ToggleLearned(ctx, card.ID)
				a.clampGridCursor()
			}
		} else {
			a.session.ToggleLearnedCurrent(ctx)
		}
		return a, nil

	case key.Matches(msg, a.keys.Remove):
		if grid {
			if card, ok := a.hoveredCard(); ok {
				a.session.Remove(ctx, card.ID)
				a.clampGridCursor()
			}
		} else {
			a.session.RemoveCurrent(ctx)
		}
		return a, nil

	case key.Matches(msg, a.keys.Flip):
		if grid {
			if card, ok := a.hoveredCard(); ok {
				a.session.ToggleFlip(card.ID)
			}
		} else {
			a.session.ToggleAnswer()
		}
		return a, nil

	case grid && (key.Matches(msg, a.keys.GridRight) || key.Matches(msg, a.keys.Next)):
		if a.gridCursor < len(a.session.Visible())-1 {
			a.gridCursor++
		}
		return a, nil

	case grid && (key.Matches(msg, a.keys.GridLeft) || key.Matches(msg, a.keys.Previous)):
		if a.gridCursor > 0 {
			a.gridCursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.Next):
		a.session.Next()
		return a, nil

	case key.Matches(msg, a.keys.Previous):
		a.session.Previous()
		return a, nil
	}

	return a, nil
}

func (a App) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.mode = ModeStudy
		a.englishInput.Blur()
		a.vietnameseInput.Blur()
		return a, nil

	case key.Matches(msg, a.keys.NextField):
		if a.englishInput.Focused() {
			a.englishInput.Blur()
			a.vietnameseInput.Focus()
		} else {
			a.vietnameseInput.Blur()
			a.englishInput.Focus()
		}
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Confirm):
		if a.englishInput.Focused() {
			a.englishInput.Blur()
			a.vietnameseInput.Focus()
			return a, textinput.Blink
		}
		// An empty side rejects the card silently; the form stays open so
		// the user can finish it.
		if a.session.AddCard(context.Background(), a.englishInput.Value(), a.vietnameseInput.Value()) {
			a.mode = ModeStudy
			a.englishInput.SetValue("")
			a.vietnameseInput.SetValue("")
			a.vietnameseInput.Blur()
		}
		return a, nil
	}

	var cmd tea.Cmd
	if a.englishInput.Focused() {
		a.englishInput, cmd = a.englishInput.Update(msg)
	} else {
		a.vietnameseInput, cmd = a.vietnameseInput.Update(msg)
	}
	return a, cmd
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.mode = ModeStudy
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.session.SetSearchQuery("")
		a.clampGridCursor()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		a.mode = ModeStudy
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.session.SetSearchQuery(a.searchInput.Value())
	a.clampGridCursor()
	return a, cmd
}

func (a App) hoveredCard() (models.Card, bool) {
	visible := a.session.Visible()
	if len(visible) == 0 {
		return models.Card{}, false
	}
	if a.gridCursor >= len(visible) {
		return visible[len(visible)-1], true
	}
	return visible[a.gridCursor], true
}

func (a *App) clampGridCursor() {
	count := len(a.session.Visible())
	switch {
	case count == 0:
		a.gridCursor = 0
	case a.gridCursor >= count:
		a.gridCursor = count - 1
	case a.gridCursor < 0:
		a.gridCursor = 0
	}
}
