package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
)

func (a App) View() string {
	if a.mode == ModeAdd {
		return a.renderAddForm()
	}

	var b strings.Builder

	b.WriteString(a.styles.Title.Render("EN–VI Flashcards"))
	b.WriteString("  ")
	b.WriteString(a.renderIndicators())
	b.WriteString("\n\n")

	if a.mode == ModeSearch || a.session.View().SearchQuery != "" {
		b.WriteString("Search: ")
		b.WriteString(a.searchInput.View())
		b.WriteString("\n\n")
	}

	visible := a.session.Visible()
	switch {
	case len(visible) == 0:
		b.WriteString(a.styles.Subtle.Render("No flashcards available. Add some to get started!"))
		b.WriteString("\n")
	case a.session.View().Mode == models.ViewGrid:
		b.WriteString(a.renderGrid(visible))
	default:
		b.WriteString(a.renderSingle())
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

func (a App) renderIndicators() string {
	view := a.session.View()
	parts := []string{view.Mode.String()}
	if view.FilterLearned {
		parts = append(parts, "hiding learned")
	}
	if view.SortAlpha {
		parts = append(parts, "A-Z")
	}
	return a.styles.StatusOn.Render("[" + strings.Join(parts, " · ") + "]")
}

func (a App) renderSingle() string {
	var b strings.Builder

	b.WriteString(a.styles.Counter.Render(a.session.CounterText()))
	b.WriteString("\n\n")

	card, ok := a.session.CurrentCard()
	if !ok {
		return b.String()
	}

	wordStyle := a.styles.WordNew
	if card.Learned {
		wordStyle = a.styles.WordLearned
	}

	var face string
	if a.session.ShowAnswer() {
		face = a.styles.Translation.Render(card.Vietnamese)
		if card.Learned {
			face += "\n" + a.styles.Subtle.Render("learned")
		}
	} else {
		face = wordStyle.Render(card.English)
	}

	b.WriteString(a.styles.CardBox.Width(min(a.width-4, 48)).Render(face))
	b.WriteString("\n")

	return b.String()
}

func (a App) renderGrid(visible []models.Card) string {
	columns := a.width / 24
	if columns < 1 {
		columns = 1
	}

	cells := make([]string, 0, len(visible))
	for i, card := range visible {
		style := a.styles.GridCell
		if i == a.gridCursor {
			style = a.styles.GridHover
		}

		var face string
		if a.session.Flipped(card.ID) {
			face = a.styles.Translation.Render(card.Vietnamese)
		} else if card.Learned {
			face = a.styles.WordLearned.Render(card.English)
		} else {
			face = a.styles.WordNew.Render(card.English)
		}

		cells = append(cells, style.Width(20).Render(face))
	}

	rows := make([]string, 0, (len(cells)+columns-1)/columns)
	for start := 0; start < len(cells); start += columns {
		end := start + columns
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (a App) renderAddForm() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Add a flashcard"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.FormLabel.Render("English"))
	b.WriteString("\n")
	b.WriteString(a.englishInput.View())
	b.WriteString("\n\n")
	b.WriteString(a.styles.FormLabel.Render("Vietnamese"))
	b.WriteString("\n")
	b.WriteString(a.vietnameseInput.View())
	b.WriteString("\n\n")
	b.WriteString(a.styles.Subtle.Render("tab: switch field · enter: save · esc: cancel"))
	b.WriteString("\n")

	return b.String()
}

func (a App) renderFooter() string {
	stats := a.session.Stats()

	var b strings.Builder
	b.WriteString(a.styles.Subtle.Render(fmt.Sprintf(
		"%d cards · %d learned · %d remaining",
		stats.TotalCount, stats.LearnedCount, stats.RemainingCount,
	)))
	b.WriteString("\n")

	help := []string{
		a.keys.Flip.Help().Key + " " + a.keys.Flip.Help().Desc,
		a.keys.Next.Help().Key + " " + a.keys.Next.Help().Desc,
		a.keys.Previous.Help().Key + " " + a.keys.Previous.Help().Desc,
		a.keys.Learned.Help().Key + " " + a.keys.Learned.Help().Desc,
		a.keys.Add.Help().Key + " " + a.keys.Add.Help().Desc,
		a.keys.Remove.Help().Key + " " + a.keys.Remove.Help().Desc,
		a.keys.Filter.Help().Key + " " + a.keys.Filter.Help().Desc,
		a.keys.Sort.Help().Key + " " + a.keys.Sort.Help().Desc,
		a.keys.Search.Help().Key + " " + a.keys.Search.Help().Desc,
		a.keys.ViewMode.Help().Key + " " + a.keys.ViewMode.Help().Desc,
		a.keys.Quit.Help().Key + " " + a.keys.Quit.Help().Desc,
	}
	b.WriteString(a.styles.Subtle.Render(strings.Join(help, " · ")))

	return b.String()
}
