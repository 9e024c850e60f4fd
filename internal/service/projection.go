package service

import (
	"sort"
	"strings"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
)

// Project computes the visible sequence of cards for a view state. The order
// of operations is fixed: learned filter, then search filter, then sort.
// Sorting is stable so disabling it restores the filtered set's deck order.
// The input slice is never mutated.
func Project(cards []models.Card, view models.ViewState) []models.Card {
	visible := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		if view.FilterLearned && card.Learned {
			continue
		}
		visible = append(visible, card)
	}

	if query := strings.ToLower(strings.TrimSpace(view.SearchQuery)); query != "" {
		matched := make([]models.Card, 0, len(visible))
		for _, card := range visible {
			if matchesQuery(card, query) {
				matched = append(matched, card)
			}
		}
		visible = matched
	}

	if view.SortAlpha {
		sort.SliceStable(visible, func(i, j int) bool {
			return strings.ToLower(visible[i].English) < strings.ToLower(visible[j].English)
		})
	}

	return visible
}

// matchesQuery reports whether the lowercased query is a substring of either
// side of the card. Matching is OR across fields.
func matchesQuery(card models.Card, query string) bool {
	return strings.Contains(strings.ToLower(card.English), query) ||
		strings.Contains(strings.ToLower(card.Vietnamese), query)
}
