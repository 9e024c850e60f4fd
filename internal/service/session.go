package service

import (
	"context"
	"fmt"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
	"github.com/linhnt-hub/reflex-flash-cards/internal/storage/cache"
	"go.uber.org/zap"
)

// SessionS holds one study session's transient state: the view configuration,
// the cursor into the current projection, the single-view reveal flag and the
// grid-view flip set. Whenever the projection can change length, the cursor is
// clamped back into range; when the projection is empty the cursor is 0.
type SessionS struct {
	deck  *DeckS
	memo  *cache.Cache
	log   *zap.Logger
	view  models.ViewState
	index int
	// single view: translation revealed
	showAnswer bool
	// grid view: card IDs currently showing their translation side
	flipped map[int64]struct{}
}

func NewSessionService(deck *DeckS, memo *cache.Cache, log *zap.Logger) *SessionS {
	return &SessionS{
		deck:    deck,
		memo:    memo,
		log:     log,
		flipped: make(map[int64]struct{}),
	}
}

// Visible is the current projection of the deck under the session's view
// state, memoized per deck version so repeated reads within one frame are free.
func (s *SessionS) Visible() []models.Card {
	version := s.deck.Version()
	if cards, ok := s.memo.Projection(version, s.view); ok {
		return cards
	}
	cards := Project(s.deck.Cards(), s.view)
	s.memo.SetProjection(version, s.view, cards)
	return cards
}

func (s *SessionS) View() models.ViewState { return s.view }
func (s *SessionS) CurrentIndex() int      { return s.index }
func (s *SessionS) ShowAnswer() bool       { return s.showAnswer }

// CurrentCard returns the card under the cursor. Clamping keeps the cursor in
// range after every mutation, so the element-0 fallback is a defensive read
// rather than a path anything should reach.
func (s *SessionS) CurrentCard() (models.Card, bool) {
	visible := s.Visible()
	if len(visible) == 0 {
		return models.Card{}, false
	}
	if s.index >= len(visible) {
		return visible[0], true
	}
	return visible[s.index], true
}

// CounterText is the position indicator shown above the card.
func (s *SessionS) CounterText() string {
	count := len(s.Visible())
	if count == 0 {
		return "No cards"
	}
	return fmt.Sprintf("Card %d of %d", s.index+1, count)
}

// Next advances the cursor, wrapping at the end and hiding the answer. No-op
// on an empty projection.
func (s *SessionS) Next() {
	visible := s.Visible()
	if len(visible) == 0 {
		return
	}
	s.index = (s.index + 1) % len(visible)
	s.showAnswer = false
}

// Previous moves the cursor back, wrapping at the start and hiding the answer.
func (s *SessionS) Previous() {
	visible := s.Visible()
	if len(visible) == 0 {
		return
	}
	s.index = (s.index - 1 + len(visible)) % len(visible)
	s.showAnswer = false
}

// ToggleAnswer flips the reveal state of the current card in single view.
func (s *SessionS) ToggleAnswer() {
	s.showAnswer = !s.showAnswer
}

// AddCard creates a new card. Empty input after trimming is a silent no-op.
func (s *SessionS) AddCard(ctx context.Context, english, vietnamese string) bool {
	_, ok := s.deck.Add(ctx, english, vietnamese)
	if ok {
		s.clamp()
	}
	return ok
}

// RemoveCurrent deletes the card under the cursor.
func (s *SessionS) RemoveCurrent(ctx context.Context) bool {
	card, ok := s.CurrentCard()
	if !ok {
		return false
	}
	return s.Remove(ctx, card.ID)
}

// Remove deletes a specific card, for grid view.
func (s *SessionS) Remove(ctx context.Context, id int64) bool {
	removed := s.deck.Remove(ctx, id)
	if removed {
		delete(s.flipped, id)
		s.clamp()
	}
	return removed
}

// ToggleLearnedCurrent flips the learned flag of the card under the cursor.
func (s *SessionS) ToggleLearnedCurrent(ctx context.Context) bool {
	card, ok := s.CurrentCard()
	if !ok {
		return false
	}
	return s.ToggleLearned(ctx, card.ID)
}

// ToggleLearned flips the learned flag of a specific card, for grid view. The
// mutation goes through the deck, so the projection and the stored card can
// never diverge; the cursor is clamped because the learned filter may have
// just hidden the card.
func (s *SessionS) ToggleLearned(ctx context.Context, id int64) bool {
	toggled := s.deck.ToggleLearned(ctx, id)
	if toggled {
		s.clamp()
	}
	return toggled
}

// ToggleFlip adds the card to the grid flip set, or removes it if present.
func (s *SessionS) ToggleFlip(id int64) {
	if _, ok := s.flipped[id]; ok {
		delete(s.flipped, id)
	} else {
		s.flipped[id] = struct{}{}
	}
}

// Flipped reports whether a grid card is showing its translation side.
func (s *SessionS) Flipped(id int64) bool {
	_, ok := s.flipped[id]
	return ok
}

// ToggleViewMode switches between single and grid view. Entering either mode
// clears that mode's transient toggle state and restarts from the first card.
func (s *SessionS) ToggleViewMode() {
	if s.view.Mode == models.ViewSingle {
		s.view.Mode = models.ViewGrid
	} else {
		s.view.Mode = models.ViewSingle
	}
	s.index = 0
	s.showAnswer = false
	s.flipped = make(map[int64]struct{})
}

// ToggleFilter switches the learned filter and restarts from the first card.
func (s *SessionS) ToggleFilter() {
	s.view.FilterLearned = !s.view.FilterLearned
	s.index = 0
	s.showAnswer = false
}

// SetSearchQuery updates the search text. The cursor is only clamped, not
// reset, so narrowing a search keeps the position when it still fits.
func (s *SessionS) SetSearchQuery(query string) {
	s.view.SearchQuery = query
	s.clamp()
}

// SetSortAlpha enables or disables alphabetical ordering of the projection.
func (s *SessionS) SetSortAlpha(enabled bool) {
	s.view.SortAlpha = enabled
	s.clamp()
}

func (s *SessionS) Stats() models.DeckStats {
	return s.deck.Stats()
}

func (s *SessionS) clamp() {
	visible := s.Visible()
	switch {
	case len(visible) == 0:
		s.index = 0
	case s.index >= len(visible):
		s.index = len(visible) - 1
	case s.index < 0:
		s.index = 0
	}
}
