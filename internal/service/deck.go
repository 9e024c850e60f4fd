package service

import (
	"context"
	"strings"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
	"go.uber.org/zap"
)

// DeckS owns the authoritative ordered deck. Cards are addressed by the
// surrogate ID assigned here, never by field equality, so duplicate
// english/vietnamese pairs stay unambiguous. Every mutation bumps the deck
// version and schedules a best-effort full-deck save.
type DeckS struct {
	repo    DeckRepositoryI
	log     *zap.Logger
	cards   []models.Card
	nextID  int64
	version uint64
}

func NewDeckService(repo DeckRepositoryI, log *zap.Logger) *DeckS {
	return &DeckS{
		repo:   repo,
		log:    log,
		cards:  []models.Card{},
		nextID: 1,
	}
}

// Load reads the persisted deck. A missing, unreadable or malformed store is
// recovered locally: the deck starts empty and the session carries on.
func (d *DeckS) Load(ctx context.Context) {
	cards, err := d.repo.Load(ctx)
	if err != nil {
		d.log.Error("failed to load deck, starting empty", zap.Error(err))
		d.cards = []models.Card{}
		return
	}

	d.cards = cards
	for i := range d.cards {
		d.cards[i].ID = d.nextID
		d.nextID++
	}
	d.log.Info("deck loaded", zap.Int("cards", len(d.cards)))
}

// Cards returns a copy of the deck in insertion order.
func (d *DeckS) Cards() []models.Card {
	cards := make([]models.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Version changes on every mutation; projections memoize against it.
func (d *DeckS) Version() uint64 {
	return d.version
}

// Add appends a new unlearned card. Empty fields after trimming make it a
// silent no-op: no card is created and nothing is reported beyond the bool.
func (d *DeckS) Add(ctx context.Context, english, vietnamese string) (models.Card, bool) {
	english = strings.TrimSpace(english)
	vietnamese = strings.TrimSpace(vietnamese)
	if english == "" || vietnamese == "" {
		return models.Card{}, false
	}

	card := models.Card{
		ID:         d.nextID,
		English:    english,
		Vietnamese: vietnamese,
	}
	d.nextID++
	d.cards = append(d.cards, card)
	d.mutated(ctx)

	return card, true
}

// Remove deletes the card with the given ID, preserving the order of the rest.
func (d *DeckS) Remove(ctx context.Context, id int64) bool {
	for i, card := range d.cards {
		if card.ID == id {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			d.mutated(ctx)
			return true
		}
	}
	return false
}

// ToggleLearned flips the learned flag on the card with the given ID.
func (d *DeckS) ToggleLearned(ctx context.Context, id int64) bool {
	for i := range d.cards {
		if d.cards[i].ID == id {
			d.cards[i].Learned = !d.cards[i].Learned
			d.mutated(ctx)
			return true
		}
	}
	return false
}

func (d *DeckS) Stats() models.DeckStats {
	stats := models.DeckStats{TotalCount: len(d.cards)}
	for _, card := range d.cards {
		if card.Learned {
			stats.LearnedCount++
		}
	}
	stats.RemainingCount = stats.TotalCount - stats.LearnedCount
	return stats
}

func (d *DeckS) mutated(ctx context.Context) {
	d.version++
	if err := d.repo.Save(ctx, d.cards); err != nil {
		// Best effort: the in-memory deck stays authoritative for the session.
		d.log.Error("failed to save deck", zap.Error(err))
	}
}
