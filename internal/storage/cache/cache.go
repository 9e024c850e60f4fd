package cache

import (
	"sync"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
)

type projectionKey struct {
	version uint64
	view    models.ViewState
}

// Cache memoizes the last computed projection. A session renders one
// (deck version, view state) pair at a time, so a single slot is enough:
// storing a new projection evicts the previous one, and a deck mutation bumps
// the version, which turns the held entry into a miss.
type Cache struct {
	mu    sync.Mutex
	key   projectionKey
	cards []models.Card
	valid bool
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) Projection(version uint64, view models.ViewState) ([]models.Card, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid || c.key != (projectionKey{version: version, view: view}) {
		return nil, false
	}
	return c.cards, true
}

func (c *Cache) SetProjection(version uint64, view models.ViewState, cards []models.Card) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = projectionKey{version: version, view: view}
	c.cards = cards
	c.valid = true
}
