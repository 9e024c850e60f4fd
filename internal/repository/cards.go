package repository

import (
	"context"
	"fmt"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
)

// CardsR is the postgres-backed deck repository. The whole deck is replaced on
// every save; position keeps the deck's insertion order across loads.
type CardsR struct {
	db QueryI
}

func NewCardsRepository(db QueryI) *CardsR {
	return &CardsR{db: db}
}

const schemaCards = `CREATE TABLE IF NOT EXISTS cards (
	position   INT PRIMARY KEY,
	english    TEXT NOT NULL,
	vietnamese TEXT NOT NULL,
	learned    BOOLEAN NOT NULL DEFAULT FALSE
)`

// EnsureSchema creates the cards table when it does not exist yet.
func (c *CardsR) EnsureSchema(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schemaCards); err != nil {
		return fmt.Errorf("failed to ensure cards schema: %w", err)
	}
	return nil
}

func (c *CardsR) Load(ctx context.Context) ([]models.Card, error) {
	query := `
		SELECT english, vietnamese, learned
		FROM cards
		ORDER BY position
	`

	cards := []models.Card{}
	if err := c.db.SelectContext(ctx, &cards, query); err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}

	return cards, nil
}

func (c *CardsR) Save(ctx context.Context, cards []models.Card) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM cards`); err != nil {
		return fmt.Errorf("failed to clear deck: %w", err)
	}

	query := `INSERT INTO cards (position, english, vietnamese, learned) VALUES ($1, $2, $3, $4)`
	for i, card := range cards {
		if _, err := c.db.ExecContext(ctx, query, i, card.English, card.Vietnamese, card.Learned); err != nil {
			return fmt.Errorf("failed to save card %q: %w", card.English, err)
		}
	}

	return nil
}
