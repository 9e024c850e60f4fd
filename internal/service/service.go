package service

import (
	"context"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
	"github.com/linhnt-hub/reflex-flash-cards/internal/storage/cache"
	"go.uber.org/zap"
)

// DeckRepositoryI is the persistence contract the deck depends on: load the
// whole ordered deck once, replace the whole ordered deck on every save.
type DeckRepositoryI interface {
	Load(ctx context.Context) ([]models.Card, error)
	Save(ctx context.Context, cards []models.Card) error
}

type Service struct {
	Deck    *DeckS
	Session *SessionS
}

func InitServices(repo DeckRepositoryI, log *zap.Logger) *Service {
	deck := NewDeckService(repo, log)
	return &Service{
		Deck:    deck,
		Session: NewSessionService(deck, cache.NewCache(), log),
	}
}
