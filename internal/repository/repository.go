package repository

import (
	"context"
	"database/sql"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
)

// QueryI is the subset of sqlx used by the postgres-backed deck repository.
type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// DeckRepositoryI persists the full ordered deck. Load returns an empty deck
// when no prior data exists; Save replaces whatever was stored before.
type DeckRepositoryI interface {
	Load(ctx context.Context) ([]models.Card, error)
	Save(ctx context.Context, cards []models.Card) error
}
