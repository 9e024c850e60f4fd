package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCardsTestRepo(t *testing.T) (*CardsR, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewCardsRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCardsR_EnsureSchema(t *testing.T) {
	t.Parallel()

	repo, mock := newCardsTestRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS cards").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardsR_Load(t *testing.T) {
	t.Parallel()

	repo, mock := newCardsTestRepo(t)

	rows := sqlmock.NewRows([]string{"english", "vietnamese", "learned"}).
		AddRow("cat", "con mèo", false).
		AddRow("dog", "con chó", true)

	mock.ExpectQuery("SELECT english, vietnamese, learned").
		WillReturnRows(rows)

	cards, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "cat", cards[0].English)
	assert.Equal(t, "con chó", cards[1].Vietnamese)
	assert.True(t, cards[1].Learned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardsR_LoadError(t *testing.T) {
	t.Parallel()

	repo, mock := newCardsTestRepo(t)

	mock.ExpectQuery("SELECT english, vietnamese, learned").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
}

func TestCardsR_Save(t *testing.T) {
	t.Parallel()

	repo, mock := newCardsTestRepo(t)

	mock.ExpectExec("DELETE FROM cards").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO cards").
		WithArgs(0, "cat", "con mèo", false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO cards").
		WithArgs(1, "dog", "con chó", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), []models.Card{
		{English: "cat", Vietnamese: "con mèo"},
		{English: "dog", Vietnamese: "con chó", Learned: true},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardsR_SaveInsertError(t *testing.T) {
	t.Parallel()

	repo, mock := newCardsTestRepo(t)

	mock.ExpectExec("DELETE FROM cards").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO cards").
		WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), []models.Card{
		{English: "cat", Vietnamese: "con mèo"},
	})

	require.Error(t, err)
}
