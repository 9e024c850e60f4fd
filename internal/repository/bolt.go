package repository

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
)

const bucketCards = "cards"

// BoltR stores the deck in a single-file embedded database. Cards live in one
// bucket keyed by big-endian position so iteration preserves deck order.
type BoltR struct {
	db *bolt.DB
}

func NewBoltRepository(path string) (*BoltR, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCards))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize bolt bucket: %w", err)
	}

	return &BoltR{db: db}, nil
}

func (b *BoltR) Load(_ context.Context) ([]models.Card, error) {
	cards := []models.Card{}
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketCards))
		return bucket.ForEach(func(_, v []byte) error {
			var card models.Card
			if err := json.Unmarshal(v, &card); err != nil {
				return fmt.Errorf("failed to decode card: %w", err)
			}
			cards = append(cards, card)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (b *BoltR) Save(_ context.Context, cards []models.Card) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketCards)); err != nil {
			return err
		}
		bucket, err := tx.CreateBucket([]byte(bucketCards))
		if err != nil {
			return err
		}
		for i, card := range cards {
			data, err := json.Marshal(card)
			if err != nil {
				return fmt.Errorf("failed to encode card: %w", err)
			}
			if err := bucket.Put(marshalPos(uint64(i)), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BoltR) Close() error {
	return b.db.Close()
}

func marshalPos(pos uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, pos)
	return key
}
