package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/linhnt-hub/reflex-flash-cards/internal/models"
)

// FileR stores the deck as a JSON array of {english, vietnamese, learned}
// objects, the format the legacy flashcards.json data files use.
type FileR struct {
	path string
}

func NewFileRepository(path string) *FileR {
	return &FileR{path: path}
}

func (f *FileR) Load(_ context.Context) ([]models.Card, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Card{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	var cards []models.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f.path, err)
	}
	if cards == nil {
		cards = []models.Card{}
	}

	return cards, nil
}

func (f *FileR) Save(_ context.Context, cards []models.Card) error {
	if cards == nil {
		cards = []models.Card{}
	}

	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}

	// Write-then-rename so a crash mid-write never truncates the data file.
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".flashcards-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write deck: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}

	return nil
}
