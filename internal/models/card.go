package models

// Card is a single flashcard. ID is a session-scoped surrogate assigned by the
// deck service; it is never persisted, so legacy data files stay readable.
type Card struct {
	ID         int64  `json:"-" db:"id"`
	English    string `json:"english" db:"english"`
	Vietnamese string `json:"vietnamese" db:"vietnamese"`
	Learned    bool   `json:"learned" db:"learned"`
}

type DeckStats struct {
	TotalCount     int `db:"total_count"`
	LearnedCount   int `db:"learned_count"`
	RemainingCount int `db:"remaining_count"`
}
