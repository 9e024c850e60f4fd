package models

type ViewMode int

const (
	ViewSingle ViewMode = iota
	ViewGrid
)

func (m ViewMode) String() string {
	if m == ViewGrid {
		return "grid"
	}
	return "single"
}

// ViewState is the configuration a projection is computed from. All fields are
// scalars so the struct is comparable and can key the projection cache.
type ViewState struct {
	SearchQuery   string
	SortAlpha     bool
	FilterLearned bool
	Mode          ViewMode
}
