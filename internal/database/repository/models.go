package repository

import "time"

// Section represents a section row.
type Section struct {
	ID        string
	Name      string
	SortOrder int
}

// Item represents an item row.
type Item struct {
	ID        string
	SectionID string
	Title     string
	Summary   string
	Favorite  bool
	CreatedAt time.Time
}
