package models

import "github.com/google/uuid"

// Weekday is seeded once at initialization and is read-only afterwards.
// Ordinal drives report ordering (Monday = 1).
type Weekday struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Ordinal int16     `json:"ordinal"`
}
