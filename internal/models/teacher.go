package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Teacher is a catalog entity; (first name, last name) is unique.
type Teacher struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Teacher) Prepare() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.FirstName = strings.TrimSpace(t.FirstName)
	t.LastName = strings.TrimSpace(t.LastName)
}

// FullName is the display form used by the report projections.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
