package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Section struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Section) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.Name = strings.TrimSpace(s.Name)
}
