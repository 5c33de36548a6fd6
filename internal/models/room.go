package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Room) Prepare() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.Name = strings.TrimSpace(r.Name)
}
