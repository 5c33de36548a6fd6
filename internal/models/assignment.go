package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is one scheduled occupation of a room by a teacher teaching a
// subject to a section, on a given weekday, over [StartTime, EndTime).
type Assignment struct {
	ID        uuid.UUID `json:"id"`
	TeacherID uuid.UUID `json:"teacher_id"`
	SubjectID uuid.UUID `json:"subject_id"`
	SectionID uuid.UUID `json:"section_id"`
	RoomID    uuid.UUID `json:"room_id"`
	WeekdayID uuid.UUID `json:"weekday_id"`
	StartTime ClockTime `json:"start_time"`
	EndTime   ClockTime `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Assignment) Prepare() {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
}
