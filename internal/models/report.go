package models

import "github.com/google/uuid"

// RosterEntry is one row of the full-roster projection: an assignment with
// every catalog reference resolved to its display name. Times carry both the
// 24-hour storage form and the 12-hour display form.
type RosterEntry struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	Teacher      string    `json:"teacher"`
	Subject      string    `json:"subject"`
	Section      string    `json:"section"`
	Room         string    `json:"room"`
	Weekday      string    `json:"weekday"`
	StartTime    ClockTime `json:"start_time"`
	EndTime      ClockTime `json:"end_time"`
	StartDisplay string    `json:"start_display"`
	EndDisplay   string    `json:"end_display"`
}

// SectionSchedule is the per-section weekly grid: one bucket per seeded
// weekday, entries time-sorted within each bucket.
type SectionSchedule struct {
	SectionID uuid.UUID    `json:"section_id"`
	Section   string       `json:"section"`
	Days      []SectionDay `json:"days"`
}

type SectionDay struct {
	WeekdayID uuid.UUID      `json:"weekday_id"`
	Weekday   string         `json:"weekday"`
	Ordinal   int16          `json:"ordinal"`
	Entries   []SectionEntry `json:"entries"`
}

type SectionEntry struct {
	Teacher      string    `json:"teacher"`
	Subject      string    `json:"subject"`
	Room         string    `json:"room"`
	StartTime    ClockTime `json:"start_time"`
	EndTime      ClockTime `json:"end_time"`
	StartDisplay string    `json:"start_display"`
	EndDisplay   string    `json:"end_display"`
}
