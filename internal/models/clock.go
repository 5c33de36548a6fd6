package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ClockTime is a wall-clock time with minute precision, stored as minutes
// since midnight. Assignments use half-open [start, end) intervals, so an
// entry ending at the minute another starts does not collide with it.
type ClockTime int16

const minutesPerDay = 24 * 60

// ParseClock reads the 24-hour "HH:MM" storage format.
func ParseClock(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, herr := strconv.Atoi(s[:2])
	m, merr := strconv.Atoi(s[3:])
	if herr != nil || merr != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return ClockTime(h*60 + m), nil
}

func (t ClockTime) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

// Format24 renders the storage format, e.g. "14:30".
func (t ClockTime) Format24() string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// Format12 renders the display format with an AM/PM suffix, e.g. "02:30 PM".
func (t ClockTime) Format12() string {
	h := int(t / 60)
	suffix := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", h, t%60, suffix)
}

// ParseClock12 reads the display format back, e.g. "02:30 PM" -> 14:30.
func ParseClock12(s string) (ClockTime, error) {
	var h, m int
	var suffix string
	if _, err := fmt.Sscanf(s, "%2d:%2d %s", &h, &m, &suffix); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM AM/PM", s)
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	switch suffix {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	default:
		return 0, fmt.Errorf("invalid time %q: expected AM or PM suffix", s)
	}
	return ClockTime(h*60 + m), nil
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format24())
}

func (t *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
