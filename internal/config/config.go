package config

import (
	"fmt"
	"os"
	"strconv"
)

// Canonical weekday seed. The store is seeded once at first migration; five
// days is the default school week, WEEK_DAYS=7 extends it through Sunday.
var weekNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type Schedule struct {
	// WeekDays is the number of seeded weekdays, 5 or 7.
	WeekDays int
	// LegacyOverlap reproduces the historical third overlap clause
	// (s1 >= s2 AND e1 <= s2, effectively inert) instead of the corrected
	// containment clause. Only useful for compatibility testing.
	LegacyOverlap bool
}

func LoadSchedule() (Schedule, error) {
	cfg := Schedule{WeekDays: 5}

	if v := os.Getenv("WEEK_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || (n != 5 && n != 7) {
			return Schedule{}, fmt.Errorf("WEEK_DAYS must be 5 or 7, got %q", v)
		}
		cfg.WeekDays = n
	}

	if v := os.Getenv("LEGACY_OVERLAP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Schedule{}, fmt.Errorf("LEGACY_OVERLAP must be a boolean, got %q", v)
		}
		cfg.LegacyOverlap = b
	}

	return cfg, nil
}

// WeekdayNames returns the seed list in display order.
func (c Schedule) WeekdayNames() []string {
	return weekNames[:c.WeekDays]
}
