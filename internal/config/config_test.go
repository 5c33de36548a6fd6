package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadScheduleDefaults(t *testing.T) {
	t.Setenv("WEEK_DAYS", "")
	t.Setenv("LEGACY_OVERLAP", "")

	cfg, err := LoadSchedule()
	require.NoError(t, err)
	require.Equal(t, 5, cfg.WeekDays)
	require.False(t, cfg.LegacyOverlap)
	require.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, cfg.WeekdayNames())
}

func TestLoadScheduleSevenDays(t *testing.T) {
	t.Setenv("WEEK_DAYS", "7")
	t.Setenv("LEGACY_OVERLAP", "true")

	cfg, err := LoadSchedule()
	require.NoError(t, err)
	require.True(t, cfg.LegacyOverlap)
	require.Len(t, cfg.WeekdayNames(), 7)
	require.Equal(t, "Sunday", cfg.WeekdayNames()[6])
}

func TestLoadScheduleRejectsBadValues(t *testing.T) {
	t.Setenv("WEEK_DAYS", "6")
	_, err := LoadSchedule()
	require.Error(t, err)

	t.Setenv("WEEK_DAYS", "5")
	t.Setenv("LEGACY_OVERLAP", "maybe")
	_, err = LoadSchedule()
	require.Error(t, err)
}
