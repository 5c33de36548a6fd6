package services

import (
	"testing"

	"timetable-backend/internal/apperrors"
	"timetable-backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestRosterProjection(t *testing.T) {
	f := newFixture(t, config.Schedule{WeekDays: 5})
	monday := f.day(t, "Monday")

	_, err := f.schedule.AddAssignment(f.request(f.zimmer, f.physics, f.secB, f.room102, monday, "14:30", "16:00"))
	require.NoError(t, err)
	_, err = f.schedule.AddAssignment(f.request(f.abbott, f.math, f.secA, f.room101, monday, "08:00", "09:00"))
	require.NoError(t, err)

	roster, err := f.reports.Roster()
	require.NoError(t, err)
	require.Len(t, roster, 2)

	// Abbott sorts before Zimmer.
	require.Equal(t, "Alice Abbott", roster[0].Teacher)
	require.Equal(t, "Mathematics", roster[0].Subject)
	require.Equal(t, "Section A", roster[0].Section)
	require.Equal(t, "Room 101", roster[0].Room)
	require.Equal(t, "Monday", roster[0].Weekday)
	require.Equal(t, "08:00", roster[0].StartTime.Format24())
	require.Equal(t, "08:00 AM", roster[0].StartDisplay)

	require.Equal(t, "Bruno Zimmer", roster[1].Teacher)
	require.Equal(t, "14:30", roster[1].StartTime.Format24())
	require.Equal(t, "02:30 PM", roster[1].StartDisplay)
	require.Equal(t, "04:00 PM", roster[1].EndDisplay)
}

func TestSectionScheduleGrid(t *testing.T) {
	f := newFixture(t, config.Schedule{WeekDays: 5})
	monday := f.day(t, "Monday")
	friday := f.day(t, "Friday")

	_, err := f.schedule.AddAssignment(f.request(f.abbott, f.math, f.secA, f.room101, monday, "10:00", "11:00"))
	require.NoError(t, err)
	_, err = f.schedule.AddAssignment(f.request(f.zimmer, f.physics, f.secA, f.room102, monday, "08:00", "09:00"))
	require.NoError(t, err)
	_, err = f.schedule.AddAssignment(f.request(f.abbott, f.math, f.secA, f.room101, friday, "08:00", "09:00"))
	require.NoError(t, err)
	// Another section's entry must not leak into the grid.
	_, err = f.schedule.AddAssignment(f.request(f.zimmer, f.physics, f.secB, f.room102, friday, "10:00", "11:00"))
	require.NoError(t, err)

	schedule, err := f.reports.SectionSchedule(f.secA.ID.String())
	require.NoError(t, err)
	require.Equal(t, "Section A", schedule.Section)

	// One bucket per seeded weekday, in weekday order, empty days included.
	require.Len(t, schedule.Days, 5)
	for i, day := range schedule.Days {
		require.Equal(t, int16(i+1), day.Ordinal)
	}

	mondayBucket := schedule.Days[0]
	require.Equal(t, "Monday", mondayBucket.Weekday)
	require.Len(t, mondayBucket.Entries, 2)
	// Time-sorted within the day.
	require.Equal(t, "Bruno Zimmer", mondayBucket.Entries[0].Teacher)
	require.Equal(t, "08:00 AM", mondayBucket.Entries[0].StartDisplay)
	require.Equal(t, "Alice Abbott", mondayBucket.Entries[1].Teacher)

	fridayBucket := schedule.Days[4]
	require.Len(t, fridayBucket.Entries, 1)
	require.Equal(t, "Mathematics", fridayBucket.Entries[0].Subject)

	for _, day := range schedule.Days[1:4] {
		require.Empty(t, day.Entries)
	}
}

func TestSectionScheduleUnknownSection(t *testing.T) {
	f := newFixture(t, config.Schedule{WeekDays: 5})

	_, err := f.reports.SectionSchedule("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	_, err = f.reports.SectionSchedule("not-a-uuid")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
