package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want ClockTime
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"14:30", 870},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseClockRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "8:00", "24:00", "12:60", "ab:cd", "12-30", "12:300"} {
		_, err := ParseClock(in)
		require.Error(t, err, in)
	}
}

func TestFormat12(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:30", "12:30 AM"},
		{"08:00", "08:00 AM"},
		{"12:00", "12:00 PM"},
		{"14:30", "02:30 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, tc := range cases {
		ct, err := ParseClock(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, ct.Format12(), tc.in)
	}
}

func TestClockRoundTrip(t *testing.T) {
	ct, err := ParseClock("14:30")
	require.NoError(t, err)
	require.Equal(t, "02:30 PM", ct.Format12())

	back, err := ParseClock12("02:30 PM")
	require.NoError(t, err)
	require.Equal(t, "14:30", back.Format24())
}

func TestParseClock12Edges(t *testing.T) {
	midnight, err := ParseClock12("12:00 AM")
	require.NoError(t, err)
	require.Equal(t, ClockTime(0), midnight)

	noon, err := ParseClock12("12:00 PM")
	require.NoError(t, err)
	require.Equal(t, ClockTime(720), noon)

	_, err = ParseClock12("13:00 PM")
	require.Error(t, err)
	_, err = ParseClock12("02:30 XX")
	require.Error(t, err)
}

func TestClockTimeJSON(t *testing.T) {
	ct, err := ParseClock("09:05")
	require.NoError(t, err)

	data, err := json.Marshal(ct)
	require.NoError(t, err)
	require.Equal(t, `"09:05"`, string(data))

	var decoded ClockTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, ct, decoded)

	require.Error(t, json.Unmarshal([]byte(`"25:00"`), &decoded))
}
