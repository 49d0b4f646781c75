package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain HH:MM", input: "09:30", want: "09:30"},
		{name: "with seconds", input: "09:30:00", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "within hour", start: "09:00", minutes: 30, want: "09:30"},
		{name: "crosses hour", start: "09:45", minutes: 30, want: "10:15"},
		{name: "clamped at end of day", start: "23:45", minutes: 30, want: "23:59"},
		{name: "negative clamped at midnight", start: "00:10", minutes: -30, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid value", func(t *testing.T) {
		_, err := TimeString("nope").AddMinutes(30)
		assert.Error(t, err)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.Equal(t, 90, TimeString("09:00").MinutesUntil("10:30"))
	assert.Equal(t, -30, TimeString("10:00").MinutesUntil("09:30"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan("12:00:00"))
	assert.Equal(t, TimeString("12:00"), ts)

	require.NoError(t, ts.Scan([]byte("07:15:00")))
	assert.Equal(t, TimeString("07:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)

	_, err = TimeString("9:3").Value()
	assert.Error(t, err)
}
