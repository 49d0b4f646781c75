package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestCutoffPermits(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-06-10 в Нью-Йорке, 17:00 локального времени
	now := time.Date(2025, 6, 10, 17, 0, 0, 0, loc)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		cutoffMinutes int
		date          time.Time
		slotStart     string
		want          bool
	}{
		{name: "future date always permits", cutoffMinutes: 60, date: tomorrow, slotStart: "17:30", want: true},
		{name: "today slot beyond cutoff", cutoffMinutes: 60, date: today, slotStart: "18:30", want: true},
		{name: "today slot exactly at cutoff boundary", cutoffMinutes: 60, date: today, slotStart: "18:00", want: true},
		{name: "today slot inside cutoff window", cutoffMinutes: 60, date: today, slotStart: "17:30", want: false},
		{name: "today slot already started", cutoffMinutes: 60, date: today, slotStart: "16:30", want: false},
		{name: "zero cutoff permits future slot", cutoffMinutes: 0, date: today, slotStart: "17:30", want: true},
		{name: "zero cutoff vetoes past slot", cutoffMinutes: 0, date: today, slotStart: "16:30", want: false},
		{name: "cutoff window crosses midnight vetoes all", cutoffMinutes: 8 * 60, date: today, slotStart: "23:30", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CutoffPermits(loc, tt.cutoffMinutes, tt.date, types.TimeString(tt.slotStart), now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCutoffPermits_SubMinuteNow(t *testing.T) {
	// Часы заведения не обязаны показывать ровно :00 секунд:
	// cutoff-момент округляется вверх до минуты, слот на секунды
	// раньше него всё равно попадает под вето
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2025, 6, 10, 17, 0, 45, 0, loc)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// cutoff-момент 17:30:45, слот 17:30 начинается раньше него
	assert.False(t, CutoffPermits(loc, 30, today, "17:30", now))
	assert.True(t, CutoffPermits(loc, 30, today, "18:00", now))

	// округление вверх перевалило за полночь: день закрыт целиком
	lateNow := time.Date(2025, 6, 10, 23, 29, 30, 0, loc)
	assert.False(t, CutoffPermits(loc, 30, today, "23:30", lateNow))
}

func TestCutoffPermits_TimezoneBoundary(t *testing.T) {
	// В UTC уже 11 июня, в Нью-Йорке ещё вечер 10-го:
	// "сегодня" определяется таймзоной заведения
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC) // 21:00 10-го в NY
	june10 := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	june11 := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	// 10-е для заведения ещё сегодня: cutoff действует
	assert.False(t, CutoffPermits(loc, 60, june10, "21:30", now))
	assert.True(t, CutoffPermits(loc, 60, june10, "22:30", now))

	// 11-е для заведения завтра: всегда разрешено
	assert.True(t, CutoffPermits(loc, 60, june11, "00:30", now))
}
