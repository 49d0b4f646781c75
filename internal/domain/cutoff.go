package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CutoffPermits reports whether a same-day slot is still bookable.
// For any date other than "today" in the venue's timezone it always permits.
// For today it vetoes slots starting before now + cutoffMinutes.
// A veto is not an error and must never be persisted: the resolver downgrades
// the returned view only.
func CutoffPermits(loc *time.Location, cutoffMinutes int, date time.Time, slotStart types.TimeString, now time.Time) bool {
	nowLocal := now.In(loc)

	if !isSameCalendarDay(date, nowLocal) {
		return true
	}

	earliest := nowLocal.Add(time.Duration(cutoffMinutes) * time.Minute)
	// слоты лежат на минутной сетке, а cutoff-момент нет: округляем его вверх
	// до минуты, иначе слот на секунды раньше cutoff-момента проходил бы
	if earliest.Second() > 0 || earliest.Nanosecond() > 0 {
		earliest = earliest.Truncate(time.Minute).Add(time.Minute)
	}

	if !isSameCalendarDay(nowLocal, earliest) {
		// окно cutoff перевалило за полночь, сегодня уже ничего не забронировать
		return false
	}

	return !slotStart.IsBefore(types.NewTimeString(earliest))
}

// isSameCalendarDay сравнивает календарные даты по компонентам год/месяц/день
func isSameCalendarDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
