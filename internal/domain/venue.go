package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// PartySize represents the guest-count dimension of the schedule matrix.
// The zero value is the reserved "Special Request" variant: it is excluded
// from slot generation and resolution and is handled by a manager manually.
type PartySize int

// PartySizeSpecialRequest is the reserved sentinel for custom party sizes.
const PartySizeSpecialRequest PartySize = 0

// IsSpecialRequest returns true for the reserved "Special Request" variant.
func (p PartySize) IsSpecialRequest() bool {
	return p == PartySizeSpecialRequest
}

// IsValid returns true if the value is a positive size or the sentinel.
func (p PartySize) IsValid() bool {
	return p >= 0 && p <= MaxPartySize
}

// OpenDays weekly open/closed flags, indexed by time.Weekday (0 = Sunday).
type OpenDays [DaysPerWeek]bool

// IsOpen returns true if the venue is open on the given weekday.
func (d OpenDays) IsOpen(w time.Weekday) bool {
	if w < 0 || int(w) >= DaysPerWeek {
		return false
	}
	return d[w]
}

// Venue represents a bookable venue with its pricing and scheduling settings.
// All monetary amounts are integers in minor currency units.
type Venue struct {
	ID       int64
	Name     string
	Timezone string

	// PartySizes каталог размеров компаний, по которым строится матрица слотов
	// Special Request в каталог не входит, он включается флагом AllowSpecialRequest
	PartySizes          []PartySize
	AllowSpecialRequest bool

	// Pricing
	NonPrimeFeePerHead int64     // плата с человека вне prime-слотов
	PrimeBasePrice     int64     // базовая цена prime-слота, покрывает первых PrimeBaseCovers гостей
	PrimeBaseCovers    PartySize // сколько гостей покрывает базовая цена
	PrimeExtraGuestFee int64     // доплата за каждого гостя сверх PrimeBaseCovers

	// Scheduling
	CutoffMinutes int // за сколько минут до начала слота закрывается same-day бронирование
	OpenTime      types.TimeString
	CloseTime     types.TimeString
	OpenDays      OpenDays

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location loads the venue's IANA timezone.
func (v *Venue) Location() (*time.Location, error) {
	return time.LoadLocation(v.Timezone)
}

// OffersPartySize returns true if the size is in the venue's catalog.
// The Special Request sentinel is never part of the catalog.
func (v *Venue) OffersPartySize(size PartySize) bool {
	if size.IsSpecialRequest() {
		return false
	}
	for _, s := range v.PartySizes {
		if s == size {
			return true
		}
	}
	return false
}

// Weekday returns the weekday of the given calendar date.
// Only the year/month/day components are used: a booking date is a calendar
// date, not an instant, so the weekday must not shift with the date's location.
func (v *Venue) Weekday(date time.Time) time.Weekday {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Weekday()
}
