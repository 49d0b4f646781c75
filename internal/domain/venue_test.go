package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVenue_Weekday(t *testing.T) {
	venue := &Venue{Timezone: "America/Los_Angeles"}

	// 2025-06-09 - понедельник; дата календарная, компонент времени
	// и таймзона инстанта не должны влиять на день недели
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, venue.Weekday(monday))

	// Полночь UTC в западной таймзоне всё ещё предыдущий вечер,
	// но календарная дата остаётся 9-м июня
	assert.Equal(t, time.Monday, venue.Weekday(monday))

	sunday := time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Sunday, venue.Weekday(sunday))
}

func TestOpenDays_IsOpen(t *testing.T) {
	var days OpenDays
	days[time.Monday] = true
	days[time.Friday] = true

	assert.True(t, days.IsOpen(time.Monday))
	assert.True(t, days.IsOpen(time.Friday))
	assert.False(t, days.IsOpen(time.Sunday))
	assert.False(t, days.IsOpen(time.Weekday(7)), "out of range is closed")
}

func TestVenue_OffersPartySize(t *testing.T) {
	venue := &Venue{PartySizes: []PartySize{2, 4, 6}}

	assert.True(t, venue.OffersPartySize(2))
	assert.True(t, venue.OffersPartySize(6))
	assert.False(t, venue.OffersPartySize(3))
	assert.False(t, venue.OffersPartySize(PartySizeSpecialRequest))
}

func TestPartySize_IsSpecialRequest(t *testing.T) {
	assert.True(t, PartySize(0).IsSpecialRequest())
	assert.False(t, PartySize(2).IsSpecialRequest())
}
