package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SlotRow строка сетки расписания для редактора
type SlotRow struct {
	TemplateID           int64  `json:"templateId"`
	StartTime            string `json:"startTime"`
	EndTime              string `json:"endTime"`
	PartySize            int    `json:"partySize"`
	IsAvailable          bool   `json:"isAvailable"`
	PrimeTime            bool   `json:"primeTime"`
	AvailableTables      int    `json:"availableTables"`
	PricePerHead         int64  `json:"pricePerHead"`
	MinimumSpendPerGuest int64  `json:"minimumSpendPerGuest"`
	HasOverride          bool   `json:"hasOverride"`
}

// WeekdayGridResponse сетка шаблона на день недели (без оверрайдов)
type WeekdayGridResponse struct {
	VenueID   int64     `json:"venueId"`
	DayOfWeek int       `json:"dayOfWeek"`
	Slots     []SlotRow `json:"slots"`
}

// DayGridResponse эффективная сетка на конкретную дату
// (шаблон с наложенными датными оверрайдами)
type DayGridResponse struct {
	VenueID   int64     `json:"venueId"`
	Date      string    `json:"date"`
	DayOfWeek int       `json:"dayOfWeek"`
	Slots     []SlotRow `json:"slots"`
}

// FromEffectiveSlot конвертирует domain модель в строку сетки
func FromEffectiveSlot(s domain.EffectiveSlot) SlotRow {
	return SlotRow{
		TemplateID:           s.TemplateID,
		StartTime:            string(s.StartTime),
		EndTime:              string(s.EndTime),
		PartySize:            int(s.PartySize),
		IsAvailable:          s.IsAvailable,
		PrimeTime:            s.PrimeTime,
		AvailableTables:      s.AvailableTables,
		PricePerHead:         s.PricePerHead,
		MinimumSpendPerGuest: s.MinimumSpendPerGuest,
		HasOverride:          s.HasOverride,
	}
}

// FromEffectiveSlots конвертирует список domain моделей в строки сетки
func FromEffectiveSlots(slots []domain.EffectiveSlot) []SlotRow {
	rows := make([]SlotRow, len(slots))
	for i, s := range slots {
		rows[i] = FromEffectiveSlot(s)
	}
	return rows
}

// NewWeekdayGrid собирает ответ сетки шаблона на день недели
func NewWeekdayGrid(venueID int64, day time.Weekday, slots []domain.EffectiveSlot) *WeekdayGridResponse {
	return &WeekdayGridResponse{
		VenueID:   venueID,
		DayOfWeek: int(day),
		Slots:     FromEffectiveSlots(slots),
	}
}

// NewDayGrid собирает ответ эффективной сетки на дату
func NewDayGrid(venueID int64, date time.Time, day time.Weekday, slots []domain.EffectiveSlot) *DayGridResponse {
	return &DayGridResponse{
		VenueID:   venueID,
		Date:      date.Format(domain.DateFormat),
		DayOfWeek: int(day),
		Slots:     FromEffectiveSlots(slots),
	}
}
