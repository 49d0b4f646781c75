package create_venue

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// buildTemplateMatrix строит дефолтную матрицу шаблона заведения:
// строка на каждый получасовой слот на каждый размер компании на каждый
// день недели. Слоты открытых дней доступны с дефолтами заведения,
// слоты закрытых дней создаются недоступными - шаблоны бессмертны,
// поэтому строки нужны и для закрытых дней, их потом можно открыть правкой.
// Special Request в матрицу не входит.
func buildTemplateMatrix(venue *domain.Venue, req *Request) []*domain.ScheduleTemplate {
	slotTimes := domain.SlotTimes(venue.OpenTime, venue.CloseTime)

	rows := make([]*domain.ScheduleTemplate, 0, domain.DaysPerWeek*len(slotTimes)*len(venue.PartySizes))

	for day := time.Sunday; day <= time.Saturday; day++ {
		open := venue.OpenDays.IsOpen(day)

		for _, start := range slotTimes {
			end, err := start.AddMinutes(domain.SlotDurationMinutes)
			if err != nil {
				continue
			}

			for _, size := range venue.PartySizes {
				if size.IsSpecialRequest() {
					continue
				}

				fields := domain.SlotFields{
					IsAvailable:          open,
					PrimeTime:            false,
					AvailableTables:      0,
					PricePerHead:         req.DefaultPrice,
					MinimumSpendPerGuest: req.DefaultMinSpend,
				}
				if open {
					fields.AvailableTables = req.DefaultTables
				}

				rows = append(rows, &domain.ScheduleTemplate{
					VenueID:    venue.ID,
					DayOfWeek:  day,
					StartTime:  start,
					EndTime:    end,
					PartySize:  size,
					SlotFields: fields,
				})
			}
		}
	}

	return rows
}
