package make_day_prime

import "time"

// Request модель запроса на перевод дня в prime
type Request struct {
	UserID  int64     // ID менеджера (для логирования)
	VenueID int64     // ID заведения
	Date    time.Time // Календарная дата
}

// Response модель ответа
type Response struct {
	VenueID          int64
	Date             time.Time
	OverridesWritten int // оверрайды на доступные по шаблону строки
	SkippedClosed    int // строки с недоступным шаблоном, оставленные без оверрайда
}
