package close_day

import "time"

// Request модель запроса на закрытие дня
type Request struct {
	UserID  int64     // ID менеджера (для логирования)
	VenueID int64     // ID заведения
	Date    time.Time // Календарная дата, которую нужно закрыть
}

// Response модель ответа
type Response struct {
	VenueID          int64
	Date             time.Time
	OverridesWritten int // сколько оверрайдов записано (по одному на строку шаблона дня)
}
