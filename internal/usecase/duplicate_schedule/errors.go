package duplicate_schedule

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено
	ErrVenueNotFound = errors.New("venue not found")

	// ErrSourceDayClosed возвращается, когда исходный день закрыт по расписанию заведения
	ErrSourceDayClosed = errors.New("source day is closed")

	// ErrDayNotConfigured возвращается, когда у исходного дня нет ни одной строки шаблона
	ErrDayNotConfigured = errors.New("day has no schedule template rows")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
