package make_day_prime

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено
	ErrVenueNotFound = errors.New("venue not found")

	// ErrDayNotConfigured возвращается, когда у дня нет ни одной строки шаблона
	ErrDayNotConfigured = errors.New("day has no schedule template rows")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
