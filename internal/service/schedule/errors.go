package schedule

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено
	ErrVenueNotFound = errors.New("venue not found")

	// ErrDayNotConfigured возвращается, когда у дня нет ни одной строки шаблона
	ErrDayNotConfigured = errors.New("day has no schedule template rows")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
