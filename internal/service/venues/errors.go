package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено
	ErrVenueNotFound = errors.New("venue not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
