package update_slot

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено
	ErrVenueNotFound = errors.New("venue not found")

	// ErrSlotNotFound возвращается, когда строка шаблона с таким ключом не найдена
	ErrSlotNotFound = errors.New("schedule slot not found")

	// ErrPartySizeNotOffered возвращается, когда размер компании не входит в каталог заведения
	ErrPartySizeNotOffered = errors.New("party size is not offered by venue")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
