package venue

import "errors"

var (
	// ErrVenueNotFound возвращается, когда заведение не найдено
	ErrVenueNotFound = errors.New("venue.repository: venue not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("venue.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("venue.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("venue.repository: failed to scan row")
)
