package template

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда строка шаблона не найдена
	ErrTemplateNotFound = errors.New("template.repository: template not found")

	// ErrNoAvailableSlots возвращается, когда у дня нет доступных строк шаблона
	// и границы слотов вычислить не из чего
	ErrNoAvailableSlots = errors.New("template.repository: no available template rows for day")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("template.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("template.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("template.repository: failed to scan row")
)
