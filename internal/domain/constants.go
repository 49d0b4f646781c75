package domain

// Slot grid constants
const (
	// SlotDurationMinutes фиксированный шаг сетки расписания
	SlotDurationMinutes = 30

	// BulkWriteChunkSize размер пачки при массовых записях шаблонов/оверрайдов
	// Записи чанкуются для пропускной способности, но всегда внутри одной транзакции
	BulkWriteChunkSize = 100
)

// Business validation constants
const (
	MinCutoffMinutes   = 0
	MaxCutoffMinutes   = 10080 // 1 week
	MaxPartySize       = 200
	MaxAvailableTables = 1000
	MaxPriceMinorUnits = 100_000_000 // защита от опечаток в ценах (в копейках/центах)
)

// Default venue values
const (
	DefaultCutoffMinutes   = 60
	DefaultAvailableTables = 1
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DaysPerWeek количество дней недели в шаблоне расписания
const DaysPerWeek = 7
