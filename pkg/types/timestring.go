package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format.
// Используется для хранения времени слотов без привязки к дате и таймзоне.
type TimeString string

const timeStringLayout = "15:04"

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString парсит строку формата "HH:MM" (допускается "HH:MM:SS")
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	t, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return "", fmt.Errorf("types: invalid time string %q: %w", s, err)
	}
	return NewTimeString(t), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение корректно парсится как "HH:MM"
func (t TimeString) Validate() error {
	_, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return fmt.Errorf("types: invalid time string %q: %w", string(t), err)
	}
	return nil
}

// minutes возвращает количество минут с начала суток
// Для невалидного значения возвращает 0
func (t TimeString) minutes() int {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// Minute возвращает минуты внутри часа (0-59)
func (t TimeString) Minute() int {
	return t.minutes() % 60
}

// Hour возвращает час (0-23)
func (t TimeString) Hour() int {
	return t.minutes() / 60
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes() < other.minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes() > other.minutes()
}

// AddMinutes возвращает время через m минут
// Результат ограничен границей суток: всё, что выходит за "23:59", схлопывается в "23:59"
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := t.minutes() + m
	if total < 0 {
		total = 0
	}
	if total > 23*60+59 {
		total = 23*60 + 59
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesUntil возвращает разницу other - t в минутах (может быть отрицательной)
func (t TimeString) MinutesUntil(other TimeString) int {
	return other.minutes() - t.minutes()
}

// Scan реализует sql.Scanner
// Postgres возвращает колонки TIME как time.Time либо как строку "HH:MM:SS"
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
