package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a clock time in "HH:MM" format (24-hour, zero-padded).
// It is stored as-is in the database (TIME column) and compared through its
// minutes-since-midnight value.
type TimeString string

const minutesPerDay = 24 * 60

var timeStringPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var (
	// ErrInvalidTimeFormat возвращается при строке, не соответствующей формату HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда арифметика выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of day range")
)

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromMinutes converts minutes since midnight back to "HH:MM".
// The boundary value 1440 renders as "24:00" so that exclusive interval ends
// remain representable; Validate rejects it as user input.
func FromMinutes(m int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// Validate проверяет формат HH:MM и диапазоны (часы 0-23, минуты 0-59)
func (t TimeString) Validate() error {
	if !timeStringPattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero returns true for an empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с полуночи.
// Парсинг без проверки диапазона: значения из БД считаются доверенными
func (t TimeString) Minutes() int {
	parts := strings.SplitN(string(t), ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}

// AddMinutes возвращает время через delta минут.
// Ошибка, если результат выходит за пределы суток (слоты не пересекают полночь)
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	total := t.Minutes() + delta
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d min", ErrTimeOutOfRange, t, delta)
	}
	return FromMinutes(total), nil
}

// IsBefore returns true if t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter returns true if t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

func (t TimeString) String() string {
	return string(t)
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as "HH:MM:SS"
// strings or as time.Time; both are reduced to "HH:MM".
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		*t = truncateSeconds(string(v))
		return nil
	case string:
		*t = truncateSeconds(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func truncateSeconds(s string) TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return TimeString(s)
}
