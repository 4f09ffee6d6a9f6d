package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// DateFormat формат календарной даты во внешних контрактах и БД
const DateFormat = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ErrInvalidDate возвращается при строке, не являющейся корректной календарной датой
var ErrInvalidDate = errors.New("types: invalid date, expected YYYY-MM-DD")

// ParseDate парсит строку "YYYY-MM-DD" в дату (UTC, без времени).
// Дата считается корректной только если она соответствует шаблону И
// совпадает сама с собой после обратного форматирования — это отсекает
// значения вида "2024-02-30", которые календарь молча нормализует
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	d, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if d.Format(DateFormat) != s {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate форматирует дату обратно в "YYYY-MM-DD"
func FormatDate(d time.Time) string {
	return d.Format(DateFormat)
}

// Weekday returns the day of week with the Monday=0 convention used across
// the availability tables (Sunday maps to 6).
func Weekday(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// DateRange возвращает все даты от from до to включительно, по одному дню.
// Пустой слайс, если to раньше from. Ограничение размера диапазона — на
// стороне вызывающих, принимающих внешние параметры
func DateRange(from, to time.Time) []time.Time {
	from = truncateToDay(from)
	to = truncateToDay(to)

	dates := make([]time.Time, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func truncateToDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
