package utils

import (
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate lê uma data no formato YYYY-MM-DD no fuso informado.
// String vazia retorna nil (sem limite).
func ParseDate(dateStr string, loc *time.Location) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	if loc == nil {
		loc = time.UTC
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseTimestamp interpreta o valor de um campo de data vindo do backend.
// Valores sem fuso são lidos em loc.
func ParseTimestamp(value any, loc *time.Location) (*time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return nil, false
		}
		t := wallClockIn(v, loc)
		return &t, true
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil, false
		}
		t := wallClockIn(*v, loc)
		return &t, true
	case []byte:
		return parseTimestampString(string(v), loc)
	case string:
		return parseTimestampString(v, loc)
	default:
		return nil, false
	}
}

// wallClockIn relê em loc os valores de colunas timestamp sem fuso, que o lib/pq
// entrega numa zona anônima de offset zero
func wallClockIn(t time.Time, loc *time.Location) time.Time {
	name, offset := t.Zone()
	if name != "" || offset != 0 {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func parseTimestampString(raw string, loc *time.Location) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return &t, true
		}
	}

	return nil, false
}
