// Package dates concentra el manejo de fechas civiles (YYYY-MM-DD) y horas
// locales (HH:MM) usadas por reservas, calendario y notificaciones.
//
// Política de zona horaria: las fechas y horas guardadas son "de pared" y se
// interpretan en la *time.Location que recibe cada función. Las diferencias en
// días se calculan sobre la fecha civil, no sobre duraciones, así que un cambio
// de horario (DST) no corre el conteo.
package dates

import (
	"errors"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrInvalid = errors.New("invalid date/time")

// Key formatea t como YYYY-MM-DD en su propia location.
func Key(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate interpreta YYYY-MM-DD como medianoche en loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, ErrInvalid
	}
	return t, nil
}

// ParseSlot combina fecha y hora en un instante de loc.
func ParseSlot(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return time.Time{}, ErrInvalid
	}
	t, err := time.ParseInLocation(DateLayout+"T"+TimeLayout, date+"T"+clock, loc)
	if err != nil {
		return time.Time{}, ErrInvalid
	}
	return t, nil
}

// AddDays suma n días civiles.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween devuelve cuántos días civiles hay de from a to (negativo si to
// es anterior). Solo importan año/mes/día de cada valor.
func DaysBetween(from, to time.Time) int {
	a := civil(from)
	b := civil(to)
	return int(b.Sub(a).Hours() / 24)
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfDay trunca t a la medianoche de su location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FirstOfMonth devuelve el día 1 del mes. month fuera de 1..12 se normaliza
// (13 => enero del año siguiente).
func FirstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn devuelve la cantidad de días del mes.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MondayIndex remapea el weekday nativo (domingo=0) a lunes=0.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
