// Package notifications deriva avisos (hoy/mañana) y etiquetas relativas a
// partir de las reservas guardadas. No guarda nada propio.
package notifications

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"pet-care-scheduler/internal/domain/reservations"
	"pet-care-scheduler/internal/platform/dates"
)

// DueSoon devuelve las reservas de hoy o mañana (fechas civiles de today),
// ordenadas por fecha y hora. El orden es estable.
func DueSoon(items []reservations.Reservation, today time.Time) []reservations.Reservation {
	todayKey := dates.Key(today)
	tomorrowKey := dates.Key(dates.AddDays(today, 1))

	out := make([]reservations.Reservation, 0)
	for _, r := range items {
		if r.Date == todayKey || r.Date == tomorrowKey {
			out = append(out, r)
		}
	}

	slices.SortStableFunc(out, func(a, b reservations.Reservation) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Time, b.Time)
	})
	return out
}

// LabelRelativeDay: "Today", "Tomorrow", "In N days" (2..6) o la fecha tal cual
// (pasado, lejano o ilegible).
func LabelRelativeDay(date string, today time.Time) string {
	d, err := time.Parse(dates.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return date
	}

	switch n := dates.DaysBetween(today, d); {
	case n == 0:
		return "Today"
	case n == 1:
		return "Tomorrow"
	case n > 1 && n < 7:
		return fmt.Sprintf("In %d days", n)
	default:
		return date
	}
}

// LabelWhen agrega " at HH:MM" a la etiqueta del día cuando hay hora.
func LabelWhen(date, clock string, today time.Time) string {
	label := LabelRelativeDay(date, today)
	if clock == "" {
		return label
	}
	return label + " at " + clock
}

// Describe arma el texto del aviso: "Grooming for Milo at Downtown."
func Describe(r reservations.Reservation) string {
	service := orDefault(r.Service, "Appointment")
	pet := orDefault(r.PetName, "pet")

	location := ""
	if r.Location != "" {
		location = " at " + r.Location
	}
	return fmt.Sprintf("%s for %s%s.", service, pet, location)
}

// Reminder es la línea del dashboard: "[Today] Milo's Grooming at 09:00".
// ok=false si la reserva no es de hoy ni de mañana.
func Reminder(r reservations.Reservation, today time.Time) (string, bool) {
	var label string
	switch r.Date {
	case dates.Key(today):
		label = "Today"
	case dates.Key(dates.AddDays(today, 1)):
		label = "Tomorrow"
	default:
		return "", false
	}
	return fmt.Sprintf("[%s] %s's %s at %s", label, r.PetName, r.Service, r.Time), true
}

// Row es una fila de la tabla de notificaciones.
type Row struct {
	Reservation reservations.Reservation `json:"reservation"`
	Pet         string                   `json:"pet"`
	Message     string                   `json:"message"`
	When        string                   `json:"when"`
}

func Rows(items []reservations.Reservation, today time.Time) []Row {
	soon := DueSoon(items, today)
	out := make([]Row, 0, len(soon))
	for _, r := range soon {
		out = append(out, Row{
			Reservation: r,
			Pet:         orDefault(r.PetName, "Pet"),
			Message:     Describe(r),
			When:        LabelWhen(r.Date, r.Time, today),
		})
	}
	return out
}

// Reminders devuelve las líneas del dashboard en el orden guardado.
func Reminders(items []reservations.Reservation, today time.Time) []string {
	out := make([]string, 0)
	for _, r := range items {
		if line, ok := Reminder(r, today); ok {
			out = append(out, line)
		}
	}
	return out
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
