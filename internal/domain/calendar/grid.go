// Package calendar arma la grilla mensual (6 semanas, lunes primero) y el
// detalle por día a partir de las reservas guardadas.
package calendar

import (
	"strings"
	"time"

	"pet-care-scheduler/internal/domain/reservations"
	"pet-care-scheduler/internal/platform/dates"
)

// Category es la clase visual de un evento.
type Category string

const (
	CategoryVeterinary Category = "veterinary"
	CategoryGrooming   Category = "grooming"
	CategoryBoarding   Category = "boarding"
)

// EventClass clasifica el servicio por substring, sin distinguir mayúsculas.
// El orden importa: vet, groom, board/daycare; el resto es veterinary.
func EventClass(service string) Category {
	s := strings.ToLower(service)
	switch {
	case strings.Contains(s, "vet"), strings.Contains(s, "veterinary"):
		return CategoryVeterinary
	case strings.Contains(s, "groom"):
		return CategoryGrooming
	case strings.Contains(s, "board"), strings.Contains(s, "daycare"):
		return CategoryBoarding
	default:
		return CategoryVeterinary
	}
}

type Event struct {
	Reservation reservations.Reservation `json:"reservation"`
	Category    Category                 `json:"category"`
	// Title: "Milo – Grooming"
	Title string `json:"title"`
}

type Cell struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Day     int     `json:"day"`
	InMonth bool    `json:"inMonth"`
	Events  []Event `json:"events"`
}

// Grid tiene siempre 6x7 celdas.
type Grid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"` // "June 2024"
	Weeks [6][7]Cell `json:"weeks"`
	Prev  MonthRef   `json:"prev"`
	Next  MonthRef   `json:"next"`
}

type MonthRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// BuildMonth arma la grilla del mes. La primera celda es el lunes en o antes
// del día 1; las celdas de meses vecinos van con InMonth=false y también
// muestran sus eventos. month fuera de 1..12 se normaliza.
func BuildMonth(year int, month time.Month, items []reservations.Reservation) Grid {
	first := dates.FirstOfMonth(year, month)
	year, month = first.Year(), first.Month()

	byDate := GroupByDate(items)
	start := dates.AddDays(first, -dates.MondayIndex(first.Weekday()))

	g := Grid{
		Year:  year,
		Month: month,
		Label: MonthLabel(year, month),
		Prev:  ShiftMonth(year, month, -1),
		Next:  ShiftMonth(year, month, 1),
	}

	for w := 0; w < 6; w++ {
		for d := 0; d < 7; d++ {
			day := dates.AddDays(start, w*7+d)
			key := dates.Key(day)
			g.Weeks[w][d] = Cell{
				Date:    key,
				Day:     day.Day(),
				InMonth: day.Month() == month,
				Events:  toEvents(byDate[key]),
			}
		}
	}
	return g
}

// GroupByDate agrupa por fecha, conservando el orden guardado. Las reservas
// sin fecha se omiten.
func GroupByDate(items []reservations.Reservation) map[string][]reservations.Reservation {
	out := make(map[string][]reservations.Reservation)
	for _, r := range items {
		if r.Date == "" {
			continue
		}
		out[r.Date] = append(out[r.Date], r)
	}
	return out
}

func toEvents(items []reservations.Reservation) []Event {
	out := make([]Event, 0, len(items))
	for _, r := range items {
		out = append(out, Event{
			Reservation: r,
			Category:    EventClass(r.Service),
			Title:       orDefault(r.PetName, "Pet") + " – " + orDefault(r.Service, "Appointment"),
		})
	}
	return out
}

// MonthLabel: "June 2024".
func MonthLabel(year int, month time.Month) string {
	return dates.FirstOfMonth(year, month).Format("January 2006")
}

// LongDate: "Monday, June 10, 2024". Fechas ilegibles se devuelven tal cual.
func LongDate(date string) string {
	d, err := time.Parse(dates.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}

// ShiftMonth mueve n meses (negativo hacia atrás).
func ShiftMonth(year int, month time.Month, n int) MonthRef {
	t := dates.FirstOfMonth(year, month+time.Month(n))
	return MonthRef{Year: t.Year(), Month: t.Month()}
}

// Day es el detalle de un día (modal del calendario).
type Day struct {
	Date   string  `json:"date"`
	Title  string  `json:"title"` // fecha larga
	Events []Event `json:"events"`
}

func BuildDay(date string, items []reservations.Reservation) Day {
	return Day{
		Date:   date,
		Title:  LongDate(date),
		Events: toEvents(GroupByDate(items)[date]),
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
