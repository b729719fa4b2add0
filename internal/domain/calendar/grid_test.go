package calendar

import (
	"testing"
	"time"

	"pet-care-scheduler/internal/domain/reservations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventClass(t *testing.T) {
	cases := map[string]Category{
		"Annual Vet Checkup":   CategoryVeterinary,
		"Nail Grooming":        CategoryGrooming,
		"Overnight Boarding":   CategoryBoarding,
		"Doggy Daycare":        CategoryBoarding,
		"VETERINARY":           CategoryVeterinary,
		"Vet + Grooming combo": CategoryVeterinary,
		"Walk":                 CategoryVeterinary,
		"":                     CategoryVeterinary,
	}
	for service, want := range cases {
		assert.Equal(t, want, EventClass(service), service)
	}
}

func TestBuildMonth_June2024(t *testing.T) {
	items := []reservations.Reservation{
		{ID: 1, PetName: "Milo", Service: "Grooming", Date: "2024-06-10", Time: "09:00"},
		{ID: 2, PetName: "Luna", Service: "Vet Visit", Date: "2024-06-10", Time: "11:00"},
		{ID: 3, Service: "Boarding", Date: "2024-07-01", Time: "08:00"},
		{ID: 4, Service: "Boarding", Date: "2024-08-01", Time: "08:00"},
	}

	g := BuildMonth(2024, time.June, items)

	// 2024-06-01 es sábado => arranca el lunes 27 de mayo
	assert.Equal(t, "2024-05-27", g.Weeks[0][0].Date)
	assert.False(t, g.Weeks[0][0].InMonth)
	assert.Equal(t, "2024-06-01", g.Weeks[0][5].Date)
	assert.True(t, g.Weeks[0][5].InMonth)
	assert.Equal(t, "2024-07-07", g.Weeks[5][6].Date)
	assert.Equal(t, "June 2024", g.Label)

	inMonth := 0
	total := 0
	for _, week := range g.Weeks {
		for _, c := range week {
			total++
			if c.InMonth {
				inMonth++
			}
		}
	}
	assert.Equal(t, 42, total)
	assert.Equal(t, 30, inMonth)

	// 10 de junio: semana 2, lunes
	c := g.Weeks[2][0]
	require.Equal(t, "2024-06-10", c.Date)
	require.Len(t, c.Events, 2)
	assert.Equal(t, CategoryGrooming, c.Events[0].Category)
	assert.Equal(t, "Milo – Grooming", c.Events[0].Title)
	assert.Equal(t, CategoryVeterinary, c.Events[1].Category)

	// 1 de julio se ve en la grilla de junio, fuera de mes
	jul := g.Weeks[5][0]
	require.Equal(t, "2024-07-01", jul.Date)
	assert.False(t, jul.InMonth)
	require.Len(t, jul.Events, 1)
	assert.Equal(t, "Pet – Boarding", jul.Events[0].Title)
}

func TestBuildMonth_MondayStartAndNavigation(t *testing.T) {
	// 2024-07-01 es lunes: no hay celdas previas
	g := BuildMonth(2024, time.July, nil)
	assert.Equal(t, "2024-07-01", g.Weeks[0][0].Date)
	assert.True(t, g.Weeks[0][0].InMonth)
	assert.NotNil(t, g.Weeks[0][0].Events)

	assert.Equal(t, MonthRef{Year: 2024, Month: time.June}, g.Prev)
	assert.Equal(t, MonthRef{Year: 2024, Month: time.August}, g.Next)

	jan := BuildMonth(2025, time.January, nil)
	assert.Equal(t, MonthRef{Year: 2024, Month: time.December}, jan.Prev)

	// 2026-02-01 es domingo => 6 celdas del mes anterior
	feb := BuildMonth(2026, time.February, nil)
	assert.Equal(t, "2026-01-26", feb.Weeks[0][0].Date)
	assert.Equal(t, "2026-02-01", feb.Weeks[0][6].Date)
}

func TestBuildMonth_NormalizesMonth(t *testing.T) {
	g := BuildMonth(2024, 13, nil)
	assert.Equal(t, 2025, g.Year)
	assert.Equal(t, time.January, g.Month)
}

func TestGroupByDate_SkipsEmptyDates(t *testing.T) {
	got := GroupByDate([]reservations.Reservation{
		{ID: 1, Date: "2024-06-10"},
		{ID: 2},
		{ID: 3, Date: "2024-06-10"},
	})
	require.Len(t, got, 1)
	assert.Len(t, got["2024-06-10"], 2)
}

func TestLongDateAndDay(t *testing.T) {
	assert.Equal(t, "Monday, June 10, 2024", LongDate("2024-06-10"))
	assert.Equal(t, "bad", LongDate("bad"))

	d := BuildDay("2024-06-10", []reservations.Reservation{
		{ID: 1, Date: "2024-06-10", Service: "Grooming"},
		{ID: 2, Date: "2024-06-11"},
	})
	assert.Equal(t, "Monday, June 10, 2024", d.Title)
	require.Len(t, d.Events, 1)
	assert.Equal(t, int64(1), d.Events[0].Reservation.ID)
}
