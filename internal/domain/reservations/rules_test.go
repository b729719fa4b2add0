package reservations

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedEngine(now time.Time) *Engine {
	return NewEngine(EngineConfig{
		Now:      func() time.Time { return now },
		Location: time.UTC,
	})
}

func validRequest() PlacementRequest {
	return PlacementRequest{
		PetID:    "pet-1",
		PetName:  "Milo",
		Service:  "Grooming",
		Location: "Downtown",
		Date:     "2024-06-10",
		Time:     "08:00",
		Notes:    "  nails too  ",
	}
}

func int64p(v int64) *int64 { return &v }

func TestEngine_MissingField_InFormOrder(t *testing.T) {
	e := fixedEngine(time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC))

	cases := []struct {
		name  string
		mut   func(*PlacementRequest)
		field string
		msg   string
	}{
		{"pet", func(r *PlacementRequest) { r.PetID = ""; r.Service = "" }, "petId", "Please select a pet."},
		{"service", func(r *PlacementRequest) { r.Service = "   " }, "service", "Select a service."},
		{"location", func(r *PlacementRequest) { r.Location = ""; r.Time = "" }, "location", "Select a location."},
		{"date", func(r *PlacementRequest) { r.Date = "" }, "date", "Select a date."},
		{"time", func(r *PlacementRequest) { r.Time = "" }, "time", "Select a time."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mut(&req)

			_, err := e.ValidateAndPlace(req, nil, nil)
			require.ErrorIs(t, err, ErrMissingField)

			var se *SchedulingError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.field, se.Field)
			assert.Equal(t, tc.msg, se.Message)
			assert.Equal(t, "MissingField", se.Code())
		})
	}
}

func TestEngine_InvalidDateTime(t *testing.T) {
	e := fixedEngine(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	for _, tc := range []struct{ date, clock string }{
		{"2024-02-30", "10:00"},
		{"2024/06/10", "10:00"},
		{"2024-06-10", "24:30"},
		{"2024-06-10", "ten"},
	} {
		req := validRequest()
		req.Date, req.Time = tc.date, tc.clock

		_, err := e.ValidateAndPlace(req, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidDateTime, "%s %s", tc.date, tc.clock)
	}
}

func TestEngine_LeadTime_Examples(t *testing.T) {
	req := validRequest() // 2024-06-10 08:00

	// 5h de anticipación => rechazo
	_, err := fixedEngine(time.Date(2024, 6, 10, 5, 0, 0, 0, time.UTC)).ValidateAndPlace(req, nil, nil)
	require.ErrorIs(t, err, ErrInsufficientLeadTime)
	var se *SchedulingError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Appointments must be booked at least 6 hours in advance.", se.Message)

	// 9h de anticipación => ok
	r, err := fixedEngine(time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC)).ValidateAndPlace(req, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", r.Date)
	assert.Equal(t, "08:00", r.Time)
}

func TestEngine_LeadTime_BoundaryIsInclusive(t *testing.T) {
	req := validRequest()
	target := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

	_, err := fixedEngine(target.Add(-6 * time.Hour)).ValidateAndPlace(req, nil, nil)
	assert.NoError(t, err, "exactly 6h must be accepted")

	_, err = fixedEngine(target.Add(-6*time.Hour + time.Nanosecond)).ValidateAndPlace(req, nil, nil)
	assert.ErrorIs(t, err, ErrInsufficientLeadTime)

	_, err = fixedEngine(target.Add(48 * time.Hour)).ValidateAndPlace(req, nil, nil)
	assert.ErrorIs(t, err, ErrInsufficientLeadTime, "past slots are rejected")
}

func TestEngine_LeadTime_UsesConfiguredLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	// 2024-06-10 08:00 en UTC-3 es 11:00 UTC
	now := time.Date(2024, 6, 10, 4, 30, 0, 0, time.UTC)

	e := NewEngine(EngineConfig{Now: func() time.Time { return now }, Location: loc})
	_, err := e.ValidateAndPlace(validRequest(), nil, nil)
	assert.NoError(t, err, "6h30 of lead time in UTC-3")
}

func TestEngine_SlotTaken_IgnoresLocationAndService(t *testing.T) {
	e := fixedEngine(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	existing := []Reservation{
		{ID: 1, Date: "2024-06-10", Time: "08:00", Service: "Boarding", Location: "Uptown"},
	}

	_, err := e.ValidateAndPlace(validRequest(), existing, nil)
	require.ErrorIs(t, err, ErrSlotTaken)

	req := validRequest()
	req.Time = "08:30"
	_, err = e.ValidateAndPlace(req, existing, nil)
	assert.NoError(t, err)
}

func TestEngine_SlotTaken_MatchesNormalizedClock(t *testing.T) {
	e := fixedEngine(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	existing := []Reservation{{ID: 1, Date: "2024-06-10", Time: "08:00"}}

	req := validRequest()
	req.Time = "8:00"
	_, err := e.ValidateAndPlace(req, existing, nil)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestEngine_Reschedule_OwnSlotIsNotAConflict(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created := now.Add(-time.Hour)
	e := fixedEngine(now)

	existing := []Reservation{
		{ID: 7, PetID: "pet-1", PetName: "Milo", Service: "Vet Visit", Location: "Downtown", Date: "2024-06-10", Time: "08:00", CreatedAt: &created},
		{ID: 8, Date: "2024-06-11", Time: "09:00"},
	}

	req := validRequest()
	r, err := e.ValidateAndPlace(req, existing, int64p(7))
	require.NoError(t, err)

	assert.Equal(t, int64(7), r.ID)
	assert.Equal(t, "Grooming", r.Service)
	assert.Equal(t, "nails too", r.Notes)
	require.NotNil(t, r.UpdatedAt)
	assert.Equal(t, now, *r.UpdatedAt)
	require.NotNil(t, r.CreatedAt)
	assert.Equal(t, created, *r.CreatedAt, "createdAt is kept on edit")

	// mover a un slot de otra reserva sigue siendo conflicto
	req.Date, req.Time = "2024-06-11", "09:00"
	_, err = e.ValidateAndPlace(req, existing, int64p(7))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestEngine_New_AssignsFreshIncreasingIDs(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	e := fixedEngine(now)

	// una reserva previa con el mismo id que daría el reloj
	existing := []Reservation{{ID: now.UnixMilli(), Date: "2024-07-01", Time: "10:00"}}

	r1, err := e.ValidateAndPlace(validRequest(), existing, nil)
	require.NoError(t, err)
	assert.NotEqual(t, existing[0].ID, r1.ID)
	require.NotNil(t, r1.CreatedAt)
	assert.Equal(t, now, *r1.CreatedAt)
	assert.Nil(t, r1.UpdatedAt)

	req := validRequest()
	req.Time = "11:00"
	r2, err := e.ValidateAndPlace(req, append(existing, r1), nil)
	require.NoError(t, err)
	assert.Greater(t, r2.ID, r1.ID)
}

func TestEngine_ConfigurableLeadTimeMessage(t *testing.T) {
	e := NewEngine(EngineConfig{
		Now:      func() time.Time { return time.Date(2024, 6, 10, 7, 30, 0, 0, time.UTC) },
		Location: time.UTC,
		LeadTime: time.Hour,
	})

	_, err := e.ValidateAndPlace(validRequest(), nil, nil)
	var se *SchedulingError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Appointments must be booked at least 1 hour in advance.", se.Message)
}

func TestIDSource_StrictlyIncreasing(t *testing.T) {
	var ids IDSource
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	a := ids.Next(now)
	b := ids.Next(now)
	c := ids.Next(now.Add(-time.Second))

	assert.Equal(t, now.UnixMilli(), a)
	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, c)
}
