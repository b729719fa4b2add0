package reservations

import (
	"time"

	"pet-care-scheduler/internal/platform/dates"
	"pet-care-scheduler/internal/platform/validation"

	"github.com/go-playground/validator/v10"
)

// DefaultLeadTime es la anticipación mínima para reservar.
const DefaultLeadTime = 6 * time.Hour

type EngineConfig struct {
	Now      func() time.Time
	Location *time.Location // zona de las fechas/horas guardadas; default time.Local
	LeadTime time.Duration
	IDs      *IDSource
}

// Engine aplica las reglas de agenda. No hace I/O: quien llama persiste el resultado.
type Engine struct {
	now      func() time.Time
	loc      *time.Location
	leadTime time.Duration
	ids      *IDSource
	validate *validator.Validate
}

func NewEngine(cfg EngineConfig) *Engine {
	e := &Engine{
		now:      cfg.Now,
		loc:      cfg.Location,
		leadTime: cfg.LeadTime,
		ids:      cfg.IDs,
		validate: validation.New(),
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.loc == nil {
		e.loc = time.Local
	}
	if e.leadTime <= 0 {
		e.leadTime = DefaultLeadTime
	}
	if e.ids == nil {
		e.ids = &IDSource{}
	}
	return e
}

func (e *Engine) Location() *time.Location { return e.loc }

func (e *Engine) LeadTime() time.Duration { return e.leadTime }

// ValidateAndPlace valida req contra las reservas existentes y devuelve la
// reserva resultante (nueva, o la editada si editingID != nil).
//
// Orden de chequeos: campos requeridos, fecha/hora válida, anticipación
// mínima (target-now >= leadTime, el borde es válido), slot libre. El
// conflicto es solo por (fecha, hora); location y service no cuentan. La
// reserva en edición se excluye del chequeo.
func (e *Engine) ValidateAndPlace(req PlacementRequest, existing []Reservation, editingID *int64) (Reservation, error) {
	req = req.normalized()

	if err := e.validate.Struct(req); err != nil {
		field, _, ok := validation.FirstField(err)
		if !ok {
			return Reservation{}, err
		}
		return Reservation{}, missingField(field)
	}

	target, err := dates.ParseSlot(req.Date, req.Time, e.loc)
	if err != nil {
		return Reservation{}, invalidDateTime()
	}
	slot, err := canonicalSlot(req.Date, req.Time)
	if err != nil {
		return Reservation{}, invalidDateTime()
	}

	now := e.now()
	if target.Sub(now) < e.leadTime {
		return Reservation{}, insufficientLeadTime(e.leadTime)
	}

	for _, r := range existing {
		if editingID != nil && r.ID == *editingID {
			continue
		}
		if r.Date == slot.Date && r.Time == slot.Time {
			return Reservation{}, slotTaken()
		}
	}

	if editingID != nil {
		out := Reservation{ID: *editingID}
		for _, r := range existing {
			if r.ID == *editingID {
				out = r
				break
			}
		}
		out.PetID = req.PetID
		out.PetName = req.PetName
		out.Service = req.Service
		out.Location = req.Location
		out.Date = slot.Date
		out.Time = slot.Time
		out.Notes = req.Notes
		out.UpdatedAt = &now
		return out, nil
	}

	id := e.ids.Next(now)
	for hasID(existing, id) {
		id = e.ids.Next(now)
	}

	return Reservation{
		ID:        id,
		PetID:     req.PetID,
		PetName:   req.PetName,
		Service:   req.Service,
		Location:  req.Location,
		Date:      slot.Date,
		Time:      slot.Time,
		Notes:     req.Notes,
		CreatedAt: &now,
	}, nil
}

// canonicalSlot normaliza la hora a HH:MM ("9:05" => "09:05") sin pasar por
// la zona horaria, para que la comparación de slots sea por string.
func canonicalSlot(date, clock string) (Slot, error) {
	d, err := time.Parse(dates.DateLayout, date)
	if err != nil {
		return Slot{}, err
	}
	c, err := time.Parse(dates.TimeLayout, clock)
	if err != nil {
		return Slot{}, err
	}
	return Slot{Date: d.Format(dates.DateLayout), Time: c.Format(dates.TimeLayout)}, nil
}

func hasID(items []Reservation, id int64) bool {
	for _, r := range items {
		if r.ID == id {
			return true
		}
	}
	return false
}
