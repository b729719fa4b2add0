package reservations

import (
	"strings"
	"time"
)

// Reservation es una cita reservada para una mascota. Los tags json definen el
// formato guardado en la sesión.
type Reservation struct {
	ID int64 `json:"id"`

	PetID   string `json:"petId"`
	PetName string `json:"petName"` // denormalizado para mostrar

	Service  string `json:"service"`
	Location string `json:"location"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM (hora local)

	Notes string `json:"notes"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Slot es el par (fecha, hora) que no puede repetirse entre reservas.
type Slot struct {
	Date string
	Time string
}

func (r Reservation) Slot() Slot {
	return Slot{Date: r.Date, Time: r.Time}
}

// PlacementRequest es lo que llega del formulario de reserva.
// El orden de los campos requeridos define qué falta se reporta primero.
type PlacementRequest struct {
	PetID    string `json:"petId" validate:"required"`
	PetName  string `json:"petName"`
	Service  string `json:"service" validate:"required"`
	Location string `json:"location" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Notes    string `json:"notes"`
}

func (in PlacementRequest) normalized() PlacementRequest {
	return PlacementRequest{
		PetID:    strings.TrimSpace(in.PetID),
		PetName:  strings.TrimSpace(in.PetName),
		Service:  strings.TrimSpace(in.Service),
		Location: strings.TrimSpace(in.Location),
		Date:     strings.TrimSpace(in.Date),
		Time:     strings.TrimSpace(in.Time),
		Notes:    strings.TrimSpace(in.Notes),
	}
}
