package reservations

import (
	"errors"
	"fmt"
	"time"
)

// Tipos de error de validación de una reserva. Se comparan con errors.Is.
var (
	ErrMissingField         = errors.New("missing field")
	ErrInvalidDateTime      = errors.New("invalid date/time")
	ErrInsufficientLeadTime = errors.New("insufficient lead time")
	ErrSlotTaken            = errors.New("slot taken")
)

var (
	ErrNotFound     = errors.New("reservation not found")
	ErrInvalidInput = errors.New("invalid input")
)

// SchedulingError es un error de input del usuario: recuperable, se muestra
// junto al formulario.
type SchedulingError struct {
	Kind    error
	Field   string // solo para ErrMissingField
	Message string
}

func (e *SchedulingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
	return e.Kind.Error()
}

func (e *SchedulingError) Unwrap() error { return e.Kind }

// Code es el nombre estable del tipo, para clientes.
func (e *SchedulingError) Code() string {
	switch e.Kind {
	case ErrMissingField:
		return "MissingField"
	case ErrInvalidDateTime:
		return "InvalidDateTime"
	case ErrInsufficientLeadTime:
		return "InsufficientLeadTime"
	case ErrSlotTaken:
		return "SlotTaken"
	default:
		return "SchedulingError"
	}
}

var missingFieldMessages = map[string]string{
	"petId":    "Please select a pet.",
	"service":  "Select a service.",
	"location": "Select a location.",
	"date":     "Select a date.",
	"time":     "Select a time.",
}

func missingField(field string) *SchedulingError {
	msg, ok := missingFieldMessages[field]
	if !ok {
		msg = "Missing " + field + "."
	}
	return &SchedulingError{Kind: ErrMissingField, Field: field, Message: msg}
}

func invalidDateTime() *SchedulingError {
	return &SchedulingError{Kind: ErrInvalidDateTime, Message: "Selected date/time is invalid."}
}

func insufficientLeadTime(lead time.Duration) *SchedulingError {
	return &SchedulingError{
		Kind:    ErrInsufficientLeadTime,
		Message: fmt.Sprintf("Appointments must be booked at least %s in advance.", humanDuration(lead)),
	}
}

func slotTaken() *SchedulingError {
	return &SchedulingError{Kind: ErrSlotTaken, Message: "This time slot is already booked. Please choose a different time."}
}

func humanDuration(d time.Duration) string {
	switch {
	case d == time.Hour:
		return "1 hour"
	case d > 0 && d%time.Hour == 0:
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	default:
		return d.String()
	}
}
