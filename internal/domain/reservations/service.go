package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-scheduler/internal/observability/metrics"
	"pet-care-scheduler/internal/platform/dates"
	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/platform/sessionstore"
)

// PetNames resuelve el nombre de una mascota de la sesión. found=false si la
// mascota no existe; err es solo para fallas del backend.
// Se usa para evitar ciclos de imports entre módulos (reservations <-> pets).
type PetNames interface {
	NameOf(ctx context.Context, sessionID, petID string) (name string, found bool, err error)
}

// RescheduleMarker es el "estoy reprogramando la reserva X" de la sesión.
type RescheduleMarker interface {
	RescheduleID(ctx context.Context, sessionID string) (*int64, error)
	BeginReschedule(ctx context.Context, sessionID string, id int64) error
	ClearReschedule(ctx context.Context, sessionID string) error
}

type Deps struct {
	Repo    Repository
	Engine  *Engine
	Pets    PetNames         // opcional
	Marker  RescheduleMarker // opcional
	Metrics *metrics.ReservationMetrics
	Logger  logger.Logger
	Locks   *sessionstore.Locks // compartido con otros servicios de la sesión
}

type Service struct {
	repo    Repository
	engine  *Engine
	pets    PetNames
	marker  RescheduleMarker
	metrics *metrics.ReservationMetrics
	log     logger.Logger
	locks   *sessionstore.Locks
	now     func() time.Time
}

func NewService(d Deps) *Service {
	s := &Service{
		repo:    d.Repo,
		engine:  d.Engine,
		pets:    d.Pets,
		marker:  d.Marker,
		metrics: d.Metrics,
		log:     d.Logger,
		locks:   d.Locks,
	}
	if s.engine == nil {
		s.engine = NewEngine(EngineConfig{})
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.locks == nil {
		s.locks = &sessionstore.Locks{}
	}
	s.now = s.engine.now
	return s
}

// BookResult es el resultado de enviar el formulario de reserva.
type BookResult struct {
	Reservation Reservation
	Rescheduled bool
	// DueSoon: la reserva es para hoy o mañana (el cliente va a notificaciones).
	DueSoon bool
}

// Book procesa el formulario. Si la sesión tiene una reprogramación en curso
// edita esa reserva y limpia el marcador; si no, crea una nueva.
// Un marcador que apunta a una reserva que ya no existe se descarta.
func (s *Service) Book(ctx context.Context, sessionID string, in PlacementRequest) (BookResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		return BookResult{}, ErrInvalidInput
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	existing, err := s.repo.List(ctx, sessionID)
	if err != nil {
		return BookResult{}, err
	}

	var editingID *int64
	if s.marker != nil {
		id, err := s.marker.RescheduleID(ctx, sessionID)
		if err != nil {
			return BookResult{}, err
		}
		if id != nil {
			if hasID(existing, *id) {
				editingID = id
			} else {
				s.log.Warn("discarding stale reschedule marker", map[string]any{
					"session_id":     sessionID,
					"reservation_id": *id,
				})
				if err := s.marker.ClearReschedule(ctx, sessionID); err != nil {
					return BookResult{}, err
				}
			}
		}
	}

	r, err := s.place(ctx, sessionID, in, existing, editingID)
	if err != nil {
		return BookResult{}, err
	}

	// la edición ya quedó guardada; si el marcador no se borra, el próximo
	// Book vuelve a editar la misma reserva
	if editingID != nil {
		if err := s.marker.ClearReschedule(ctx, sessionID); err != nil {
			s.log.Warn("clear reschedule marker failed", map[string]any{
				"session_id":     sessionID,
				"reservation_id": *editingID,
				"error":          err,
			})
		}
	}

	return BookResult{
		Reservation: r,
		Rescheduled: editingID != nil,
		DueSoon:     s.dueSoon(r),
	}, nil
}

// Reschedule edita la reserva id directamente (sin marcador).
func (s *Service) Reschedule(ctx context.Context, sessionID string, id int64, in PlacementRequest) (Reservation, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Reservation{}, ErrInvalidInput
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	existing, err := s.repo.List(ctx, sessionID)
	if err != nil {
		return Reservation{}, err
	}
	if !hasID(existing, id) {
		return Reservation{}, ErrNotFound
	}

	return s.place(ctx, sessionID, in, existing, &id)
}

// BeginReschedule marca la reserva para que el próximo Book la edite y
// devuelve la reserva para precargar el formulario.
func (s *Service) BeginReschedule(ctx context.Context, sessionID string, id int64) (Reservation, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Reservation{}, ErrInvalidInput
	}
	if s.marker == nil {
		return Reservation{}, errors.New("reschedule marker not configured")
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	r, ok, err := s.repo.Get(ctx, sessionID, id)
	if err != nil {
		return Reservation{}, err
	}
	if !ok {
		return Reservation{}, ErrNotFound
	}
	if err := s.marker.BeginReschedule(ctx, sessionID, id); err != nil {
		return Reservation{}, err
	}
	return r, nil
}

// Cancel borra la reserva. Es idempotente: found=false si no existía.
func (s *Service) Cancel(ctx context.Context, sessionID string, id int64) (bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return false, ErrInvalidInput
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	found, err := s.repo.Remove(ctx, sessionID, id)
	if err != nil {
		return false, err
	}
	s.metrics.ObserveCancellation(found)

	if s.marker != nil {
		marked, err := s.marker.RescheduleID(ctx, sessionID)
		if err != nil {
			return found, err
		}
		if marked != nil && *marked == id {
			if err := s.marker.ClearReschedule(ctx, sessionID); err != nil {
				return found, err
			}
		}
	}

	return found, nil
}

func (s *Service) List(ctx context.Context, sessionID string) ([]Reservation, error) {
	return s.repo.List(ctx, sessionID)
}

func (s *Service) Get(ctx context.Context, sessionID string, id int64) (Reservation, error) {
	r, ok, err := s.repo.Get(ctx, sessionID, id)
	if err != nil {
		return Reservation{}, err
	}
	if !ok {
		return Reservation{}, ErrNotFound
	}
	return r, nil
}

// place valida y persiste. Debe llamarse con el lock de la sesión tomado.
func (s *Service) place(ctx context.Context, sessionID string, in PlacementRequest, existing []Reservation, editingID *int64) (Reservation, error) {
	mode := "create"
	if editingID != nil {
		mode = "reschedule"
	}

	name, err := s.petName(ctx, sessionID, in)
	if err != nil {
		return Reservation{}, err
	}
	in.PetName = name

	r, err := s.engine.ValidateAndPlace(in, existing, editingID)
	if err != nil {
		var se *SchedulingError
		if errors.As(err, &se) {
			s.metrics.ObservePlacement(se.Code(), mode)
		}
		return Reservation{}, err
	}

	if editingID != nil {
		found, err := s.repo.Replace(ctx, sessionID, *editingID, r)
		if err != nil {
			return Reservation{}, err
		}
		if !found {
			return Reservation{}, ErrNotFound
		}
	} else if err := s.repo.Add(ctx, sessionID, r); err != nil {
		return Reservation{}, err
	}

	s.metrics.ObservePlacement("ok", mode)
	s.log.Info("reservation placed", map[string]any{
		"session_id":     sessionID,
		"reservation_id": r.ID,
		"mode":           mode,
		"date":           r.Date,
		"time":           r.Time,
	})
	return r, nil
}

// petName usa el nombre del directorio de mascotas; si la mascota no está
// registrada queda el nombre enviado en el formulario.
func (s *Service) petName(ctx context.Context, sessionID string, in PlacementRequest) (string, error) {
	if s.pets == nil || strings.TrimSpace(in.PetID) == "" {
		return in.PetName, nil
	}
	name, found, err := s.pets.NameOf(ctx, sessionID, strings.TrimSpace(in.PetID))
	if err != nil {
		return "", fmt.Errorf("resolve pet name: %w", err)
	}
	if !found || strings.TrimSpace(name) == "" {
		return in.PetName, nil
	}
	return name, nil
}

func (s *Service) dueSoon(r Reservation) bool {
	d, err := dates.ParseDate(r.Date, s.engine.loc)
	if err != nil {
		return false
	}
	n := dates.DaysBetween(s.now().In(s.engine.loc), d)
	return n == 0 || n == 1
}
