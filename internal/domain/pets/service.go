package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/platform/sessionstore"
	"pet-care-scheduler/internal/platform/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

// CurrentPet guarda qué mascota está seleccionada en la sesión.
// Se usa para evitar ciclos de imports entre módulos (pets <-> session).
type CurrentPet interface {
	CurrentPetID(ctx context.Context, sessionID string) (*string, error)
	SetCurrentPet(ctx context.Context, sessionID, petID string) error
}

type Service struct {
	repo     Repository
	current  CurrentPet
	locks    *sessionstore.Locks
	log      logger.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, current CurrentPet, locks *sessionstore.Locks, log logger.Logger) *Service {
	if locks == nil {
		locks = &sessionstore.Locks{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		current:  current,
		locks:    locks,
		log:      log,
		validate: validation.New(),
		now:      time.Now,
	}
}

type CreateInput struct {
	Name    string   `json:"name" validate:"required,max=80"`
	Type    string   `json:"type" validate:"max=40"`
	Breed   string   `json:"breed" validate:"max=80"`
	Records []Record `json:"records" validate:"dive"`
}

// Create registra la mascota y la deja como la actual de la sesión.
func (s *Service) Create(ctx context.Context, sessionID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Pet{}, ErrInvalidInput
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	in.Breed = strings.TrimSpace(in.Breed)
	if err := s.validate.Struct(in); err != nil {
		return Pet{}, ErrInvalidInput
	}

	records := make([]Record, 0, len(in.Records))
	for _, rec := range in.Records {
		rec.Title = strings.TrimSpace(rec.Title)
		rec.Date = strings.TrimSpace(rec.Date)
		rec.File = strings.TrimSpace(rec.File)
		if rec.Type == "" {
			rec.Type = RecordOther
		}
		records = append(records, rec)
	}

	p := Pet{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Type:      Species(strings.ToLower(in.Type)),
		Breed:     in.Breed,
		Records:   records,
		CreatedAt: s.now(),
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	if err := s.repo.Create(ctx, sessionID, p); err != nil {
		return Pet{}, err
	}
	if s.current != nil {
		if err := s.current.SetCurrentPet(ctx, sessionID, p.ID); err != nil {
			return Pet{}, err
		}
	}

	s.log.Info("pet created", map[string]any{"session_id": sessionID, "pet_id": p.ID})
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, sessionID, id string) (Pet, error) {
	return s.repo.GetByID(ctx, sessionID, id)
}

func (s *Service) List(ctx context.Context, sessionID string) ([]Pet, error) {
	return s.repo.List(ctx, sessionID)
}

// Current devuelve la mascota seleccionada. Si la selección no está o apunta
// a una mascota que no existe, cae en la primera y la guarda como actual.
// ok=false si la sesión no tiene mascotas.
func (s *Service) Current(ctx context.Context, sessionID string) (Pet, bool, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	items, err := s.repo.List(ctx, sessionID)
	if err != nil {
		return Pet{}, false, err
	}
	if len(items) == 0 {
		return Pet{}, false, nil
	}

	if s.current == nil {
		return items[0], true, nil
	}

	id, err := s.current.CurrentPetID(ctx, sessionID)
	if err != nil {
		return Pet{}, false, err
	}
	if id != nil {
		for _, p := range items {
			if p.ID == *id {
				return p, true, nil
			}
		}
	}

	if err := s.current.SetCurrentPet(ctx, sessionID, items[0].ID); err != nil {
		return Pet{}, false, err
	}
	return items[0], true, nil
}

// NameOf expone el nombre de una mascota para otros módulos (reservations).
// Una mascota inexistente es found=false, no un error.
func (s *Service) NameOf(ctx context.Context, sessionID, petID string) (string, bool, error) {
	p, err := s.GetByID(ctx, sessionID, petID)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return p.Name, true, nil
}

// Exists indica si la mascota está registrada en la sesión.
func (s *Service) Exists(ctx context.Context, sessionID, petID string) (bool, error) {
	_, err := s.GetByID(ctx, sessionID, petID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
