package reservations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pet-care-scheduler/internal/middleware"
	"pet-care-scheduler/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/reservations", func(rr chi.Router) {
		rr.Get("/", listReservationsHandler(svc, log))
		rr.Post("/", bookReservationHandler(svc, log))

		rr.Get("/{id}", getReservationHandler(svc, log))
		rr.Put("/{id}", rescheduleReservationHandler(svc, log))
		rr.Delete("/{id}", cancelReservationHandler(svc, log))

		// Marca la reserva para que el próximo POST /reservations la edite
		rr.Post("/{id}/reschedule", beginRescheduleHandler(svc, log))
	})
}

// placementRequest es el cuerpo del formulario de reserva.
type placementRequest struct {
	PetID    string `json:"petId"`
	PetName  string `json:"petName"`
	Service  string `json:"service" example:"Grooming"`
	Location string `json:"location" example:"Downtown Clinic"`
	Date     string `json:"date" example:"2024-06-10"` // YYYY-MM-DD
	Time     string `json:"time" example:"09:00"`      // HH:MM
	Notes    string `json:"notes"`
}

// bookResponse es la respuesta al enviar el formulario.
type bookResponse struct {
	Reservation Reservation `json:"reservation"`
	Rescheduled bool        `json:"rescheduled"`
	DueSoon     bool        `json:"dueSoon"`
	Message     string      `json:"message"`
	// Next es la vista sugerida: "notifications" si es hoy/mañana, si no "calendar".
	Next string `json:"next" enums:"notifications,calendar"`
}

// errorResponse es el cuerpo de un error de agenda.
type errorResponse struct {
	Error   string `json:"error" enums:"MissingField,InvalidDateTime,InsufficientLeadTime,SlotTaken"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (p placementRequest) toInput() PlacementRequest {
	return PlacementRequest{
		PetID:    p.PetID,
		PetName:  p.PetName,
		Service:  p.Service,
		Location: p.Location,
		Date:     p.Date,
		Time:     p.Time,
		Notes:    p.Notes,
	}
}

// listReservationsHandler godoc
// @Summary Listar reservas
// @Description Devuelve todas las reservas de la sesión, en orden de creación.
// @Tags reservations
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Success 200 {array} Reservation
// @Failure 401 {string} string "unauthorized"
// @Router /reservations [get]
func listReservationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), sid)
		if err != nil {
			internalError(w, log, "list reservations", sid, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// bookReservationHandler godoc
// @Summary Reservar (o confirmar reprogramación)
// @Description Valida y guarda la reserva. Si la sesión tiene una reprogramación en curso, edita esa reserva y limpia el marcador. Reglas: campos requeridos, fecha/hora válida, al menos 6 horas de anticipación, slot (fecha, hora) libre.
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Param payload body placementRequest true "Formulario de reserva"
// @Success 201 {object} bookResponse "reserva nueva"
// @Success 200 {object} bookResponse "reprogramación confirmada"
// @Failure 400 {object} errorResponse "MissingField / InvalidDateTime"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {object} errorResponse "SlotTaken"
// @Failure 422 {object} errorResponse "InsufficientLeadTime"
// @Router /reservations [post]
func bookReservationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req placementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Book(r.Context(), sid, req.toInput())
		if err != nil {
			if writeSchedulingError(w, err) {
				return
			}
			internalError(w, log, "book reservation", sid, err)
			return
		}

		out := bookResponse{
			Reservation: res.Reservation,
			Rescheduled: res.Rescheduled,
			DueSoon:     res.DueSoon,
			Message:     "Appointment booked successfully!",
			Next:        "calendar",
		}
		status := http.StatusCreated
		if res.Rescheduled {
			out.Message = "Reservation rescheduled successfully!"
			status = http.StatusOK
		}
		if res.DueSoon {
			out.Next = "notifications"
		}

		writeJSON(w, status, out)
	}
}

// getReservationHandler godoc
// @Summary Obtener reserva
// @Tags reservations
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Param id path int true "ID de la reserva"
// @Success 200 {object} Reservation
// @Failure 400 {string} string "invalid id"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "reservation not found"
// @Router /reservations/{id} [get]
func getReservationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		res, err := svc.Get(r.Context(), sid, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reservation not found", http.StatusNotFound)
				return
			}
			internalError(w, log, "get reservation", sid, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// rescheduleReservationHandler godoc
// @Summary Reprogramar reserva
// @Description Edita la reserva indicada con las mismas reglas que una reserva nueva; su propio slot no cuenta como conflicto.
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Param id path int true "ID de la reserva"
// @Param payload body placementRequest true "Formulario de reserva"
// @Success 200 {object} Reservation
// @Failure 400 {object} errorResponse "MissingField / InvalidDateTime"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "reservation not found"
// @Failure 409 {object} errorResponse "SlotTaken"
// @Failure 422 {object} errorResponse "InsufficientLeadTime"
// @Router /reservations/{id} [put]
func rescheduleReservationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req placementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Reschedule(r.Context(), sid, id, req.toInput())
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reservation not found", http.StatusNotFound)
				return
			}
			if writeSchedulingError(w, err) {
				return
			}
			internalError(w, log, "reschedule reservation", sid, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// cancelReservationHandler godoc
// @Summary Cancelar reserva
// @Description Idempotente: un id inexistente también responde 204.
// @Tags reservations
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Param id path int true "ID de la reserva"
// @Success 204 "cancelada"
// @Failure 400 {string} string "invalid id"
// @Failure 401 {string} string "unauthorized"
// @Router /reservations/{id} [delete]
func cancelReservationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if _, err := svc.Cancel(r.Context(), sid, id); err != nil {
			internalError(w, log, "cancel reservation", sid, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// beginRescheduleHandler godoc
// @Summary Iniciar reprogramación
// @Description Guarda en la sesión qué reserva se está reprogramando y la devuelve para precargar el formulario.
// @Tags reservations
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Param id path int true "ID de la reserva"
// @Success 200 {object} Reservation
// @Failure 400 {string} string "invalid id"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "reservation not found"
// @Router /reservations/{id}/reschedule [post]
func beginRescheduleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		res, err := svc.BeginReschedule(r.Context(), sid, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "reservation not found", http.StatusNotFound)
				return
			}
			internalError(w, log, "begin reschedule", sid, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "id")), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeSchedulingError escribe el error de agenda si err lo es.
func writeSchedulingError(w http.ResponseWriter, err error) bool {
	var se *SchedulingError
	if !errors.As(err, &se) {
		return false
	}

	status := http.StatusBadRequest
	switch {
	case errors.Is(err, ErrInsufficientLeadTime):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ErrSlotTaken):
		status = http.StatusConflict
	}

	writeJSON(w, status, errorResponse{Error: se.Code(), Field: se.Field, Message: se.Message})
	return true
}

func internalError(w http.ResponseWriter, log logger.Logger, op, sessionID string, err error) {
	log.Error(op+" failed", map[string]any{"session_id": sessionID, "error": err})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// writeJSON está duplicado en handlers de distintos módulos
// para no crear un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
