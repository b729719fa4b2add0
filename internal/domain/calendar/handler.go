package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-scheduler/internal/domain/reservations"
	"pet-care-scheduler/internal/middleware"
	"pet-care-scheduler/internal/platform/dates"
	"pet-care-scheduler/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Lister es lo que necesita el calendario: las reservas de la sesión.
type Lister interface {
	List(ctx context.Context, sessionID string) ([]reservations.Reservation, error)
}

type Handlers struct {
	list Lister
	now  func() time.Time
	loc  *time.Location
	log  logger.Logger
}

func NewHandlers(list Lister, now func() time.Time, loc *time.Location, log logger.Logger) *Handlers {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Handlers{list: list, now: now, loc: loc, log: log}
}

func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/calendar", func(cr chi.Router) {
		cr.Get("/", h.month)
		cr.Get("/days/{date}", h.day)
	})
}

// month godoc
// @Summary Grilla mensual
// @Description Devuelve 6 semanas x 7 días (lunes primero) con las reservas de cada día. Sin parámetros usa el mes actual.
// @Tags calendar
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Param year query int false "Año (ej: 2024)"
// @Param month query int false "Mes 1-12"
// @Success 200 {object} Grid
// @Failure 400 {string} string "invalid year / invalid month"
// @Failure 401 {string} string "unauthorized"
// @Router /calendar [get]
func (h *Handlers) month(w http.ResponseWriter, r *http.Request) {
	sid, ok := middleware.GetSessionID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	now := h.now().In(h.loc)
	year, month := now.Year(), now.Month()

	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get("year")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 9999 {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = n
	}
	if v := strings.TrimSpace(q.Get("month")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}
		month = time.Month(n)
	}

	items, err := h.list.List(r.Context(), sid)
	if err != nil {
		h.log.Error("list reservations failed", map[string]any{"session_id": sid, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, BuildMonth(year, month, items))
}

// day godoc
// @Summary Detalle de un día
// @Tags calendar
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Param date path string true "Fecha YYYY-MM-DD"
// @Success 200 {object} Day
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Failure 401 {string} string "unauthorized"
// @Router /calendar/days/{date} [get]
func (h *Handlers) day(w http.ResponseWriter, r *http.Request) {
	sid, ok := middleware.GetSessionID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	date := chi.URLParam(r, "date")
	if _, err := time.Parse(dates.DateLayout, date); err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	items, err := h.list.List(r.Context(), sid)
	if err != nil {
		h.log.Error("list reservations failed", map[string]any{"session_id": sid, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, BuildDay(date, items))
}

// writeJSON está duplicado en handlers de distintos módulos
// para no crear un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
