package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pet-care-scheduler/internal/domain/reservations"
	"pet-care-scheduler/internal/middleware"
	"pet-care-scheduler/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Lister es lo que necesitan las vistas: las reservas de la sesión.
type Lister interface {
	List(ctx context.Context, sessionID string) ([]reservations.Reservation, error)
}

const (
	emptyNotifications = "No upcoming notifications for today or tomorrow."
	emptyReminders     = "Your reminders will appear here."
	noReminders        = "No reminders for today or tomorrow."
)

type notificationsResponse struct {
	Items []Row `json:"items"`
	// Empty es el texto a mostrar cuando no hay items.
	Empty string `json:"empty,omitempty"`
}

type remindersResponse struct {
	Items []string `json:"items"`
	Empty string   `json:"empty,omitempty"`
}

// Handlers agrupa las dependencias de las vistas de avisos.
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
	r.Get("/notifications", h.notifications)
	r.Get("/reminders", h.reminders)
}

func (h *Handlers) today() time.Time {
	return h.now().In(h.loc)
}

// notifications godoc
// @Summary Notificaciones de hoy y mañana
// @Tags notifications
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Success 200 {object} notificationsResponse
// @Failure 401 {string} string "unauthorized"
// @Router /notifications [get]
func (h *Handlers) notifications(w http.ResponseWriter, r *http.Request) {
	sid, ok := middleware.GetSessionID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.list.List(r.Context(), sid)
	if err != nil {
		h.log.Error("list reservations failed", map[string]any{"session_id": sid, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := notificationsResponse{Items: Rows(items, h.today())}
	if len(out.Items) == 0 {
		out.Empty = emptyNotifications
	}
	writeJSON(w, http.StatusOK, out)
}

// reminders godoc
// @Summary Recordatorios del dashboard
// @Tags notifications
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Success 200 {object} remindersResponse
// @Failure 401 {string} string "unauthorized"
// @Router /reminders [get]
func (h *Handlers) reminders(w http.ResponseWriter, r *http.Request) {
	sid, ok := middleware.GetSessionID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.list.List(r.Context(), sid)
	if err != nil {
		h.log.Error("list reservations failed", map[string]any{"session_id": sid, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := remindersResponse{Items: Reminders(items, h.today())}
	switch {
	case len(items) == 0:
		out.Empty = emptyReminders
	case len(out.Items) == 0:
		out.Empty = noReminders
	}
	writeJSON(w, http.StatusOK, out)
}

// writeJSON está duplicado en handlers de distintos módulos
// para no crear un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
