package session

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"pet-care-scheduler/internal/middleware"
	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/platform/sessionstore"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PetLookup verifica que una mascota exista en la sesión.
// Se usa para evitar ciclos de imports entre módulos (session <-> pets).
type PetLookup interface {
	Exists(ctx context.Context, sessionID, petID string) (bool, error)
}

// RegisterRoutes monta /sessions y /session. locks es el mismo que usan los
// servicios de mascotas y reservas: las escrituras de la sesión no se pisan.
func RegisterRoutes(r chi.Router, store *Store, pets PetLookup, locks *sessionstore.Locks, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	if locks == nil {
		locks = &sessionstore.Locks{}
	}

	r.Post("/sessions", createSessionHandler(log))

	r.Route("/session", func(sr chi.Router) {
		sr.Get("/", getSessionHandler(store, log))
		sr.Put("/current-pet", setCurrentPetHandler(store, pets, locks, log))
		sr.Delete("/", endSessionHandler(store, locks, log))
	})
}

type createSessionResponse struct {
	ID string `json:"id"`
}

type setCurrentPetRequest struct {
	PetID string `json:"petId"`
}

// createSessionHandler godoc
// @Summary Crear sesión
// @Description Emite un id de sesión nuevo. El cliente lo envía luego en X-Session-ID.
// @Tags session
// @Produce json
// @Success 201 {object} createSessionResponse
// @Router /sessions [post]
func createSessionHandler(log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		log.Debug("session created", map[string]any{"session_id": id})
		writeJSON(w, http.StatusCreated, createSessionResponse{ID: id})
	}
}

// getSessionHandler godoc
// @Summary Estado de la sesión
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Success 200 {object} Context
// @Failure 401 {string} string "unauthorized"
// @Router /session [get]
func getSessionHandler(store *Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := store.Load(r.Context(), sid)
		if err != nil {
			log.Error("load session failed", map[string]any{"session_id": sid, "error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, c)
	}
}

// setCurrentPetHandler godoc
// @Summary Seleccionar mascota actual
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Param payload body setCurrentPetRequest true "Mascota a seleccionar"
// @Success 200 {object} Context
// @Failure 400 {string} string "invalid json / petId required"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /session/current-pet [put]
func setCurrentPetHandler(store *Store, pets PetLookup, locks *sessionstore.Locks, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req setCurrentPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		petID := strings.TrimSpace(req.PetID)
		if petID == "" {
			http.Error(w, "petId required", http.StatusBadRequest)
			return
		}

		unlock := locks.Lock(sid)
		defer unlock()

		if pets != nil {
			exists, err := pets.Exists(r.Context(), sid, petID)
			if err != nil {
				log.Error("pet lookup failed", map[string]any{"session_id": sid, "error": err})
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if !exists {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
		}

		if err := store.SetCurrentPet(r.Context(), sid, petID); err != nil {
			log.Error("set current pet failed", map[string]any{"session_id": sid, "error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		c, err := store.Load(r.Context(), sid)
		if err != nil {
			log.Error("load session failed", map[string]any{"session_id": sid, "error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, c)
	}
}

// endSessionHandler godoc
// @Summary Terminar sesión
// @Description Borra mascotas, reservas y selección de la sesión.
// @Tags session
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Success 204 "borrada"
// @Failure 401 {string} string "unauthorized"
// @Router /session [delete]
func endSessionHandler(store *Store, locks *sessionstore.Locks, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// espera a que termine cualquier escritura en curso de la sesión
		unlock := locks.Lock(sid)
		err := store.End(r.Context(), sid)
		unlock()
		if err != nil {
			log.Error("end session failed", map[string]any{"session_id": sid, "error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Info("session ended", map[string]any{"session_id": sid})
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON está duplicado en handlers de distintos módulos
// para no crear un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
