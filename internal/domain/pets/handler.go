package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-care-scheduler/internal/middleware"
	"pet-care-scheduler/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))

		// Mascota seleccionada (cae en la primera si no hay selección válida)
		pr.Get("/current", currentPetHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
	})
}

type createPetRequest struct {
	Name    string   `json:"name"`
	Type    string   `json:"type" example:"dog"`
	Breed   string   `json:"breed"`
	Records []Record `json:"records"`
}

type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      Species   `json:"type"`
	Breed     string    `json:"breed"`
	Records   []Record  `json:"records"`
	CreatedAt time.Time `json:"createdAt"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea la mascota en la sesión y la deja como mascota actual.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), sid, CreateInput{
			Name:    req.Name,
			Type:    req.Type,
			Breed:   req.Breed,
			Records: req.Records,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("create pet failed", map[string]any{"session_id": sid, "error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), sid)
		if err != nil {
			log.Error("list pets failed", map[string]any{"session_id": sid, "error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// currentPetHandler godoc
// @Summary Mascota actual
// @Tags pets
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "no pets"
// @Router /pets/current [get]
func currentPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, found, err := svc.Current(r.Context(), sid)
		if err != nil {
			log.Error("current pet failed", map[string]any{"session_id": sid, "error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !found {
			http.Error(w, "no pets", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param X-Session-ID header string true "ID de sesión (pestaña)"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), sid, chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			log.Error("get pet failed", map[string]any{"session_id": sid, "error": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	records := p.Records
	if records == nil {
		records = []Record{}
	}
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Breed:     p.Breed,
		Records:   records,
		CreatedAt: p.CreatedAt,
	}
}

// writeJSON está duplicado en handlers de distintos módulos
// para no crear un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
