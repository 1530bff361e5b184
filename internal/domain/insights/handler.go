package insights

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-health-journal/internal/domain/pets"
	"pet-health-journal/internal/middleware"
	"pet-health-journal/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Get("/pets/{petID}/consistency", consistencyHandler(svc, petsSvc))
	r.Get("/pets/{petID}/patterns", patternsHandler(svc, petsSvc))
	r.Post("/emergency/detect", detectEmergencyHandler(svc))
}

type detectEmergencyRequest struct {
	Text string `json:"text"`
}

// consistencyHandler godoc
// @Summary Score de consistencia
// @Description Compara el día más reciente de la ventana (7 días) contra la moda de cada campo. Con menos de 5 días registrados score es null y reason = insufficient_history.
// @Tags insights
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param date query string false "Fin de la ventana (YYYY-MM-DD). Por defecto hoy"
// @Success 200 {object} ConsistencyReport
// @Failure 400 {string} string "fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/consistency [get]
func consistencyHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pets.RequireOwner(w, r, petsSvc)
		if !ok {
			return
		}

		rep, err := svc.Consistency(r.Context(), p.ID, r.URL.Query().Get("date"))
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, rep)
	}
}

// patternsHandler godoc
// @Summary Patrones detectados
// @Description Reglas de un día sobre el check-in más reciente y reglas de tendencia (solo con densidad >= umbral). Consultar el día actual abre/resuelve alertas.
// @Tags insights
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param date query string false "Fin de la ventana (YYYY-MM-DD). Por defecto hoy"
// @Success 200 {object} PatternsReport
// @Failure 400 {string} string "fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/patterns [get]
func patternsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pets.RequireOwner(w, r, petsSvc)
		if !ok {
			return
		}

		rep, err := svc.Patterns(r.Context(), p.ID, r.URL.Query().Get("date"))
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, rep)
	}
}

// detectEmergencyHandler godoc
// @Summary Detectar lenguaje de emergencia
// @Description Analiza texto libre de forma local (sin red). No persiste nada.
// @Tags insights
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body detectEmergencyRequest true "Texto a analizar"
// @Success 200 {object} emergency.Result
// @Failure 400 {string} string "invalid json / text too long"
// @Failure 401 {string} string "unauthorized"
// @Router /emergency/detect [post]
func detectEmergencyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req detectEmergencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.DetectEmergency(req.Text)
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, res)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrTextTooLong):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
