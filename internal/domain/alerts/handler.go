package alerts

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-health-journal/internal/domain/pets"
	"pet-health-journal/internal/insights/patterns"
	"pet-health-journal/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Get("/pets/{petID}/alerts", listAlertsHandler(svc, petsSvc))
}

// alertResponse representa una alerta con su ciclo de vida.
type alertResponse struct {
	ID            string         `json:"id"`
	PetID         string         `json:"pet_id"`
	PatternType   patterns.Type  `json:"pattern_type"`
	AlertLevel    patterns.Level `json:"alert_level"`
	Title         string         `json:"title"`
	Message       string         `json:"message"`
	Status        Status         `json:"status" enums:"active,resolved"`
	FirstDetected time.Time      `json:"first_detected"`
	LastDetected  time.Time      `json:"last_detected"`
	ResolvedAt    *time.Time     `json:"resolved_at,omitempty"`
}

// listAlertsHandler godoc
// @Summary Listar alertas
// @Description Alertas de patrones de la mascota. Se abren y resuelven al consultar /patterns del día actual.
// @Tags alerts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param status query string false "active | resolved (vacío = todas)"
// @Success 200 {array} alertResponse
// @Failure 400 {string} string "invalid status"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/alerts [get]
func listAlertsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pets.RequireOwner(w, r, petsSvc)
		if !ok {
			return
		}

		status := Status(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status"))))
		items, err := svc.ListByPet(r.Context(), p.ID, status)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid status", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]alertResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAlertResponse(a))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func toAlertResponse(a Alert) alertResponse {
	return alertResponse{
		ID:            a.ID,
		PetID:         a.PetID,
		PatternType:   a.PatternType,
		AlertLevel:    a.Level,
		Title:         a.Title,
		Message:       a.Message,
		Status:        a.Status,
		FirstDetected: a.FirstDetected,
		LastDetected:  a.LastDetected,
		ResolvedAt:    a.ResolvedAt,
	}
}
