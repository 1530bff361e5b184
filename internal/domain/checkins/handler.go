package checkins

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-health-journal/internal/domain/pets"
	"pet-health-journal/internal/insights/observation"
	"pet-health-journal/internal/insights/summary"
	"pet-health-journal/internal/middleware"
	"pet-health-journal/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/checkins", func(cr chi.Router) {
		cr.Post("/", createCheckInHandler(svc, petsSvc))
		cr.Get("/", listCheckInsHandler(svc, petsSvc))
		cr.Get("/{date}", getCheckInHandler(svc, petsSvc))
		cr.Get("/{date}/summary", daySummaryHandler(svc, petsSvc))
	})
}

// createCheckInRequest es el check-in diario. check_in_date vacío = hoy.
type createCheckInRequest struct {
	CheckInDate        string                   `json:"check_in_date"` // YYYY-MM-DD
	Appetite           observation.Appetite     `json:"appetite" enums:"normal,less,barely,refusing,more"`
	WaterIntake        observation.WaterIntake  `json:"water_intake" enums:"normal,less,more,much_less,excessive"`
	EnergyLevel        observation.EnergyLevel  `json:"energy_level" enums:"normal,low,lethargic,barely_moving,hyperactive"`
	StoolQuality       observation.StoolQuality `json:"stool_quality" enums:"normal,constipated,not_noticed,soft,diarrhea,blood"`
	Vomiting           observation.Vomiting     `json:"vomiting" enums:"none,once,multiple,dry_heaving"`
	Mobility           observation.Mobility     `json:"mobility" enums:"normal,stiff,limping,reluctant,difficulty_rising"`
	Mood               observation.Mood         `json:"mood" enums:"normal,quiet,clingy,anxious,hiding,aggressive"`
	AdditionalSymptoms []string                 `json:"additional_symptoms"`
	FreeText           string                   `json:"free_text"`
}

// checkInResponse representa un check-in devuelto por la API.
type checkInResponse struct {
	ID                 string                   `json:"id"`
	PetID              string                   `json:"pet_id"`
	CheckInDate        string                   `json:"check_in_date"`
	Appetite           observation.Appetite     `json:"appetite"`
	WaterIntake        observation.WaterIntake  `json:"water_intake"`
	EnergyLevel        observation.EnergyLevel  `json:"energy_level"`
	StoolQuality       observation.StoolQuality `json:"stool_quality"`
	Vomiting           observation.Vomiting     `json:"vomiting"`
	Mobility           observation.Mobility     `json:"mobility"`
	Mood               observation.Mood         `json:"mood"`
	AdditionalSymptoms []string                 `json:"additional_symptoms"`
	FreeText           string                   `json:"free_text,omitempty"`
	EmergencyFlagged   bool                     `json:"emergency_flagged"`
	RecordedBy         string                   `json:"recorded_by"`
	CreatedAt          time.Time                `json:"created_at"`
}

// createCheckInResponse agrega el resumen del día al check-in creado.
type createCheckInResponse struct {
	CheckIn checkInResponse    `json:"check_in"`
	Summary summary.DaySummary `json:"summary"`
}

// createCheckInHandler godoc
// @Summary Registrar check-in diario
// @Description Registra las 7 métricas del día y texto libre opcional. El texto se analiza localmente en busca de lenguaje de emergencia (emergency_flagged). Un solo check-in por perro y fecha.
// @Tags checkins
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param payload body createCheckInRequest true "Check-in del día"
// @Success 201 {object} createCheckInResponse
// @Failure 400 {string} string "invalid json / valores fuera de enum / fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Failure 409 {string} string "check-in already exists for this date"
// @Router /pets/{petID}/checkins [post]
func createCheckInHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pets.RequireOwner(w, r, petsSvc)
		if !ok {
			return
		}
		userID, _ := middleware.UserID(r.Context())

		var req createCheckInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Create(r.Context(), p.ID, userID, CreateInput{
			Date:               req.CheckInDate,
			Appetite:           req.Appetite,
			WaterIntake:        req.WaterIntake,
			EnergyLevel:        req.EnergyLevel,
			StoolQuality:       req.StoolQuality,
			Vomiting:           req.Vomiting,
			Mobility:           req.Mobility,
			Mood:               req.Mood,
			AdditionalSymptoms: req.AdditionalSymptoms,
			FreeText:           req.FreeText,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, createCheckInResponse{
			CheckIn: toCheckInResponse(res.CheckIn),
			Summary: summary.Summarize(res.CheckIn.Observation),
		})
	}
}

// listCheckInsHandler godoc
// @Summary Listar check-ins
// @Description Lista check-ins del perro, más reciente primero.
// @Tags checkins
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Param limit query int false "Máximo a devolver (1-366). Por defecto 30"
// @Success 200 {array} checkInResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/checkins [get]
func listCheckInsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pets.RequireOwner(w, r, petsSvc)
		if !ok {
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), p.ID, filter)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]checkInResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCheckInResponse(c))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getCheckInHandler godoc
// @Summary Ver check-in de una fecha
// @Tags checkins
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param date path string true "Fecha YYYY-MM-DD"
// @Success 200 {object} checkInResponse
// @Failure 400 {string} string "fecha inválida"
// @Failure 404 {string} string "check-in not found"
// @Router /pets/{petID}/checkins/{date} [get]
func getCheckInHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pets.RequireOwner(w, r, petsSvc)
		if !ok {
			return
		}

		c, err := svc.GetByDate(r.Context(), p.ID, chi.URLParam(r, "date"))
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toCheckInResponse(c))
	}
}

// daySummaryHandler godoc
// @Summary Resumen del día
// @Description Clasifica las 7 métricas del día en all_normal, minor_notes, attention_needed o vet_recommended.
// @Tags checkins
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Param date path string true "Fecha YYYY-MM-DD"
// @Success 200 {object} summary.DaySummary
// @Failure 400 {string} string "fecha inválida"
// @Failure 404 {string} string "check-in not found"
// @Router /pets/{petID}/checkins/{date}/summary [get]
func daySummaryHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := pets.RequireOwner(w, r, petsSvc)
		if !ok {
			return
		}

		c, err := svc.GetByDate(r.Context(), p.ID, chi.URLParam(r, "date"))
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, summary.Summarize(c.Observation))
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := 30
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxListLimit {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		if _, err := time.Parse(DateLayout, v); err != nil {
			return ListFilter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = v
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		if _, err := time.Parse(DateLayout, v); err != nil {
			return ListFilter{}, errors.New("to must be YYYY-MM-DD")
		}
		filter.To = v
	}

	return filter, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrFreeTextTooLong):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "check-in not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toCheckInResponse(c CheckIn) checkInResponse {
	o := c.Observation
	symptoms := o.AdditionalSymptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return checkInResponse{
		ID:                 c.ID,
		PetID:              c.PetID,
		CheckInDate:        o.CheckInDate,
		Appetite:           o.Appetite,
		WaterIntake:        o.WaterIntake,
		EnergyLevel:        o.EnergyLevel,
		StoolQuality:       o.StoolQuality,
		Vomiting:           o.Vomiting,
		Mobility:           o.Mobility,
		Mood:               o.Mood,
		AdditionalSymptoms: symptoms,
		FreeText:           o.FreeText,
		EmergencyFlagged:   o.EmergencyFlagged,
		RecordedBy:         c.RecordedBy,
		CreatedAt:          c.CreatedAt,
	}
}
