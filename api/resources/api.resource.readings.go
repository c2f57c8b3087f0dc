// FilePath: api/resources/api.resource.readings.go
package resources

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/climatewatch/hub/internal/cache"
	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/hubservice"
	"github.com/climatewatch/hub/internal/models"
	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReadingHandlers encapsulates the weather-reading HTTP handlers
type ReadingHandlers struct {
	hubservice *hubservice.HubService
	cache      *cache.ResponseCache
}

// PatchPrecipitationRequest carries a corrected precipitation value.
type PatchPrecipitationRequest struct {
	Precipitation float64 `json:"precipitation_mm_h"`
}

// PointQuery selects a single reading by device and approximate time.
type PointQuery struct {
	Sensor string    `schema:"sensor"`
	Time   time.Time `schema:"time"`
}

// DateRangeQuery is a closed [start, end] interval in query form.
type DateRangeQuery struct {
	Start time.Time `schema:"start"`
	End   time.Time `schema:"end"`
}

// SensorQuery names a single weather station.
type SensorQuery struct {
	Sensor string `schema:"sensor"`
}

// @Summary Record a reading
// @Description Store a single weather observation; the capture time is stamped by the server
// @Tags readings
// @Accept json
// @Produce json
// @Param reading body models.Reading true "Observation"
// @Success 201 {object} models.Reading
// @Failure 400 {object} errors.APIError
// @Router /readings [post]
// @Security ApiKeyAuth
func (h *ReadingHandlers) CreateReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var reading models.Reading
	if err := json.NewDecoder(r.Body).Decode(&reading); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	reading.ID = primitive.NilObjectID

	if err := h.hubservice.InsertReading(r.Context(), &reading); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, reading)
}

// @Summary Record a batch of readings
// @Description Store several observations at once under a single server-side timestamp
// @Tags readings
// @Accept json
// @Produce json
// @Param readings body []models.Reading true "Observations"
// @Success 201 {array} models.Reading
// @Failure 400 {object} errors.APIError
// @Router /readings/batch [post]
// @Security ApiKeyAuth
func (h *ReadingHandlers) CreateReadingBatch(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var readings []*models.Reading
	if err := json.NewDecoder(r.Body).Decode(&readings); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	for _, reading := range readings {
		if reading == nil {
			respondWithError(w, errors.NewValidationError("readings cannot contain null entries", nil).WithRequestID(requestID))
			return
		}
		reading.ID = primitive.NilObjectID
	}

	if err := h.hubservice.InsertManyReadings(r.Context(), readings); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, readings)
}

// @Summary Correct a precipitation value
// @Description Overwrite the precipitation of one stored reading
// @Tags readings
// @Accept json
// @Produce json
// @Param id path string true "Reading ID"
// @Param value body resources.PatchPrecipitationRequest true "Corrected value"
// @Success 204 "No Content"
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /readings/{id}/precipitation [patch]
// @Security ApiKeyAuth
func (h *ReadingHandlers) PatchPrecipitation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	var req PatchPrecipitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.PatchPrecipitation(r.Context(), vars["id"], req.Precipitation); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Look up a reading near a point in time
// @Description Return the reading of a station closest to the given time, within a five minute tolerance
// @Tags readings
// @Produce json
// @Param sensor query string true "Station name"
// @Param time query string true "Point in time (RFC3339)"
// @Success 200 {object} models.Reading
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /readings [get]
// @Security ApiKeyAuth
func (h *ReadingHandlers) GetReadingAt(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var query PointQuery
	if err := decodeQuery(r, &query); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	reading, err := h.hubservice.ReadingAt(r.Context(), query.Time, query.Sensor)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reading)
}

// @Summary Hottest reading per station
// @Description Return each station's maximum temperature inside the given closed date range
// @Tags readings
// @Produce json
// @Param start query string true "Range start (RFC3339)"
// @Param end query string true "Range end (RFC3339)"
// @Success 200 {array} models.MaxTemperature
// @Failure 400 {object} errors.APIError
// @Router /readings/max-temperature [get]
// @Security ApiKeyAuth
func (h *ReadingHandlers) GetMaxTemperature(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var query DateRangeQuery
	if err := decodeQuery(r, &query); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	rows, err := h.hubservice.MaxTemperatureByStation(r.Context(), query.Start, query.End)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, rows)
}

// @Summary Wettest recent reading of a station
// @Description Return a station's maximum precipitation over the trailing five months
// @Tags readings
// @Produce json
// @Param sensor query string true "Station name"
// @Success 200 {object} models.MaxPrecipitation
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /readings/max-precipitation [get]
// @Security ApiKeyAuth
func (h *ReadingHandlers) GetMaxPrecipitation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var query SensorQuery
	if err := decodeQuery(r, &query); err != nil || query.Sensor == "" {
		respondWithError(w, errors.NewValidationError("sensor query parameter is required", err).WithRequestID(requestID))
		return
	}

	cacheKey := cache.Key("max-precipitation", query.Sensor)
	if payload, ok := h.cache.Get(r.Context(), cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
		return
	}

	row, err := h.hubservice.MaxPrecipitationRecent(r.Context(), query.Sensor)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	payload, err := json.Marshal(row)
	if err != nil {
		respondWithError(w, errors.NewInternalError("failed to encode response", err).WithRequestID(requestID))
		return
	}
	h.cache.Set(r.Context(), cacheKey, payload)

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}
