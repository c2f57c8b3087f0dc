// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/climatewatch/hub/internal/cache"
	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/hubservice"
	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Users       *UserHandlers
	Readings    *ReadingHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
	Docs        func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance
func NewResources(svc *hubservice.HubService, respCache *cache.ResponseCache) *Resources {
	return &Resources{
		Users:    &UserHandlers{hubservice: svc},
		Readings: &ReadingHandlers{hubservice: svc, cache: respCache},
	}
}

// SetHealthCheck sets the health check handler
func (r *Resources) SetHealthCheck(h func(w http.ResponseWriter, r *http.Request)) {
	r.HealthCheck = h
}

// SetDocs sets the OpenAPI document handler
func (r *Resources) SetDocs(h func(w http.ResponseWriter, r *http.Request)) {
	r.Docs = h
}

// Helper functions

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(time.Time{}, func(value string) reflect.Value {
		t, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(t)
	})
	return d
}

func decodeQuery(r *http.Request, dst interface{}) error {
	return queryDecoder.Decode(dst, r.URL.Query())
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

// respondServiceError maps an error coming out of the service layer onto
// the wire. Errors the service already typed keep their status code;
// anything else becomes a 500.
func respondServiceError(w http.ResponseWriter, requestID string, err error) {
	if apiErr, ok := err.(*errors.APIError); ok {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}
	respondWithError(w, errors.NewInternalError("unexpected error", err).WithRequestID(requestID))
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
