// FilePath: api/resources/api.resource.users.go
package resources

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/hubservice"
	"github.com/climatewatch/hub/internal/models"
	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"
)

// UserHandlers encapsulates the user-related HTTP handlers
type UserHandlers struct {
	hubservice *hubservice.HubService
}

// CreateUserRequest is the payload for registering a new API user. The
// key and the timestamps are assigned server-side.
type CreateUserRequest struct {
	Username    string `json:"username"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// UpdateRolesRequest selects users by creation date and assigns them a
// new role.
type UpdateRolesRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Role  string    `json:"role"`
}

// PurgeViewersQuery selects VIEWER users by last access date.
type PurgeViewersQuery struct {
	Start time.Time `schema:"start"`
	End   time.Time `schema:"end"`
}

// @Summary Register a new API user
// @Description Create a user with a freshly issued API key
// @Tags users
// @Accept json
// @Produce json
// @Param user body resources.CreateUserRequest true "User details"
// @Success 201 {object} models.ApiUser
// @Failure 400 {object} errors.APIError
// @Failure 409 {object} errors.APIError
// @Router /users [post]
// @Security ApiKeyAuth
func (h *UserHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	user := &models.ApiUser{
		Username:    req.Username,
		ContactName: req.ContactName,
		Email:       req.Email,
		Role:        req.Role,
	}
	if err := h.hubservice.CreateUser(r.Context(), user); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// @Summary Delete a user
// @Description Delete a single user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.APIError
// @Router /users/{id} [delete]
// @Security ApiKeyAuth
func (h *UserHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	if err := h.hubservice.DeleteUser(r.Context(), vars["id"]); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Reassign roles by creation date
// @Description Set a new role on every user created inside the given closed date range
// @Tags users
// @Accept json
// @Produce json
// @Param range body resources.UpdateRolesRequest true "Date range and target role"
// @Success 204 "No Content"
// @Failure 400 {object} errors.APIError
// @Router /users/roles [put]
// @Security ApiKeyAuth
func (h *UserHandlers) UpdateRoles(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req UpdateRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid user role provided", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.Maintenance.UpdateRolesByDate(r.Context(), req.Start, req.End, role); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Purge inactive viewers
// @Description Delete every VIEWER user whose last access falls inside the given closed date range
// @Tags users
// @Produce json
// @Param start query string true "Range start (RFC3339)"
// @Param end query string true "Range end (RFC3339)"
// @Success 204 "No Content"
// @Failure 400 {object} errors.APIError
// @Router /users/viewers [delete]
// @Security ApiKeyAuth
func (h *UserHandlers) PurgeViewers(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var query PurgeViewersQuery
	if err := decodeQuery(r, &query); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.Maintenance.PurgeViewersByDate(r.Context(), query.Start, query.End); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
