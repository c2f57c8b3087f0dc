// FilePath: api/middleware/api.middleware.auth.go
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/climatewatch/hub/internal/auth"
	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/models"
)

// ApiKeyHeader is the request header carrying the caller's API key.
const ApiKeyHeader = "apiKey"

// AuthMiddleware guards routes with the API-key gate.
type AuthMiddleware struct {
	gate *auth.Gate
}

func NewAuthMiddleware(gate *auth.Gate) *AuthMiddleware {
	return &AuthMiddleware{gate: gate}
}

// RequireRoles returns middleware that admits only callers whose key
// resolves to one of the allowed roles. A missing key yields 401, a
// key that fails the gate for any reason yields 403.
func (m *AuthMiddleware) RequireRoles(allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(ApiKeyHeader)
			if apiKey == "" {
				handleError(w, errors.NewAuthError("missing apiKey header", nil))
				return
			}

			if !m.gate.Authorize(r.Context(), apiKey, allowed...) {
				handleError(w, errors.NewAuthorizationError("insufficient permissions", nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func handleError(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*errors.APIError)
	if !ok {
		apiErr = errors.NewInternalError("internal server error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Code)
	json.NewEncoder(w).Encode(apiErr)
}
