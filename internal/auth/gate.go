// FilePath: internal/auth/gate.go
package auth

import (
	"context"

	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/models"
	"github.com/climatewatch/hub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// Gate turns a presented API key into an allow/deny decision against an
// explicit role allow-list. It holds no state across calls and never
// caches the key-to-role mapping, so a role revoked between requests takes
// effect on the very next one.
type Gate struct {
	users repository.UserRepository
}

func NewGate(users repository.UserRepository) *Gate {
	return &Gate{users: users}
}

// Authorize reports whether the key is entitled to an operation guarded by
// the given roles. A denied key never has its last access stamped; the
// timestamp means successful access, not mere presentation. Callers must
// distinguish the no-key-at-all case themselves before invoking the gate.
func (g *Gate) Authorize(ctx context.Context, apiKey string, allowed ...models.Role) bool {
	if apiKey == "" {
		return false
	}

	user, err := g.users.FindByApiKey(ctx, apiKey)
	if err != nil {
		if !errors.IsNotFound(err) {
			nuts.L.Errorf("[AuthGate] api key lookup failed: %v", err)
		}
		return false
	}

	role, err := models.ParseRole(user.Role)
	if err != nil {
		nuts.L.Warnf("[AuthGate] user %s carries invalid role %q", user.Email, user.Role)
		return false
	}
	if !role.In(allowed) {
		return false
	}

	// Best effort: a failed touch must not fail an otherwise valid request.
	if err := g.users.TouchLastAccess(ctx, apiKey); err != nil {
		nuts.L.Warnf("[AuthGate] failed to update last access: %v", err)
	}
	return true
}
