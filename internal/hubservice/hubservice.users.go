// FilePath: internal/hubservice/hubservice.users.go
package hubservice

import (
	"context"

	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/models"
)

// CreateUser persists a new principal. The role string must already have
// passed models.ParseRole; the email conflict surfaces as a ConflictError
// so the transport can map it without inspecting booleans.
func (s *HubService) CreateUser(ctx context.Context, user *models.ApiUser) error {
	if _, err := models.ParseRole(user.Role); err != nil {
		return errors.NewValidationError("invalid user role provided", err)
	}
	if user.Email == "" {
		return errors.NewValidationError("email is required", nil)
	}

	created, err := s.Users.Create(ctx, user)
	if err != nil {
		return err
	}
	if !created {
		return errors.NewConflictError("a user with this email already exists", nil)
	}
	return nil
}

// DeleteUser removes a single user by its hex id.
func (s *HubService) DeleteUser(ctx context.Context, id string) error {
	oid, err := models.ParseObjectID(id)
	if err != nil {
		return err
	}
	return s.Users.Delete(ctx, oid)
}
