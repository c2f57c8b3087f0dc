// FilePath: internal/maintenance/maintenance.go
package maintenance

import (
	"context"
	"time"

	"github.com/climatewatch/hub/internal/models"
	"github.com/climatewatch/hub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// Event names emitted after successful bulk operations.
const (
	EventRolesUpdated  = "users.roles_updated"
	EventViewersPurged = "users.viewers_purged"
)

// Service coordinates the bulk range operations on the user collection and
// emits events so the server can record them.
type Service struct {
	users  repository.UserRepository
	events *nuts.EventEmitter
}

// New creates a new maintenance Service
func New(users repository.UserRepository) *Service {
	return &Service{
		users:  users,
		events: nuts.NewEventEmitter(),
	}
}

// UpdateRolesByDate rewrites the role of every user created inside the
// closed interval [start, end]. An interval matching nobody is a no-op,
// not an error.
func (s *Service) UpdateRolesByDate(ctx context.Context, start, end time.Time, role models.Role) error {
	if err := models.ValidateDateRange(start, end, time.Now().UTC()); err != nil {
		return err
	}

	count, err := s.users.UpdateRoleByDate(ctx, start, end, role)
	if err != nil {
		return err
	}

	nuts.L.Infof("[Maintenance] Updated role to %s for %d users created between %v and %v",
		role, count, start, end)
	s.events.Emit(EventRolesUpdated, count)
	return nil
}

// PurgeViewersByDate deletes every VIEWER whose last access lies inside
// the closed interval [start, end]. Users holding any other role in the
// same window survive.
func (s *Service) PurgeViewersByDate(ctx context.Context, start, end time.Time) error {
	if err := models.ValidateDateRange(start, end, time.Now().UTC()); err != nil {
		return err
	}

	count, err := s.users.DeleteViewersByDate(ctx, start, end)
	if err != nil {
		return err
	}

	nuts.L.Infof("[Maintenance] Purged %d viewer users last seen between %v and %v",
		count, start, end)
	s.events.Emit(EventViewersPurged, count)
	return nil
}

// OnMaintenance registers a callback for bulk operation events
func (s *Service) OnMaintenance(event string, handler func(count int64)) {
	s.events.On(event, "maintenance_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if count, ok := args[0].(int64); ok {
				handler(count)
			}
		}
	})
}
