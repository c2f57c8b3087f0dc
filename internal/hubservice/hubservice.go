// FilePath: internal/hubservice/hubservice.go
package hubservice

import (
	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/maintenance"
	"github.com/climatewatch/hub/internal/repository"
)

// HubService contains all repositories and service-wide dependencies
type HubService struct {
	Users       repository.UserRepository
	Readings    repository.ReadingRepository
	Maintenance *maintenance.Service
}

// New creates a new HubService instance
func New(users repository.UserRepository, readings repository.ReadingRepository) *HubService {
	svc := &HubService{
		Users:    users,
		Readings: readings,
	}
	svc.Maintenance = maintenance.New(users)
	return svc
}

// Validate checks if all required repositories are initialized
func (s *HubService) Validate() error {
	if s.Users == nil {
		return ErrMissingRepository("users")
	}
	if s.Readings == nil {
		return ErrMissingRepository("readings")
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}
