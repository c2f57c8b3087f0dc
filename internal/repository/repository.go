// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"time"

	"github.com/climatewatch/hub/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for ApiUser data operations
type UserRepository interface {
	// Create persists a new user. It returns false without mutating
	// anything when the email is already taken; on success the user has a
	// freshly generated ApiKey and Created == LastAccess == now.
	Create(ctx context.Context, user *models.ApiUser) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByApiKey(ctx context.Context, apiKey string) (*models.ApiUser, error)
	// TouchLastAccess stamps LastAccess = now for the key's user. A missing
	// key is a silent no-op; this is a side effect of the gate, not a
	// client-facing operation.
	TouchLastAccess(ctx context.Context, apiKey string) error
	// UpdateRoleByDate sets the role on every user created in the closed
	// interval [start, end]. Matching nobody is not an error.
	UpdateRoleByDate(ctx context.Context, start, end time.Time, role models.Role) (int64, error)
	// DeleteViewersByDate removes VIEWER users whose last access lies in
	// the closed interval [start, end]. Other roles in the window survive.
	DeleteViewersByDate(ctx context.Context, start, end time.Time) (int64, error)
}

// ReadingRepository defines the interface for weather observation storage
type ReadingRepository interface {
	Insert(ctx context.Context, reading *models.Reading) error
	InsertMany(ctx context.Context, readings []*models.Reading) error
	UpdatePrecipitation(ctx context.Context, id primitive.ObjectID, value float64) error
	// FindNear returns one reading for the device within ±window of t,
	// preferring the earliest in the window.
	FindNear(ctx context.Context, t time.Time, device string, window time.Duration) (*models.Reading, error)
	MaxTemperatureByStation(ctx context.Context, start, end time.Time) ([]models.MaxTemperature, error)
	MaxPrecipitationSince(ctx context.Context, device string, since, until time.Time) (*models.MaxPrecipitation, error)
}
