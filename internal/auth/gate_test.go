// FilePath: internal/auth/gate_test.go
package auth

import (
	"context"
	"testing"
	"time"

	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo serves a fixed key-to-user table and records the touches
// the gate makes.
type fakeUserRepo struct {
	byKey   map[string]*models.ApiUser
	findErr error
	touched []string
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.ApiUser) (bool, error) {
	return false, errors.NewInternalError("not implemented", nil)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return errors.NewInternalError("not implemented", nil)
}

func (f *fakeUserRepo) FindByApiKey(ctx context.Context, apiKey string) (*models.ApiUser, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	user, ok := f.byKey[apiKey]
	if !ok {
		return nil, errors.NewNotFoundError("user not found", nil)
	}
	return user, nil
}

func (f *fakeUserRepo) TouchLastAccess(ctx context.Context, apiKey string) error {
	f.touched = append(f.touched, apiKey)
	return nil
}

func (f *fakeUserRepo) UpdateRoleByDate(ctx context.Context, start, end time.Time, role models.Role) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepo) DeleteViewersByDate(ctx context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}

func TestGateAuthorize(t *testing.T) {
	repo := &fakeUserRepo{byKey: map[string]*models.ApiUser{
		"admin-key":  {Email: "admin@example.com", Role: "ADMIN", ApiKey: "admin-key"},
		"viewer-key": {Email: "viewer@example.com", Role: "VIEWER", ApiKey: "viewer-key"},
		"broken-key": {Email: "broken@example.com", Role: "WIZARD", ApiKey: "broken-key"},
	}}
	gate := NewGate(repo)
	ctx := context.Background()

	t.Run("allowed role passes", func(t *testing.T) {
		assert.True(t, gate.Authorize(ctx, "admin-key", models.RoleAdmin))
	})

	t.Run("role outside allow list is denied", func(t *testing.T) {
		assert.False(t, gate.Authorize(ctx, "viewer-key", models.RoleAdmin))
	})

	t.Run("multiple allowed roles", func(t *testing.T) {
		assert.True(t, gate.Authorize(ctx, "viewer-key", models.RoleAdmin, models.RoleViewer))
	})

	t.Run("empty key is denied", func(t *testing.T) {
		assert.False(t, gate.Authorize(ctx, "", models.RoleAdmin))
	})

	t.Run("unknown key is denied", func(t *testing.T) {
		assert.False(t, gate.Authorize(ctx, "no-such-key", models.RoleAdmin))
	})

	t.Run("stored role outside the closed set is denied", func(t *testing.T) {
		assert.False(t, gate.Authorize(ctx, "broken-key", models.RoleAdmin))
	})

	t.Run("lookup failure is denied", func(t *testing.T) {
		broken := &fakeUserRepo{findErr: errors.NewDatabaseError("down", nil)}
		assert.False(t, NewGate(broken).Authorize(ctx, "admin-key", models.RoleAdmin))
	})
}

func TestGateTouchesLastAccessOnlyOnSuccess(t *testing.T) {
	repo := &fakeUserRepo{byKey: map[string]*models.ApiUser{
		"viewer-key": {Email: "viewer@example.com", Role: "VIEWER", ApiKey: "viewer-key"},
	}}
	gate := NewGate(repo)
	ctx := context.Background()

	gate.Authorize(ctx, "viewer-key", models.RoleAdmin)
	assert.Empty(t, repo.touched, "denied request must not stamp last access")

	gate.Authorize(ctx, "viewer-key", models.RoleViewer)
	assert.Equal(t, []string{"viewer-key"}, repo.touched)
}
