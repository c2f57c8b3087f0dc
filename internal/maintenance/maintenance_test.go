// FilePath: internal/maintenance/maintenance_test.go
package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingUserRepo struct {
	roleCalls  int
	purgeCalls int
}

func (r *recordingUserRepo) Create(ctx context.Context, user *models.ApiUser) (bool, error) {
	return false, nil
}

func (r *recordingUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (r *recordingUserRepo) FindByApiKey(ctx context.Context, apiKey string) (*models.ApiUser, error) {
	return nil, errors.NewNotFoundError("user not found", nil)
}

func (r *recordingUserRepo) TouchLastAccess(ctx context.Context, apiKey string) error {
	return nil
}

func (r *recordingUserRepo) UpdateRoleByDate(ctx context.Context, start, end time.Time, role models.Role) (int64, error) {
	r.roleCalls++
	return 3, nil
}

func (r *recordingUserRepo) DeleteViewersByDate(ctx context.Context, start, end time.Time) (int64, error) {
	r.purgeCalls++
	return 2, nil
}

func TestUpdateRolesByDateValidatesRange(t *testing.T) {
	repo := &recordingUserRepo{}
	svc := New(repo)
	now := time.Now().UTC()

	err := svc.UpdateRolesByDate(context.Background(), now, now.Add(-time.Hour), models.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Zero(t, repo.roleCalls, "invalid range must not reach storage")

	err = svc.UpdateRolesByDate(context.Background(), now.Add(time.Hour), now.Add(2*time.Hour), models.RoleAdmin)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestPurgeViewersByDateValidatesRange(t *testing.T) {
	repo := &recordingUserRepo{}
	svc := New(repo)
	now := time.Now().UTC()

	err := svc.PurgeViewersByDate(context.Background(), time.Time{}, now)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Zero(t, repo.purgeCalls)
}

func TestMaintenanceSuccessPath(t *testing.T) {
	repo := &recordingUserRepo{}
	svc := New(repo)
	now := time.Now().UTC()

	require.NoError(t, svc.UpdateRolesByDate(context.Background(), now.AddDate(0, -1, 0), now, models.RoleViewer))
	assert.Equal(t, 1, repo.roleCalls)

	require.NoError(t, svc.PurgeViewersByDate(context.Background(), now.AddDate(0, -1, 0), now))
	assert.Equal(t, 1, repo.purgeCalls)
}
