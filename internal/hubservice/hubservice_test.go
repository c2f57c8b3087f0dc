// FilePath: internal/hubservice/hubservice_test.go
package hubservice

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

type stubUserRepo struct {
	created      []*models.ApiUser
	createOK     bool
	deleted      []primitive.ObjectID
	roleUpdates  int64
	viewerPurges int64
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.ApiUser) (bool, error) {
	s.created = append(s.created, user)
	return s.createOK, nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubUserRepo) FindByApiKey(ctx context.Context, apiKey string) (*models.ApiUser, error) {
	return nil, errors.NewNotFoundError("user not found", nil)
}

func (s *stubUserRepo) TouchLastAccess(ctx context.Context, apiKey string) error {
	return nil
}

func (s *stubUserRepo) UpdateRoleByDate(ctx context.Context, start, end time.Time, role models.Role) (int64, error) {
	return s.roleUpdates, nil
}

func (s *stubUserRepo) DeleteViewersByDate(ctx context.Context, start, end time.Time) (int64, error) {
	return s.viewerPurges, nil
}

type stubReadingRepo struct {
	inserted     []*models.Reading
	patched      map[primitive.ObjectID]float64
	lastSince    time.Time
	lastUntil    time.Time
	lastWindow   time.Duration
	findResult   *models.Reading
	maxPrecipRow *models.MaxPrecipitation
}

func (s *stubReadingRepo) Insert(ctx context.Context, reading *models.Reading) error {
	s.inserted = append(s.inserted, reading)
	return nil
}

func (s *stubReadingRepo) InsertMany(ctx context.Context, readings []*models.Reading) error {
	s.inserted = append(s.inserted, readings...)
	return nil
}

func (s *stubReadingRepo) UpdatePrecipitation(ctx context.Context, id primitive.ObjectID, value float64) error {
	if s.patched == nil {
		s.patched = map[primitive.ObjectID]float64{}
	}
	s.patched[id] = value
	return nil
}

func (s *stubReadingRepo) FindNear(ctx context.Context, t time.Time, device string, window time.Duration) (*models.Reading, error) {
	s.lastWindow = window
	if s.findResult == nil {
		return nil, errors.NewNotFoundError("no reading found", nil)
	}
	return s.findResult, nil
}

func (s *stubReadingRepo) MaxTemperatureByStation(ctx context.Context, start, end time.Time) ([]models.MaxTemperature, error) {
	return []models.MaxTemperature{}, nil
}

func (s *stubReadingRepo) MaxPrecipitationSince(ctx context.Context, device string, since, until time.Time) (*models.MaxPrecipitation, error) {
	s.lastSince = since
	s.lastUntil = until
	if s.maxPrecipRow == nil {
		return nil, errors.NewNotFoundError("no reading found", nil)
	}
	return s.maxPrecipRow, nil
}

func newTestService(users *stubUserRepo, readings *stubReadingRepo) *HubService {
	return New(users, readings)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid role is rejected before storage", func(t *testing.T) {
		users := &stubUserRepo{createOK: true}
		svc := newTestService(users, &stubReadingRepo{})

		err := svc.CreateUser(ctx, &models.ApiUser{Email: "a@b.c", Role: "WIZARD"})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
		assert.Empty(t, users.created)
	})

	t.Run("missing email is rejected", func(t *testing.T) {
		users := &stubUserRepo{createOK: true}
		svc := newTestService(users, &stubReadingRepo{})

		err := svc.CreateUser(ctx, &models.ApiUser{Role: "VIEWER"})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("duplicate email surfaces as conflict", func(t *testing.T) {
		users := &stubUserRepo{createOK: false}
		svc := newTestService(users, &stubReadingRepo{})

		err := svc.CreateUser(ctx, &models.ApiUser{Email: "a@b.c", Role: "VIEWER"})
		require.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})

	t.Run("success", func(t *testing.T) {
		users := &stubUserRepo{createOK: true}
		svc := newTestService(users, &stubReadingRepo{})

		require.NoError(t, svc.CreateUser(ctx, &models.ApiUser{Email: "a@b.c", Role: "admin"}))
		require.Len(t, users.created, 1)
	})
}

func TestDeleteUserRejectsMalformedID(t *testing.T) {
	users := &stubUserRepo{}
	svc := newTestService(users, &stubReadingRepo{})

	err := svc.DeleteUser(context.Background(), "not-an-object-id")
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, users.deleted)
}

func TestInsertReadingStampsServerTime(t *testing.T) {
	readings := &stubReadingRepo{}
	svc := newTestService(&stubUserRepo{}, readings)

	reading := &models.Reading{DeviceName: "station_1", Time: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)}
	before := time.Now().UTC()
	require.NoError(t, svc.InsertReading(context.Background(), reading))
	after := time.Now().UTC()

	require.Len(t, readings.inserted, 1)
	got := readings.inserted[0].Time
	assert.False(t, got.Before(before), "client-supplied time must be overwritten")
	assert.False(t, got.After(after))
}

func TestInsertManyReadings(t *testing.T) {
	ctx := context.Background()

	t.Run("empty batch is rejected", func(t *testing.T) {
		readings := &stubReadingRepo{}
		svc := newTestService(&stubUserRepo{}, readings)

		err := svc.InsertManyReadings(ctx, nil)
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
		assert.Empty(t, readings.inserted)
	})

	t.Run("nil entry is rejected before storage", func(t *testing.T) {
		readings := &stubReadingRepo{}
		svc := newTestService(&stubUserRepo{}, readings)

		err := svc.InsertManyReadings(ctx, []*models.Reading{{DeviceName: "station_1"}, nil})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
		assert.Empty(t, readings.inserted)
	})

	t.Run("all readings share one timestamp", func(t *testing.T) {
		readings := &stubReadingRepo{}
		svc := newTestService(&stubUserRepo{}, readings)

		batch := []*models.Reading{
			{DeviceName: "station_1"},
			{DeviceName: "station_2"},
			{DeviceName: "station_3"},
		}
		require.NoError(t, svc.InsertManyReadings(ctx, batch))
		require.Len(t, readings.inserted, 3)
		assert.Equal(t, readings.inserted[0].Time, readings.inserted[1].Time)
		assert.Equal(t, readings.inserted[0].Time, readings.inserted[2].Time)
	})
}

func TestPatchPrecipitationRejectsMalformedID(t *testing.T) {
	readings := &stubReadingRepo{}
	svc := newTestService(&stubUserRepo{}, readings)

	err := svc.PatchPrecipitation(context.Background(), "bogus", 12.5)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, readings.patched)
}

func TestReadingAt(t *testing.T) {
	ctx := context.Background()

	t.Run("future time is rejected", func(t *testing.T) {
		svc := newTestService(&stubUserRepo{}, &stubReadingRepo{})
		_, err := svc.ReadingAt(ctx, time.Now().UTC().Add(time.Hour), "station_1")
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("missing sensor is rejected", func(t *testing.T) {
		svc := newTestService(&stubUserRepo{}, &stubReadingRepo{})
		_, err := svc.ReadingAt(ctx, time.Now().UTC().Add(-time.Hour), "")
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("uses the five minute window", func(t *testing.T) {
		readings := &stubReadingRepo{findResult: &models.Reading{DeviceName: "station_1"}}
		svc := newTestService(&stubUserRepo{}, readings)

		_, err := svc.ReadingAt(ctx, time.Now().UTC().Add(-time.Hour), "station_1")
		require.NoError(t, err)
		assert.Equal(t, PointQueryWindow, readings.lastWindow)
	})
}

func TestMaxTemperatureByStationValidatesRange(t *testing.T) {
	svc := newTestService(&stubUserRepo{}, &stubReadingRepo{})
	now := time.Now().UTC()

	_, err := svc.MaxTemperatureByStation(context.Background(), now, now.AddDate(0, -1, 0))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestMaxPrecipitationRecentWindow(t *testing.T) {
	readings := &stubReadingRepo{maxPrecipRow: &models.MaxPrecipitation{DeviceName: "station_1"}}
	svc := newTestService(&stubUserRepo{}, readings)

	_, err := svc.MaxPrecipitationRecent(context.Background(), "station_1")
	require.NoError(t, err)

	// The window ends now and reaches back exactly five calendar months.
	assert.WithinDuration(t, time.Now().UTC(), readings.lastUntil, time.Minute)
	assert.Equal(t, readings.lastUntil.AddDate(0, -MaxPrecipitationLookback, 0), readings.lastSince)
}
