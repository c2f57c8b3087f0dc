// FilePath: internal/hubservice/hubservice.readings.go
package hubservice

import (
	"context"
	"time"

	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/models"
)

// PointQueryWindow is the tolerance around the requested time within which
// a reading counts as a match.
const PointQueryWindow = 5 * time.Minute

// MaxPrecipitationLookback is the rolling window of the max-precipitation
// query, ending at call time.
const MaxPrecipitationLookback = 5 // months

// InsertReading stores one observation. The capture time is stamped by the
// server; whatever the sensor put in the Time field is not trusted.
func (s *HubService) InsertReading(ctx context.Context, reading *models.Reading) error {
	reading.Time = time.Now().UTC()
	return s.Readings.Insert(ctx, reading)
}

// InsertManyReadings stores a batch of observations with a single
// server-side timestamp. An empty batch is rejected before storage.
func (s *HubService) InsertManyReadings(ctx context.Context, readings []*models.Reading) error {
	if len(readings) == 0 {
		return errors.NewValidationError("no readings in provided list", nil)
	}
	now := time.Now().UTC()
	for _, reading := range readings {
		if reading == nil {
			return errors.NewValidationError("readings cannot contain null entries", nil)
		}
		reading.Time = now
	}
	return s.Readings.InsertMany(ctx, readings)
}

// PatchPrecipitation corrects the precipitation value of one stored
// reading.
func (s *HubService) PatchPrecipitation(ctx context.Context, id string, value float64) error {
	oid, err := models.ParseObjectID(id)
	if err != nil {
		return err
	}
	return s.Readings.UpdatePrecipitation(ctx, oid, value)
}

// ReadingAt returns the reading for the device closest after the start of
// the ±5 minute window around t.
func (s *HubService) ReadingAt(ctx context.Context, t time.Time, device string) (*models.Reading, error) {
	if err := models.ValidatePointTime(t, time.Now().UTC()); err != nil {
		return nil, err
	}
	if device == "" {
		return nil, errors.NewValidationError("sensor name is required", nil)
	}
	return s.Readings.FindNear(ctx, t, device, PointQueryWindow)
}

// MaxTemperatureByStation returns the hottest reading per device inside
// the closed interval [start, end]. An empty window yields an empty list,
// not an error.
func (s *HubService) MaxTemperatureByStation(ctx context.Context, start, end time.Time) ([]models.MaxTemperature, error) {
	if err := models.ValidateDateRange(start, end, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.Readings.MaxTemperatureByStation(ctx, start, end)
}

// MaxPrecipitationRecent returns the wettest reading for the device in the
// rolling 5-month window ending now.
func (s *HubService) MaxPrecipitationRecent(ctx context.Context, device string) (*models.MaxPrecipitation, error) {
	if device == "" {
		return nil, errors.NewValidationError("sensor name is required", nil)
	}
	until := time.Now().UTC()
	since := until.AddDate(0, -MaxPrecipitationLookback, 0)
	return s.Readings.MaxPrecipitationSince(ctx, device, since, until)
}
