// FilePath: internal/repository/mongodb/mongo.readings.go
package mongodb

import (
	"context"
	"time"

	"github.com/climatewatch/hub/internal/database"
	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReadingRepo struct {
	MongoBaseRepo
	readings *mongo.Collection
}

func NewReadingRepository(db database.DB) *ReadingRepo {
	return &ReadingRepo{
		MongoBaseRepo: MongoBaseRepo{db: db},
		readings:      db.Collection(database.ReadingsCollection),
	}
}

// Insert persists one reading. The collection carries majority write
// concern, so a nil return means the write is acknowledged durable.
func (r *ReadingRepo) Insert(ctx context.Context, reading *models.Reading) error {
	result, err := r.readings.InsertOne(ctx, reading)
	if err != nil {
		return errors.NewDatabaseError("failed to insert reading", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		reading.ID = oid
	}
	return nil
}

func (r *ReadingRepo) InsertMany(ctx context.Context, readings []*models.Reading) error {
	docs := make([]interface{}, len(readings))
	for i, reading := range readings {
		docs[i] = reading
	}

	result, err := r.readings.InsertMany(ctx, docs)
	if err != nil {
		return errors.NewDatabaseError("failed to insert readings", err)
	}
	for i, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(readings) {
			readings[i].ID = oid
		}
	}
	return nil
}

// UpdatePrecipitation patches only the precipitation field. NotFound is
// decided on matched count, so re-patching the stored value is not an
// error.
func (r *ReadingRepo) UpdatePrecipitation(ctx context.Context, id primitive.ObjectID, value float64) error {
	result, err := r.readings.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "Precipitation mm/h", Value: value}}}},
	)
	if err != nil {
		return errors.NewDatabaseError("failed to update precipitation", err)
	}
	if result.MatchedCount == 0 {
		return errors.NewNotFoundError("reading not found", nil)
	}
	return nil
}

// FindNear returns the earliest reading for the device in [t-window,
// t+window]. The window can hold several readings; earliest-first keeps
// the answer deterministic.
func (r *ReadingRepo) FindNear(ctx context.Context, t time.Time, device string, window time.Duration) (*models.Reading, error) {
	filter := bson.D{
		{Key: "Device Name", Value: device},
		{Key: "Time", Value: bson.D{
			{Key: "$gte", Value: t.Add(-window)},
			{Key: "$lte", Value: t.Add(window)},
		}},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "Time", Value: 1}})

	reading := &models.Reading{}
	err := r.readings.FindOne(ctx, filter, opts).Decode(reading)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NewNotFoundError("no reading found", err)
		}
		return nil, errors.NewDatabaseError("failed to find reading", err)
	}
	return reading, nil
}

// MaxTemperatureByStation returns one row per device in [start, end]: the
// reading with the highest temperature, earliest timestamp winning ties.
// The sort-then-first-in-group shape keeps the tie-break in the pipeline
// instead of depending on incidental ordering.
func (r *ReadingRepo) MaxTemperatureByStation(ctx context.Context, start, end time.Time) ([]models.MaxTemperature, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "Time", Value: bson.D{
				{Key: "$gte", Value: start},
				{Key: "$lte", Value: end},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "Temperature (°C)", Value: -1},
			{Key: "Time", Value: 1},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$Device Name"},
			{Key: "Device Name", Value: bson.D{{Key: "$first", Value: "$Device Name"}}},
			{Key: "Time", Value: bson.D{{Key: "$first", Value: "$Time"}}},
			{Key: "Temperature (°C)", Value: bson.D{{Key: "$first", Value: "$Temperature (°C)"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "Device Name", Value: 1}}}},
	}

	cursor, err := r.readings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to aggregate max temperatures", err)
	}
	defer cursor.Close(ctx)

	results := []models.MaxTemperature{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, errors.NewDatabaseError("failed to decode max temperatures", err)
	}
	return results, nil
}

// MaxPrecipitationSince returns the single highest-precipitation reading
// for the device in [since, until], earliest timestamp winning ties.
func (r *ReadingRepo) MaxPrecipitationSince(ctx context.Context, device string, since, until time.Time) (*models.MaxPrecipitation, error) {
	filter := bson.D{
		{Key: "Device Name", Value: device},
		{Key: "Time", Value: bson.D{
			{Key: "$gte", Value: since},
			{Key: "$lte", Value: until},
		}},
	}
	opts := options.FindOne().SetSort(bson.D{
		{Key: "Precipitation mm/h", Value: -1},
		{Key: "Time", Value: 1},
	})

	result := &models.MaxPrecipitation{}
	err := r.readings.FindOne(ctx, filter, opts).Decode(result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NewNotFoundError("no reading found", err)
		}
		return nil, errors.NewDatabaseError("failed to find max precipitation", err)
	}
	return result, nil
}
