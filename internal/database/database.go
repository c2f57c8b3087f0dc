// FilePath: internal/database/database.go
package database

import (
	"context"

	"github.com/climatewatch/hub/internal/config"
	nuts "github.com/vaudience/go-nuts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// Collection names of the pre-existing data set. They are part of the
// storage contract and must not change.
const (
	UsersCollection    = "ApiUsers"
	ReadingsCollection = "WeatherData"
)

// DB is the handle the repositories work against.
type DB interface {
	Close(ctx context.Context) error
	Ping(ctx context.Context) error
	Collection(name string) *mongo.Collection
}

// MongoDB wraps a connected database. There is no global instance; the
// provider takes an explicit config and the result is passed to the store
// constructors.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDB connects to the configured deployment. Writes use majority
// write concern so an acknowledged insert is durable before the caller
// reports success.
func NewMongoDB(ctx context.Context, cfg config.MongoConfig) (DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetWriteConcern(writeconcern.Majority())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	nuts.L.Infof("[MongoDB] Connected to %s/%s", cfg.URI, cfg.Database)
	return &MongoDB{client: client, db: client.Database(cfg.Database)}, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// EnsureIndexes creates the unique indexes the user collection relies on.
// The email check in create(user) is check-then-act; the unique index is
// what actually holds the invariant under concurrent creators.
func EnsureIndexes(ctx context.Context, db DB) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "Email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "ApiKey", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
