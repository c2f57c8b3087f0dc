// FilePath: internal/repository/mongodb/mongo.baserepo.go
package mongodb

import (
	"context"

	"github.com/climatewatch/hub/internal/database"
	"github.com/climatewatch/hub/internal/errors"
)

type MongoBaseRepo struct {
	db database.DB
}

func (r *MongoBaseRepo) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return errors.NewDatabaseError("failed to ping database", err)
	}
	return nil
}

func (r *MongoBaseRepo) Close(ctx context.Context) error {
	if err := r.db.Close(ctx); err != nil {
		return errors.NewDatabaseError("failed to close database", err)
	}
	return nil
}
