// FilePath: internal/repository/mongodb/mongo.users.go
package mongodb

import (
	"context"
	"time"

	"github.com/climatewatch/hub/internal/database"
	"github.com/climatewatch/hub/internal/errors"
	"github.com/climatewatch/hub/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	MongoBaseRepo
	users *mongo.Collection
}

func NewUserRepository(db database.DB) *UserRepo {
	return &UserRepo{
		MongoBaseRepo: MongoBaseRepo{db: db},
		users:         db.Collection(database.UsersCollection),
	}
}

// Create inserts a new user with a generated API key. The pre-check keeps
// the common duplicate-email case cheap; the unique index on Email is the
// authority when two creators race past the check, and its duplicate-key
// error maps to the same conflict outcome.
func (r *UserRepo) Create(ctx context.Context, user *models.ApiUser) (bool, error) {
	count, err := r.users.CountDocuments(ctx, bson.D{{Key: "Email", Value: user.Email}})
	if err != nil {
		return false, errors.NewDatabaseError("failed to check for existing email", err)
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	user.ApiKey = uuid.NewString()
	user.Created = now
	user.LastAccess = now

	result, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, errors.NewDatabaseError("failed to create user", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return true, nil
}

func (r *UserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.users.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return errors.NewDatabaseError("failed to delete user", err)
	}
	if result.DeletedCount == 0 {
		return errors.NewNotFoundError("user not found", nil)
	}
	return nil
}

func (r *UserRepo) FindByApiKey(ctx context.Context, apiKey string) (*models.ApiUser, error) {
	user := &models.ApiUser{}
	err := r.users.FindOne(ctx, bson.D{{Key: "ApiKey", Value: apiKey}}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NewNotFoundError("user not found", err)
		}
		return nil, errors.NewDatabaseError("failed to look up api key", err)
	}
	return user, nil
}

func (r *UserRepo) TouchLastAccess(ctx context.Context, apiKey string) error {
	_, err := r.users.UpdateOne(ctx,
		bson.D{{Key: "ApiKey", Value: apiKey}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "Last Access", Value: time.Now().UTC()}}}},
	)
	if err != nil {
		return errors.NewDatabaseError("failed to update last access", err)
	}
	return nil
}

func (r *UserRepo) UpdateRoleByDate(ctx context.Context, start, end time.Time, role models.Role) (int64, error) {
	filter := bson.D{{Key: "Created Date", Value: bson.D{
		{Key: "$gte", Value: start},
		{Key: "$lte", Value: end},
	}}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "Role", Value: role.String()}}}}

	result, err := r.users.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to update roles by date", err)
	}
	return result.ModifiedCount, nil
}

func (r *UserRepo) DeleteViewersByDate(ctx context.Context, start, end time.Time) (int64, error) {
	filter := bson.D{
		{Key: "Role", Value: models.RoleViewer.String()},
		{Key: "Last Access", Value: bson.D{
			{Key: "$gte", Value: start},
			{Key: "$lte", Value: end},
		}},
	}

	result, err := r.users.DeleteMany(ctx, filter)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to delete viewers by date", err)
	}
	return result.DeletedCount, nil
}
