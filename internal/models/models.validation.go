// FilePath: internal/models/models.validation.go
package models

import (
	"time"

	"github.com/climatewatch/hub/internal/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidateDateRange enforces the shared precondition of every range-bounded
// operation: both bounds present, start <= end, neither in the future.
// Rejection happens here, before any storage is touched.
func ValidateDateRange(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errors.NewValidationError("the start date and the end date cannot be blank", nil)
	}
	if start.After(end) {
		return errors.NewValidationError("the start date cannot be after the end date", nil)
	}
	if start.After(now) || end.After(now) {
		return errors.NewValidationError("the date range cannot be in the future", nil)
	}
	return nil
}

// ValidatePointTime checks the single-timestamp variant used by the point
// query.
func ValidatePointTime(t, now time.Time) error {
	if t.IsZero() {
		return errors.NewValidationError("the reading time cannot be blank", nil)
	}
	if t.After(now) {
		return errors.NewValidationError("the reading time cannot be in the future", nil)
	}
	return nil
}

// ParseObjectID turns a client-supplied id into an ObjectID, rejecting
// malformed input as a validation failure rather than letting it reach the
// store.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	if len(id) != 24 {
		return primitive.NilObjectID, errors.NewValidationError("id must be a 24 character hex string", nil)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.NewValidationError("id is not a valid object id", err)
	}
	return oid, nil
}
