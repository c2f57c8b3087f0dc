// FilePath: internal/models/models.user.go
package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of access levels an API key can hold.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleViewer Role = "VIEWER"
	RoleSensor Role = "SENSOR"
)

// ParseRole is the single place a role string becomes a Role. Anything
// outside the closed set is rejected, never coerced. Input is matched
// case-insensitively; the stored form is always upper-case.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleViewer:
		return RoleViewer, nil
	case RoleSensor:
		return RoleSensor, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// In sets the allow-list membership check for the gate.
func (r Role) In(allowed []Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ApiUser is a principal holding a role and an API key. The bson element
// names are the storage contract of the pre-existing ApiUsers collection
// and must not change.
type ApiUser struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username    string             `json:"username" bson:"Username"`
	ContactName string             `json:"contact_name" bson:"Contact Name"`
	Email       string             `json:"email" bson:"Email"`
	Role        string             `json:"role" bson:"Role"`
	ApiKey      string             `json:"api_key" bson:"ApiKey"`
	Created     time.Time          `json:"created" bson:"Created Date"`
	LastAccess  time.Time          `json:"last_access" bson:"Last Access"`
}
