package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleRider Role = "rider"
)

// AssignableRole reports whether role may be set through the role-patch endpoint.
// Riders are only promoted by rider activation.
func AssignableRole(role Role) bool {
	return role == RoleAdmin || role == RoleUser
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Role      Role               `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// EffectiveRole falls back to RoleUser for documents written without a role.
func (u *User) EffectiveRole() Role {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}
