package domain

import (
	"strings"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole normalizes a role string. Empty input yields RoleUser.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ValidationError{Field: "role", Msg: "must be user or admin"}
	}
}

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
