package user

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleViewer Role = "VIEWER"
	RoleTagger Role = "TAGGER"
	RoleAdmin  Role = "ADMIN"
)

// User is only used to attribute plays to whoever tagged them.
type User struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role
	CreatedAt   time.Time
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	switch u.Role {
	case RoleViewer, RoleTagger, RoleAdmin:
	default:
		return fmt.Errorf("invalid user role: %s", u.Role)
	}
	return nil
}

func (u User) CanTag() bool {
	return u.Role == RoleTagger || u.Role == RoleAdmin
}
