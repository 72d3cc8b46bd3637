package user

import "time"

type Role string

const (
	RoleEmployee Role = "Employee" // Regular employee
	RoleHR       Role = "HR"       // Manages leaves and attendance of others
	RoleAdmin    Role = "Admin"    // Full access, including audit logs
)

// Roles lists every known role.
var Roles = []Role{RoleEmployee, RoleHR, RoleAdmin}

type User struct {
	ID         string
	Name       string
	Username   string
	Email      string
	Role       Role
	Department string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsHR checks if user is HR or Admin
func (u *User) IsHR() bool {
	return u.Role == RoleHR || u.Role == RoleAdmin
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
