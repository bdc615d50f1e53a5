package user

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"    // Full access to every record and operation
	RoleEmployee Role = "Employee" // Own records only
)

// Roles lists every valid role. The role set is closed; anything outside it is
// rejected at validation time.
var Roles = []string{string(RoleAdmin), string(RoleEmployee)}

type User struct {
	ID             string
	FullName       string
	Email          string
	PasswordHash   string
	Role           Role
	PhoneNumber    *string
	Address        *string
	DateOfJoining  time.Time
	IsActive       bool
	IsDefaultAdmin bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
