package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleTeacher RoleType = "TEACHER"
)

// Valid reports whether the role is one of the closed set of roles.
func (r RoleType) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}
