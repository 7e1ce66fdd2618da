package models

import "time"

// Identity defines a credential record based on the 'identities' table.
// An identity is created at registration and never carries portal-facing
// attributes; those live on the User profile keyed by UID.
type Identity struct {
	ID           int64     `json:"id" db:"id"`
	UID          string    `json:"uid" db:"uid"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// RefreshToken defines a row of the 'refresh_tokens' table
type RefreshToken struct {
	ID         int64     `json:"id" db:"id"`
	IdentityID int64     `json:"identityId" db:"identity_id"`
	Token      string    `json:"token" db:"token"`
	ExpiresAt  time.Time `json:"expiresAt" db:"expires_at"`
	Revoked    bool      `json:"revoked" db:"revoked"`
}

// User defines the profile model based on the 'users' table.
// Role, branch and year are set once at profile creation and treated as
// stable for all authorization decisions.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	UID       string    `json:"uid" db:"uid"`                                   // Identity key, unique and immutable
	Name      string    `json:"name" db:"name" example:"Asha Verma"`            // Display name
	Email     string    `json:"email" db:"email" example:"asha@college.edu"`    // Contact email
	Role      RoleType  `json:"role" db:"role" example:"STUDENT"`               // STUDENT or TEACHER
	Branch    string    `json:"branch" db:"branch" example:"CSE"`               // Academic branch (cohort key)
	Year      string    `json:"year" db:"year" example:"2nd"`                   // Academic year (cohort key)
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// IsTeacher reports whether the profile holds the teacher role.
func (u *User) IsTeacher() bool {
	return u != nil && u.Role == RoleTeacher
}

// IsStudent reports whether the profile holds the student role.
func (u *User) IsStudent() bool {
	return u != nil && u.Role == RoleStudent
}
