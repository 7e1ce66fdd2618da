package dto

// SaveProfileRequest represents the data needed to create a user profile.
// Role, branch and year are fixed at creation; a repeated call returns the
// existing profile untouched.
type SaveProfileRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=100" example:"Asha Verma"`
	Email  string `json:"email" binding:"required,email" example:"asha@college.edu"`
	Role   string `json:"role" binding:"required,oneof=STUDENT TEACHER" example:"STUDENT"`
	Branch string `json:"branch" binding:"required,max=50" example:"CSE"`
	Year   string `json:"year" binding:"required,max=20" example:"2nd"`
}

// ProfileResponse represents a user profile returned to the caller
type ProfileResponse struct {
	ID     int64  `json:"id" example:"1"`
	UID    string `json:"uid"`
	Name   string `json:"name" example:"Asha Verma"`
	Email  string `json:"email" example:"asha@college.edu"`
	Role   string `json:"role" example:"STUDENT"`
	Branch string `json:"branch" example:"CSE"`
	Year   string `json:"year" example:"2nd"`
}
