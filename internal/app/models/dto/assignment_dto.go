package dto

import "time"

// --- Request DTOs ---

// CreateAssignmentRequest represents the multipart form fields for creating
// an assignment. Attachment files are read separately from the form.
type CreateAssignmentRequest struct {
	Title       string `form:"title" binding:"required,min=3,max=255" example:"Graph algorithms problem set"`
	Description string `form:"description" binding:"required" example:"Solve problems 1-5..."`
	Deadline    string `form:"deadline" binding:"required" example:"2025-07-01T23:59:00Z"` // RFC3339
	Branch      string `form:"branch" binding:"required,max=50" example:"CSE"`
	Year        string `form:"year" binding:"required,max=20" example:"2nd"`
}

// GradeSubmissionRequest carries a grade for one submission.
// Pointer keeps an explicit zero distinguishable from a missing field.
type GradeSubmissionRequest struct {
	Grade *float64 `json:"grade" binding:"required" example:"7.5"`
}

// --- Response DTOs ---

// AssignmentResponse represents one assignment in a listing.
// Submitted and Status are only set on student listings.
type AssignmentResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Branch      string    `json:"branch"`
	Year        string    `json:"year"`
	CreatedBy   int64     `json:"createdBy"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"createdAt"`
	Submitted   *bool     `json:"submitted,omitempty"`
	Status      string    `json:"status,omitempty" example:"Due Tomorrow"`
}

// SubmissionResponse represents one student's submission on a teacher view
type SubmissionResponse struct {
	ID           int64     `json:"id"`
	AssignmentID int64     `json:"assignmentId"`
	StudentID    int64     `json:"studentId"`
	StudentName  string    `json:"studentName,omitempty"`
	StudentEmail string    `json:"studentEmail,omitempty"`
	SubmittedAt  time.Time `json:"submittedAt"`
	Files        []string  `json:"files"`
	Grade        *float64  `json:"grade,omitempty"`
}

// AssignmentWithSubmissionsResponse is the teacher overview row: one owned
// assignment together with every submission received so far.
type AssignmentWithSubmissionsResponse struct {
	AssignmentResponse
	Submissions []SubmissionResponse `json:"submissions"`
}
