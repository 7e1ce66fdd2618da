package dto

import "time"

// --- Request DTOs ---

// CreateTestRequest represents the data needed to schedule a test
type CreateTestRequest struct {
	Subject     string `json:"subject" binding:"required,min=2,max=255" example:"Operating Systems"`
	Description string `json:"description" binding:"required" example:"Units 3 and 4"`
	Date        string `json:"date" binding:"required" example:"2025-07-10T09:00:00Z"` // RFC3339
	Branch      string `json:"branch" binding:"required,max=50" example:"CSE"`
	Year        string `json:"year" binding:"required,max=20" example:"2nd"`
}

// GradeTestRequest records a score for one student on a test
type GradeTestRequest struct {
	StudentID int64    `json:"studentId" binding:"required" example:"4"`
	Score     *float64 `json:"score" binding:"required" example:"8"`
}

// --- Response DTOs ---

// TestResponse represents one test in a listing
type TestResponse struct {
	ID          int64     `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Branch      string    `json:"branch"`
	Year        string    `json:"year"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      string    `json:"status,omitempty" example:"Tomorrow"`
}

// GradeResponse represents one persisted grade entry
type GradeResponse struct {
	StudentID int64     `json:"studentId"`
	Score     float64   `json:"score"`
	GradedAt  time.Time `json:"gradedAt"`
}

// TestWithGradesResponse is the teacher overview row: one owned test with
// every grade recorded so far.
type TestWithGradesResponse struct {
	TestResponse
	Grades []GradeResponse `json:"grades"`
}

// RosterEntryResponse is one row of the dense grading roster: every student
// in the test's audience appears exactly once, graded or not.
type RosterEntryResponse struct {
	StudentID    int64      `json:"studentId"`
	StudentName  string     `json:"studentName"`
	StudentEmail string     `json:"studentEmail"`
	Branch       string     `json:"branch"`
	Year         string     `json:"year"`
	Score        *float64   `json:"score,omitempty"`
	GradedAt     *time.Time `json:"gradedAt,omitempty"`
}
