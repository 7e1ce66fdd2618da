package models

import "time"

// Assignment defines the assignment model based on the 'assignments' table.
// An assignment is owned exclusively by the creating teacher and is visible
// to students whose (branch, year) match its audience. The deadline is
// informational; late submissions are not blocked.
type Assignment struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Deadline    time.Time `json:"deadline" db:"deadline"`
	Branch      string    `json:"branch" db:"branch"`
	Year        string    `json:"year" db:"year"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"` // Owning teacher (users.id)
	Attachments []string  `json:"attachments" db:"attachments"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Submission defines a student's deliverable against one assignment, based
// on the 'submissions' table. UNIQUE(assignment_id, student_id) guarantees at
// most one submission per pair; a resubmission replaces the timestamp and
// file list in place. Grade is nil until the owning teacher grades it.
type Submission struct {
	ID           int64     `json:"id" db:"id"`
	AssignmentID int64     `json:"assignmentId" db:"assignment_id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	SubmittedAt  time.Time `json:"submittedAt" db:"submitted_at"`
	Files        []string  `json:"files" db:"files"`
	Grade        *float64  `json:"grade,omitempty" db:"grade"`

	// Joined from users, populated on teacher views
	StudentName  string `json:"studentName,omitempty"`
	StudentEmail string `json:"studentEmail,omitempty"`
}
