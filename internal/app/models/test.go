package models

import "time"

// Test defines the test model based on the 'tests' table. Owned exclusively
// by the creating teacher; visible to students matching (branch, year).
type Test struct {
	ID          int64     `json:"id" db:"id"`
	Subject     string    `json:"subject" db:"subject"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	Branch      string    `json:"branch" db:"branch"`
	Year        string    `json:"year" db:"year"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Grade defines a recorded score for one student on one test, based on the
// 'test_grades' table. Rows are sparse: absence means "not yet graded", not
// zero. UNIQUE(test_id, student_id) holds the at-most-one invariant.
type Grade struct {
	ID        int64     `json:"id" db:"id"`
	TestID    int64     `json:"testId" db:"test_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Score     float64   `json:"score" db:"score"`
	GradedAt  time.Time `json:"gradedAt" db:"graded_at"`
}
