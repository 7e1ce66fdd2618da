package services

import (
	"testing"
	"time"

	"github.com/IndiraMehta/EduTask/internal/app/models"
)

func TestSynthesizeRoster(t *testing.T) {
	gradedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	students := []models.User{
		{ID: 1, Name: "Asha", Email: "asha@college.edu", Role: models.RoleStudent, Branch: "CSE", Year: "2nd"},
		{ID: 2, Name: "Ravi", Email: "ravi@college.edu", Role: models.RoleStudent, Branch: "CSE", Year: "2nd"},
		{ID: 3, Name: "Meena", Email: "meena@college.edu", Role: models.RoleStudent, Branch: "CSE", Year: "2nd"},
	}
	grades := []models.Grade{
		{ID: 10, TestID: 7, StudentID: 2, Score: 8.5, GradedAt: gradedAt},
	}

	roster := SynthesizeRoster(students, grades)

	if len(roster) != len(students) {
		t.Fatalf("roster has %d entries, want one per student (%d)", len(roster), len(students))
	}

	for _, entry := range roster {
		switch entry.StudentID {
		case 2:
			if entry.Score == nil || *entry.Score != 8.5 {
				t.Errorf("graded student: score = %v, want 8.5", entry.Score)
			}
			if entry.GradedAt == nil || !entry.GradedAt.Equal(gradedAt) {
				t.Errorf("graded student: gradedAt = %v, want %v", entry.GradedAt, gradedAt)
			}
		default:
			if entry.Score != nil {
				t.Errorf("ungraded student %d: score = %v, want nil", entry.StudentID, *entry.Score)
			}
			if entry.GradedAt != nil {
				t.Errorf("ungraded student %d: gradedAt = %v, want nil", entry.StudentID, entry.GradedAt)
			}
		}
	}
}

func TestSynthesizeRosterNoStudents(t *testing.T) {
	roster := SynthesizeRoster(nil, []models.Grade{{TestID: 1, StudentID: 99, Score: 5}})
	if len(roster) != 0 {
		t.Errorf("roster has %d entries for empty audience, want 0", len(roster))
	}
}

func TestSynthesizeRosterIgnoresGradesOutsideAudience(t *testing.T) {
	students := []models.User{
		{ID: 1, Name: "Asha", Role: models.RoleStudent, Branch: "CSE", Year: "2nd"},
	}
	grades := []models.Grade{
		{TestID: 7, StudentID: 42, Score: 9},
	}

	roster := SynthesizeRoster(students, grades)
	if len(roster) != 1 {
		t.Fatalf("roster has %d entries, want 1", len(roster))
	}
	if roster[0].Score != nil {
		t.Errorf("student without a grade got score %v", *roster[0].Score)
	}
}
