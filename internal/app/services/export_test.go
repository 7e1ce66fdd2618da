package services

import (
	"testing"
	"time"

	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
)

func TestBuildGradeWorkbook(t *testing.T) {
	score := 8.5
	gradedAt := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	roster := []dto.RosterEntryResponse{
		{StudentID: 4, StudentName: "Asha Verma", StudentEmail: "asha@college.edu", Branch: "CSE", Year: "2nd", Score: &score, GradedAt: &gradedAt},
		{StudentID: 7, StudentName: "Ravi Kumar", StudentEmail: "ravi@college.edu", Branch: "CSE", Year: "2nd"},
	}

	f, name := buildGradeWorkbook("Operating Systems", roster)
	defer f.Close()

	if name != "Operating-Systems-grades.xlsx" {
		t.Errorf("filename = %q, want %q", name, "Operating-Systems-grades.xlsx")
	}

	cells := map[string]string{
		"A1": "Student",
		"E1": "Score",
		"A2": "Asha Verma",
		"E2": "8.5",
		"F2": "2025-06-10T09:30:00Z",
		"A3": "Ravi Kumar",
		"E3": "",
		"F3": "",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue("Grades", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Operating Systems", "Operating-Systems"},
		{"DBMS", "DBMS"},
		{"../etc/passwd", "etcpasswd"},
		{"!!!", "test"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
