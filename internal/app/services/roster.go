package services

import (
	"github.com/IndiraMehta/EduTask/internal/app/models"
	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
)

// SynthesizeRoster builds a dense grade roster: one entry per student in the
// test's audience, with the score left nil for students not yet graded. The
// entry count always equals the student count regardless of how many grades
// exist.
func SynthesizeRoster(students []models.User, grades []models.Grade) []dto.RosterEntryResponse {
	byStudent := make(map[int64]models.Grade, len(grades))
	for _, g := range grades {
		byStudent[g.StudentID] = g
	}

	roster := make([]dto.RosterEntryResponse, 0, len(students))
	for _, student := range students {
		entry := dto.RosterEntryResponse{
			StudentID:    student.ID,
			StudentName:  student.Name,
			StudentEmail: student.Email,
			Branch:       student.Branch,
			Year:         student.Year,
		}
		if g, ok := byStudent[student.ID]; ok {
			score := g.Score
			gradedAt := g.GradedAt
			entry.Score = &score
			entry.GradedAt = &gradedAt
		}
		roster = append(roster, entry)
	}
	return roster
}
