package services

import (
	"context"
	"errors"
	"testing"

	"github.com/IndiraMehta/EduTask/internal/app/models"
	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
)

// The range check runs before any repository access, so nil repositories
// prove the write is rejected without touching the store.

func TestGradeSubmissionRejectsOutOfRangeGrades(t *testing.T) {
	svc := NewAssignmentService(nil, nil, nil)
	teacher := &models.User{ID: 1, Role: models.RoleTeacher}

	tests := []struct {
		name  string
		grade float64
	}{
		{"just below zero", -0.1},
		{"negative", -1},
		{"just above ten", 10.1},
		{"far above ten", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.GradeSubmission(context.Background(), teacher, 1, tt.grade)
			if !errors.Is(err, apperrors.ErrGradeOutOfRange) {
				t.Errorf("GradeSubmission(%v) = %v, want ErrGradeOutOfRange", tt.grade, err)
			}
		})
	}
}

func TestGradeTestRejectsOutOfRangeScores(t *testing.T) {
	svc := NewTestService(nil, nil, nil)
	teacher := &models.User{ID: 1, Role: models.RoleTeacher}

	score := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		req  *dto.GradeTestRequest
	}{
		{"just below zero", &dto.GradeTestRequest{StudentID: 4, Score: score(-0.1)}},
		{"negative", &dto.GradeTestRequest{StudentID: 4, Score: score(-1)}},
		{"just above ten", &dto.GradeTestRequest{StudentID: 4, Score: score(10.1)}},
		{"far above ten", &dto.GradeTestRequest{StudentID: 4, Score: score(11)}},
		{"missing score", &dto.GradeTestRequest{StudentID: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Grade(context.Background(), teacher, 1, tt.req)
			if !errors.Is(err, apperrors.ErrGradeOutOfRange) {
				t.Errorf("Grade(%v) = %v, want ErrGradeOutOfRange", tt.req.Score, err)
			}
		})
	}
}
