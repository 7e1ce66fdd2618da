package auth

import (
	"errors"
	"testing"

	"github.com/IndiraMehta/EduTask/internal/app/models"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
)

func TestCanCreateContent(t *testing.T) {
	tests := []struct {
		name  string
		actor *models.User
		want  bool
	}{
		{"teacher", &models.User{ID: 1, Role: models.RoleTeacher}, true},
		{"student", &models.User{ID: 2, Role: models.RoleStudent}, false},
		{"nil actor", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCreateContent(tt.actor); got != tt.want {
				t.Errorf("CanCreateContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanViewSubmissions(t *testing.T) {
	owner := &models.User{ID: 1, Role: models.RoleTeacher}
	otherTeacher := &models.User{ID: 2, Role: models.RoleTeacher}
	student := &models.User{ID: 3, Role: models.RoleStudent}
	assignment := &models.Assignment{ID: 10, CreatedBy: 1}

	tests := []struct {
		name  string
		actor *models.User
		want  bool
	}{
		{"owning teacher", owner, true},
		{"different teacher", otherTeacher, false},
		{"student with matching id", student, false},
		{"nil actor", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewSubmissions(tt.actor, assignment); got != tt.want {
				t.Errorf("CanViewSubmissions() = %v, want %v", got, tt.want)
			}
			if got := CanGradeSubmission(tt.actor, assignment); got != tt.want {
				t.Errorf("CanGradeSubmission() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanViewTestGrades(t *testing.T) {
	owner := &models.User{ID: 1, Role: models.RoleTeacher}
	otherTeacher := &models.User{ID: 2, Role: models.RoleTeacher}
	test := &models.Test{ID: 5, CreatedBy: 1}

	if !CanViewTestGrades(owner, test) {
		t.Error("owner should view test grades")
	}
	if CanViewTestGrades(otherTeacher, test) {
		t.Error("non-owner teacher should not view test grades")
	}
	if CanGradeTest(otherTeacher, test) {
		t.Error("non-owner teacher should not grade test")
	}
	if CanViewTestGrades(owner, nil) {
		t.Error("nil test should never be viewable")
	}
}

func TestInAudience(t *testing.T) {
	student := &models.User{ID: 1, Role: models.RoleStudent, Branch: "CSE", Year: "2nd"}

	if !InAudience(student, "CSE", "2nd") {
		t.Error("student should be in own branch and year")
	}
	if InAudience(student, "ECE", "2nd") {
		t.Error("student should not match a different branch")
	}
	if InAudience(student, "CSE", "3rd") {
		t.Error("student should not match a different year")
	}
	if InAudience(nil, "CSE", "2nd") {
		t.Error("nil actor should not be in any audience")
	}
}

func TestRequireTeacher(t *testing.T) {
	if err := RequireTeacher(&models.User{ID: 1, Role: models.RoleTeacher}); err != nil {
		t.Errorf("RequireTeacher(teacher) = %v, want nil", err)
	}

	err := RequireTeacher(&models.User{ID: 2, Role: models.RoleStudent})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("RequireTeacher(student) = %v, want ErrPermissionDenied", err)
	}
}
