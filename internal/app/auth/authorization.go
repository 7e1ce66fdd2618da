// Package auth contains the authorization rules for portal content.
// Every rule is a pure predicate over the acting user and the entity so
// the rules can be tested without a database.
package auth

import (
	"github.com/IndiraMehta/EduTask/internal/app/models"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
)

// CanCreateContent reports whether the user may create assignments or tests.
func CanCreateContent(actor *models.User) bool {
	return actor != nil && actor.IsTeacher()
}

// OwnsAssignment reports whether the user created the assignment.
func OwnsAssignment(actor *models.User, assignment *models.Assignment) bool {
	return actor != nil && assignment != nil && actor.ID == assignment.CreatedBy
}

// OwnsTest reports whether the user created the test.
func OwnsTest(actor *models.User, test *models.Test) bool {
	return actor != nil && test != nil && actor.ID == test.CreatedBy
}

// CanViewSubmissions reports whether the user may see an assignment's
// submissions. Only the teacher who created the assignment may.
func CanViewSubmissions(actor *models.User, assignment *models.Assignment) bool {
	return CanCreateContent(actor) && OwnsAssignment(actor, assignment)
}

// CanGradeSubmission reports whether the user may grade a submission on the
// assignment. Same rule as viewing: creator only.
func CanGradeSubmission(actor *models.User, assignment *models.Assignment) bool {
	return CanViewSubmissions(actor, assignment)
}

// CanViewTestGrades reports whether the user may see a test's grade roster.
func CanViewTestGrades(actor *models.User, test *models.Test) bool {
	return CanCreateContent(actor) && OwnsTest(actor, test)
}

// CanGradeTest reports whether the user may record scores for the test.
func CanGradeTest(actor *models.User, test *models.Test) bool {
	return CanViewTestGrades(actor, test)
}

// InAudience reports whether the user belongs to the given branch and year.
func InAudience(actor *models.User, branch, year string) bool {
	return actor != nil && actor.Branch == branch && actor.Year == year
}

// RequireTeacher converts the creation predicate into an error.
func RequireTeacher(actor *models.User) error {
	if !CanCreateContent(actor) {
		return apperrors.NewForbiddenError("only teachers can perform this action")
	}
	return nil
}
