package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/IndiraMehta/EduTask/internal/app/auth"
	"github.com/IndiraMehta/EduTask/internal/app/models"
	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
	"github.com/IndiraMehta/EduTask/internal/app/repositories"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
	"github.com/IndiraMehta/EduTask/internal/pkg/logger"
	"github.com/IndiraMehta/EduTask/internal/pkg/metrics"
)

// TestService implements the test scheduling and grading workflow
type TestService struct {
	testRepo  *repositories.TestRepository
	gradeRepo *repositories.GradeRepository
	userRepo  *repositories.UserRepository
}

// NewTestService creates a new TestService instance
func NewTestService(
	testRepo *repositories.TestRepository,
	gradeRepo *repositories.GradeRepository,
	userRepo *repositories.UserRepository,
) *TestService {
	return &TestService{
		testRepo:  testRepo,
		gradeRepo: gradeRepo,
		userRepo:  userRepo,
	}
}

// Create schedules a new test owned by the acting teacher.
func (s *TestService) Create(ctx context.Context, actor *models.User, req *dto.CreateTestRequest) (*dto.TestResponse, error) {
	if err := auth.RequireTeacher(actor); err != nil {
		return nil, err
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be an RFC3339 timestamp")
	}

	test := &models.Test{
		Subject:     req.Subject,
		Description: req.Description,
		Date:        date,
		Branch:      req.Branch,
		Year:        req.Year,
		CreatedBy:   actor.ID,
	}

	id, err := s.testRepo.Create(ctx, test)
	if err != nil {
		return nil, err
	}
	test.ID = id

	logger.Info().Int64("testId", id).Int64("teacherId", actor.ID).Msg("Test scheduled")
	resp := toTestResponse(test)
	return &resp, nil
}

// ListForUser lists tests from the caller's perspective. Teachers see the
// tests they created; students see tests for their branch and year with a
// display status derived from the test date.
func (s *TestService) ListForUser(ctx context.Context, actor *models.User) ([]dto.TestResponse, error) {
	if actor.IsTeacher() {
		tests, err := s.testRepo.ListByOwner(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		responses := make([]dto.TestResponse, 0, len(tests))
		for i := range tests {
			responses = append(responses, toTestResponse(&tests[i]))
		}
		return responses, nil
	}

	tests, err := s.testRepo.ListByAudience(ctx, actor.Branch, actor.Year)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.TestResponse, 0, len(tests))
	for i := range tests {
		resp := toTestResponse(&tests[i])
		resp.Status = TestStatus(tests[i].Date, now)
		responses = append(responses, resp)
	}
	return responses, nil
}

// TeacherOverview returns every test the teacher created together with all
// grades recorded so far.
func (s *TestService) TeacherOverview(ctx context.Context, actor *models.User) ([]dto.TestWithGradesResponse, error) {
	if err := auth.RequireTeacher(actor); err != nil {
		return nil, err
	}

	tests, err := s.testRepo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(tests))
	for i := range tests {
		ids = append(ids, tests[i].ID)
	}
	grouped, err := s.gradeRepo.ListByTestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	overview := make([]dto.TestWithGradesResponse, 0, len(tests))
	for i := range tests {
		overview = append(overview, dto.TestWithGradesResponse{
			TestResponse: toTestResponse(&tests[i]),
			Grades:       toGradeResponses(grouped[tests[i].ID]),
		})
	}
	return overview, nil
}

// GetRoster returns the dense grading roster for a test: one entry per
// student in the test's audience, graded or not.
func (s *TestService) GetRoster(ctx context.Context, actor *models.User, testID int64) ([]dto.RosterEntryResponse, error) {
	test, err := s.loadOwnedTest(ctx, actor, testID)
	if err != nil {
		return nil, err
	}
	return s.rosterFor(ctx, test)
}

func (s *TestService) rosterFor(ctx context.Context, test *models.Test) ([]dto.RosterEntryResponse, error) {
	students, err := s.userRepo.ListStudentsByAudience(ctx, test.Branch, test.Year)
	if err != nil {
		return nil, err
	}
	grades, err := s.gradeRepo.ListByTest(ctx, test.ID)
	if err != nil {
		return nil, err
	}
	return SynthesizeRoster(students, grades), nil
}

// Grade records a score for one student on a test. Scoring the same student
// again replaces the previous score.
func (s *TestService) Grade(ctx context.Context, actor *models.User, testID int64, req *dto.GradeTestRequest) (*dto.GradeResponse, error) {
	if req.Score == nil || *req.Score < 0 || *req.Score > 10 {
		return nil, apperrors.ErrGradeOutOfRange
	}

	test, err := s.loadOwnedTest(ctx, actor, testID)
	if err != nil {
		return nil, err
	}

	student, err := s.userRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil || !student.IsStudent() {
		return nil, apperrors.ErrUserNotFound
	}
	if !auth.InAudience(student, test.Branch, test.Year) {
		return nil, apperrors.NewValidationError("student is not in the test's branch and year")
	}

	grade := &models.Grade{
		TestID:    testID,
		StudentID: req.StudentID,
		Score:     *req.Score,
		GradedAt:  time.Now(),
	}
	if _, err := s.gradeRepo.Upsert(ctx, grade); err != nil {
		return nil, err
	}

	metrics.GradesRecorded.WithLabelValues("test").Inc()
	logger.Info().Int64("testId", testID).Int64("studentId", req.StudentID).Float64("score", grade.Score).Msg("Test graded")

	return &dto.GradeResponse{
		StudentID: grade.StudentID,
		Score:     grade.Score,
		GradedAt:  grade.GradedAt,
	}, nil
}

// ExportGrades renders the test's roster as an xlsx workbook. Returns the
// workbook and a suggested download filename.
func (s *TestService) ExportGrades(ctx context.Context, actor *models.User, testID int64) (*excelize.File, string, error) {
	test, err := s.loadOwnedTest(ctx, actor, testID)
	if err != nil {
		return nil, "", err
	}

	roster, err := s.rosterFor(ctx, test)
	if err != nil {
		return nil, "", err
	}

	f, name := buildGradeWorkbook(test.Subject, roster)
	return f, name, nil
}

func buildGradeWorkbook(subject string, roster []dto.RosterEntryResponse) (*excelize.File, string) {
	f := excelize.NewFile()
	sheet := "Grades"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Student", "Email", "Branch", "Year", "Score", "Graded At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, entry := range roster {
		values := []interface{}{
			entry.StudentName,
			entry.StudentEmail,
			entry.Branch,
			entry.Year,
			"",
			"",
		}
		if entry.Score != nil {
			values[4] = *entry.Score
		}
		if entry.GradedAt != nil {
			values[5] = entry.GradedAt.Format(time.RFC3339)
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "B", 28)
	f.SetColWidth(sheet, "F", "F", 24)

	name := fmt.Sprintf("%s-grades.xlsx", sanitizeFilename(subject))
	return f, name
}

func (s *TestService) loadOwnedTest(ctx context.Context, actor *models.User, testID int64) (*models.Test, error) {
	test, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, apperrors.ErrTestNotFound
	}
	if !auth.CanViewTestGrades(actor, test) {
		return nil, apperrors.NewForbiddenError("only the test's creator can access its grades")
	}
	return test, nil
}

func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "test"
	}
	return string(out)
}

func toTestResponse(t *models.Test) dto.TestResponse {
	return dto.TestResponse{
		ID:          t.ID,
		Subject:     t.Subject,
		Description: t.Description,
		Date:        t.Date,
		Branch:      t.Branch,
		Year:        t.Year,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
	}
}

func toGradeResponses(grades []models.Grade) []dto.GradeResponse {
	responses := make([]dto.GradeResponse, 0, len(grades))
	for _, g := range grades {
		responses = append(responses, dto.GradeResponse{
			StudentID: g.StudentID,
			Score:     g.Score,
			GradedAt:  g.GradedAt,
		})
	}
	return responses
}
