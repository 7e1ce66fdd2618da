package services

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"time"

	"github.com/IndiraMehta/EduTask/internal/app/auth"
	"github.com/IndiraMehta/EduTask/internal/app/models"
	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
	"github.com/IndiraMehta/EduTask/internal/app/repositories"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
	"github.com/IndiraMehta/EduTask/internal/pkg/filestorage"
	"github.com/IndiraMehta/EduTask/internal/pkg/logger"
	"github.com/IndiraMehta/EduTask/internal/pkg/metrics"
)

// attachmentCategory is the storage directory for assignment material and
// submission files alike.
const attachmentCategory = "assignments"

// AssignmentService implements the assignment and submission workflow
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	submissionRepo *repositories.SubmissionRepository
	storage        *filestorage.LocalStorage
}

// NewAssignmentService creates a new AssignmentService instance
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	submissionRepo *repositories.SubmissionRepository,
	storage *filestorage.LocalStorage,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		storage:        storage,
	}
}

// Create stores a new assignment owned by the acting teacher, persisting any
// attachment files first.
func (s *AssignmentService) Create(ctx context.Context, actor *models.User, req *dto.CreateAssignmentRequest, files []*multipart.FileHeader) (*dto.AssignmentResponse, error) {
	if err := auth.RequireTeacher(actor); err != nil {
		return nil, err
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return nil, apperrors.NewValidationError("deadline must be an RFC3339 timestamp")
	}

	if err := filestorage.ValidateUploads(files); err != nil {
		return nil, err
	}

	attachments, err := s.storage.SaveUploads("attachments", attachmentCategory, files)
	if err != nil {
		return nil, err
	}
	if attachments == nil {
		attachments = []string{}
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		Branch:      req.Branch,
		Year:        req.Year,
		CreatedBy:   actor.ID,
		Attachments: attachments,
	}

	id, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		return nil, err
	}
	assignment.ID = id

	logger.Info().Int64("assignmentId", id).Int64("teacherId", actor.ID).Msg("Assignment created")
	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

// ListForUser lists assignments from the caller's perspective. Teachers see
// the assignments they created. Students see the assignments targeted at
// their branch and year, each annotated with a submitted flag and a display
// status.
func (s *AssignmentService) ListForUser(ctx context.Context, actor *models.User) ([]dto.AssignmentResponse, error) {
	if actor.IsTeacher() {
		assignments, err := s.assignmentRepo.ListByOwner(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		responses := make([]dto.AssignmentResponse, 0, len(assignments))
		for i := range assignments {
			responses = append(responses, toAssignmentResponse(&assignments[i]))
		}
		return responses, nil
	}

	assignments, err := s.assignmentRepo.ListByAudience(ctx, actor.Branch, actor.Year)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(assignments))
	for i := range assignments {
		ids = append(ids, assignments[i].ID)
	}
	submitted, err := s.submissionRepo.SubmittedAssignmentIDs(ctx, actor.ID, ids)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		resp := toAssignmentResponse(&assignments[i])
		done := submitted[assignments[i].ID]
		resp.Submitted = &done
		resp.Status = AssignmentStatus(assignments[i].Deadline, now, done)
		responses = append(responses, resp)
	}
	return responses, nil
}

// TeacherOverview returns every assignment the teacher created together with
// all submissions received so far.
func (s *AssignmentService) TeacherOverview(ctx context.Context, actor *models.User) ([]dto.AssignmentWithSubmissionsResponse, error) {
	if err := auth.RequireTeacher(actor); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(assignments))
	for i := range assignments {
		ids = append(ids, assignments[i].ID)
	}
	grouped, err := s.submissionRepo.ListByAssignmentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	overview := make([]dto.AssignmentWithSubmissionsResponse, 0, len(assignments))
	for i := range assignments {
		overview = append(overview, dto.AssignmentWithSubmissionsResponse{
			AssignmentResponse: toAssignmentResponse(&assignments[i]),
			Submissions:        toSubmissionResponses(grouped[assignments[i].ID]),
		})
	}
	return overview, nil
}

// GetSubmissions lists the submissions on one assignment. Only the teacher
// who created the assignment may see them.
func (s *AssignmentService) GetSubmissions(ctx context.Context, actor *models.User, assignmentID int64) ([]dto.SubmissionResponse, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, apperrors.ErrAssignmentNotFound
	}

	if !auth.CanViewSubmissions(actor, assignment) {
		return nil, apperrors.NewForbiddenError("only the assignment's creator can view its submissions")
	}

	submissions, err := s.submissionRepo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	return toSubmissionResponses(submissions), nil
}

// Submit records the student's deliverable on an assignment. Submitting
// again replaces the submitted time and files; a grade already given stays.
func (s *AssignmentService) Submit(ctx context.Context, actor *models.User, assignmentID int64, files []*multipart.FileHeader) (*dto.SubmissionResponse, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, apperrors.ErrAssignmentNotFound
	}

	if err := filestorage.ValidateUploads(files); err != nil {
		return nil, err
	}

	saved, err := s.storage.SaveUploads("submissions", attachmentCategory, files)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = []string{}
	}

	submission := &models.Submission{
		AssignmentID: assignmentID,
		StudentID:    actor.ID,
		SubmittedAt:  time.Now(),
		Files:        saved,
	}

	id, err := s.submissionRepo.Upsert(ctx, submission)
	if err != nil {
		return nil, err
	}
	submission.ID = id

	metrics.SubmissionsReceived.Inc()
	logger.Info().Int64("assignmentId", assignmentID).Int64("studentId", actor.ID).Msg("Submission recorded")

	resp := toSubmissionResponse(submission)
	return &resp, nil
}

// GradeSubmission records a grade on a submission. Only the teacher who
// created the assignment may grade, and the grade must lie in [0, 10].
func (s *AssignmentService) GradeSubmission(ctx context.Context, actor *models.User, submissionID int64, grade float64) error {
	if grade < 0 || grade > 10 {
		return apperrors.ErrGradeOutOfRange
	}

	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission == nil {
		return apperrors.ErrSubmissionNotFound
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID)
	if err != nil {
		return err
	}
	if !auth.CanGradeSubmission(actor, assignment) {
		return apperrors.NewForbiddenError("only the assignment's creator can grade its submissions")
	}

	if err := s.submissionRepo.SetGrade(ctx, submissionID, grade); err != nil {
		return err
	}

	metrics.GradesRecorded.WithLabelValues("submission").Inc()
	logger.Info().Int64("submissionId", submissionID).Float64("grade", grade).Msg("Submission graded")
	return nil
}

// ResolveAttachment maps an assignment attachment to a path on disk. Any
// authenticated user may download; assignment material is shared within the
// portal and stored names are unguessable tokens.
func (s *AssignmentService) ResolveAttachment(ctx context.Context, assignmentID int64, filename string) (string, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return "", err
	}
	if assignment == nil {
		return "", apperrors.ErrAssignmentNotFound
	}
	if !containsFile(assignment.Attachments, filename) {
		return "", apperrors.ErrFileNotFound
	}
	return s.resolveStored(filename)
}

// ResolveSubmissionFile maps a submission file to a path on disk. Only the
// teacher who created the assignment, or the submitting student, may fetch it.
func (s *AssignmentService) ResolveSubmissionFile(ctx context.Context, actor *models.User, submissionID int64, filename string) (string, error) {
	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return "", err
	}
	if submission == nil {
		return "", apperrors.ErrSubmissionNotFound
	}

	if submission.StudentID != actor.ID {
		assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID)
		if err != nil {
			return "", err
		}
		if !auth.CanViewSubmissions(actor, assignment) {
			return "", apperrors.NewForbiddenError("only the assignment's creator can fetch submission files")
		}
	}

	if !containsFile(submission.Files, filename) {
		return "", apperrors.ErrFileNotFound
	}
	return s.resolveStored(filename)
}

func (s *AssignmentService) resolveStored(filename string) (string, error) {
	path, err := s.storage.Resolve(attachmentCategory, filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", apperrors.ErrFileNotFound
		}
		return "", err
	}
	return path, nil
}

func containsFile(files []string, filename string) bool {
	for _, f := range files {
		if f == filename {
			return true
		}
	}
	return false
}

func toAssignmentResponse(a *models.Assignment) dto.AssignmentResponse {
	attachments := a.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return dto.AssignmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Deadline:    a.Deadline,
		Branch:      a.Branch,
		Year:        a.Year,
		CreatedBy:   a.CreatedBy,
		Attachments: attachments,
		CreatedAt:   a.CreatedAt,
	}
}

func toSubmissionResponse(s *models.Submission) dto.SubmissionResponse {
	files := s.Files
	if files == nil {
		files = []string{}
	}
	return dto.SubmissionResponse{
		ID:           s.ID,
		AssignmentID: s.AssignmentID,
		StudentID:    s.StudentID,
		StudentName:  s.StudentName,
		StudentEmail: s.StudentEmail,
		SubmittedAt:  s.SubmittedAt,
		Files:        files,
		Grade:        s.Grade,
	}
}

func toSubmissionResponses(submissions []models.Submission) []dto.SubmissionResponse {
	responses := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, toSubmissionResponse(&submissions[i]))
	}
	return responses
}
