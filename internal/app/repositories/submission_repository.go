package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IndiraMehta/EduTask/internal/app/models"
)

// SubmissionRepository handles assignment submission storage
type SubmissionRepository struct {
	db *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository instance
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Upsert records a submission. A resubmission replaces the submitted time
// and files but keeps any grade already recorded.
func (r *SubmissionRepository) Upsert(ctx context.Context, submission *models.Submission) (int64, error) {
	query := squirrel.Insert("submissions").
		Columns("assignment_id", "student_id", "submitted_at", "files").
		Values(submission.AssignmentID, submission.StudentID, submission.SubmittedAt, submission.Files).
		Suffix("ON CONFLICT (assignment_id, student_id) DO UPDATE SET submitted_at = EXCLUDED.submitted_at, files = EXCLUDED.files").
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build submission upsert query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to upsert submission: %w", err)
	}
	return id, nil
}

// GetByID retrieves a submission with the student's name and email joined in.
// Returns nil when not found.
func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	query := squirrel.Select(
		"s.id", "s.assignment_id", "s.student_id", "s.submitted_at", "s.files", "s.grade",
		"u.name", "u.email",
	).
		From("submissions s").
		Join("users u ON u.id = s.student_id").
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submission query: %w", err)
	}

	s := &models.Submission{}
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&s.ID, &s.AssignmentID, &s.StudentID, &s.SubmittedAt, &s.Files, &s.Grade,
		&s.StudentName, &s.StudentEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return s, nil
}

// ListByAssignment retrieves all submissions for an assignment with student
// details joined in, most recent first.
func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID int64) ([]models.Submission, error) {
	query := squirrel.Select(
		"s.id", "s.assignment_id", "s.student_id", "s.submitted_at", "s.files", "s.grade",
		"u.name", "u.email",
	).
		From("submissions s").
		Join("users u ON u.id = s.student_id").
		Where(squirrel.Eq{"s.assignment_id": assignmentID}).
		OrderBy("s.submitted_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submission list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

// ListByAssignmentIDs retrieves submissions across several assignments,
// grouped by assignment ID.
func (r *SubmissionRepository) ListByAssignmentIDs(ctx context.Context, assignmentIDs []int64) (map[int64][]models.Submission, error) {
	grouped := make(map[int64][]models.Submission)
	if len(assignmentIDs) == 0 {
		return grouped, nil
	}

	query := squirrel.Select(
		"s.id", "s.assignment_id", "s.student_id", "s.submitted_at", "s.files", "s.grade",
		"u.name", "u.email",
	).
		From("submissions s").
		Join("users u ON u.id = s.student_id").
		Where(squirrel.Eq{"s.assignment_id": assignmentIDs}).
		OrderBy("s.submitted_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submission list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	submissions, err := collectSubmissions(rows)
	if err != nil {
		return nil, err
	}
	for _, s := range submissions {
		grouped[s.AssignmentID] = append(grouped[s.AssignmentID], s)
	}
	return grouped, nil
}

// SubmittedAssignmentIDs returns the set of assignment IDs a student has
// submitted to, limited to the given assignments.
func (r *SubmissionRepository) SubmittedAssignmentIDs(ctx context.Context, studentID int64, assignmentIDs []int64) (map[int64]bool, error) {
	submitted := make(map[int64]bool)
	if len(assignmentIDs) == 0 {
		return submitted, nil
	}

	query := squirrel.Select("assignment_id").
		From("submissions").
		Where(squirrel.Eq{"student_id": studentID, "assignment_id": assignmentIDs}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submitted set query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submitted set: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var assignmentID int64
		if err := rows.Scan(&assignmentID); err != nil {
			return nil, fmt.Errorf("failed to scan submitted set row: %w", err)
		}
		submitted[assignmentID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submitted set rows: %w", err)
	}
	return submitted, nil
}

// SetGrade records a grade for a submission.
func (r *SubmissionRepository) SetGrade(ctx context.Context, submissionID int64, grade float64) error {
	query := squirrel.Update("submissions").
		Set("grade", grade).
		Where(squirrel.Eq{"id": submissionID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build grade update query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("failed to set submission grade: %w", err)
	}
	return nil
}

func collectSubmissions(rows pgx.Rows) ([]models.Submission, error) {
	var submissions []models.Submission
	for rows.Next() {
		s := models.Submission{}
		err := rows.Scan(
			&s.ID, &s.AssignmentID, &s.StudentID, &s.SubmittedAt, &s.Files, &s.Grade,
			&s.StudentName, &s.StudentEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submission rows: %w", err)
	}
	return submissions, nil
}
