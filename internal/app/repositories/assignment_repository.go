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

// AssignmentRepository handles assignment storage
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository instance
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentColumns = "id, title, description, deadline, branch, year, created_by, attachments, created_at, updated_at"

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	a := &models.Assignment{}
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Deadline, &a.Branch, &a.Year,
		&a.CreatedBy, &a.Attachments, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new assignment and returns its ID.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) (int64, error) {
	query := squirrel.Insert("assignments").
		Columns("title", "description", "deadline", "branch", "year", "created_by", "attachments").
		Values(
			assignment.Title, assignment.Description, assignment.Deadline,
			assignment.Branch, assignment.Year, assignment.CreatedBy, assignment.Attachments,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build assignment insert query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create assignment: %w", err)
	}
	return id, nil
}

// GetByID retrieves an assignment. Returns nil when not found.
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	query := squirrel.Select(assignmentColumns).
		From("assignments").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build assignment query: %w", err)
	}

	assignment, err := scanAssignment(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

// ListByOwner retrieves assignments created by a teacher, newest first.
func (r *AssignmentRepository) ListByOwner(ctx context.Context, teacherID int64) ([]models.Assignment, error) {
	return r.list(ctx, squirrel.Eq{"created_by": teacherID})
}

// ListByAudience retrieves assignments targeted at a branch and year, newest first.
func (r *AssignmentRepository) ListByAudience(ctx context.Context, branch, year string) ([]models.Assignment, error) {
	return r.list(ctx, squirrel.Eq{"branch": branch, "year": year})
}

func (r *AssignmentRepository) list(ctx context.Context, pred squirrel.Eq) ([]models.Assignment, error) {
	query := squirrel.Select(assignmentColumns).
		From("assignments").
		Where(pred).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build assignment list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		a := models.Assignment{}
		err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.Deadline, &a.Branch, &a.Year,
			&a.CreatedBy, &a.Attachments, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignment rows: %w", err)
	}
	return assignments, nil
}
