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

// TestRepository handles scheduled test storage
type TestRepository struct {
	db *pgxpool.Pool
}

// NewTestRepository creates a new TestRepository instance
func NewTestRepository(db *pgxpool.Pool) *TestRepository {
	return &TestRepository{db: db}
}

const testColumns = "id, subject, description, date, branch, year, created_by, created_at, updated_at"

// Create inserts a new test and returns its ID.
func (r *TestRepository) Create(ctx context.Context, test *models.Test) (int64, error) {
	query := squirrel.Insert("tests").
		Columns("subject", "description", "date", "branch", "year", "created_by").
		Values(test.Subject, test.Description, test.Date, test.Branch, test.Year, test.CreatedBy).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build test insert query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create test: %w", err)
	}
	return id, nil
}

// GetByID retrieves a test. Returns nil when not found.
func (r *TestRepository) GetByID(ctx context.Context, id int64) (*models.Test, error) {
	query := squirrel.Select(testColumns).
		From("tests").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build test query: %w", err)
	}

	t := &models.Test{}
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&t.ID, &t.Subject, &t.Description, &t.Date, &t.Branch, &t.Year,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}
	return t, nil
}

// ListByOwner retrieves tests created by a teacher, newest first.
func (r *TestRepository) ListByOwner(ctx context.Context, teacherID int64) ([]models.Test, error) {
	return r.list(ctx, squirrel.Eq{"created_by": teacherID})
}

// ListByAudience retrieves tests targeted at a branch and year, newest first.
func (r *TestRepository) ListByAudience(ctx context.Context, branch, year string) ([]models.Test, error) {
	return r.list(ctx, squirrel.Eq{"branch": branch, "year": year})
}

func (r *TestRepository) list(ctx context.Context, pred squirrel.Eq) ([]models.Test, error) {
	query := squirrel.Select(testColumns).
		From("tests").
		Where(pred).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build test list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}
	defer rows.Close()

	var tests []models.Test
	for rows.Next() {
		t := models.Test{}
		err := rows.Scan(
			&t.ID, &t.Subject, &t.Description, &t.Date, &t.Branch, &t.Year,
			&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan test row: %w", err)
		}
		tests = append(tests, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate test rows: %w", err)
	}
	return tests, nil
}
