package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IndiraMehta/EduTask/internal/app/models"
)

// GradeRepository handles test grade storage
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository instance
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

// Upsert records a score for a student on a test. Grading the same student
// again replaces the score and the graded time.
func (r *GradeRepository) Upsert(ctx context.Context, grade *models.Grade) (int64, error) {
	query := squirrel.Insert("test_grades").
		Columns("test_id", "student_id", "score", "graded_at").
		Values(grade.TestID, grade.StudentID, grade.Score, grade.GradedAt).
		Suffix("ON CONFLICT (test_id, student_id) DO UPDATE SET score = EXCLUDED.score, graded_at = EXCLUDED.graded_at").
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build grade upsert query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to upsert grade: %w", err)
	}
	return id, nil
}

// ListByTest retrieves all recorded grades for a test.
func (r *GradeRepository) ListByTest(ctx context.Context, testID int64) ([]models.Grade, error) {
	query := squirrel.Select("id", "test_id", "student_id", "score", "graded_at").
		From("test_grades").
		Where(squirrel.Eq{"test_id": testID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build grade list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	defer rows.Close()

	return collectGrades(rows)
}

// ListByTestIDs retrieves grades across several tests, grouped by test ID.
func (r *GradeRepository) ListByTestIDs(ctx context.Context, testIDs []int64) (map[int64][]models.Grade, error) {
	grouped := make(map[int64][]models.Grade)
	if len(testIDs) == 0 {
		return grouped, nil
	}

	query := squirrel.Select("id", "test_id", "student_id", "score", "graded_at").
		From("test_grades").
		Where(squirrel.Eq{"test_id": testIDs}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build grade list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	defer rows.Close()

	grades, err := collectGrades(rows)
	if err != nil {
		return nil, err
	}
	for _, g := range grades {
		grouped[g.TestID] = append(grouped[g.TestID], g)
	}
	return grouped, nil
}

func collectGrades(rows pgx.Rows) ([]models.Grade, error) {
	var grades []models.Grade
	for rows.Next() {
		g := models.Grade{}
		if err := rows.Scan(&g.ID, &g.TestID, &g.StudentID, &g.Score, &g.GradedAt); err != nil {
			return nil, fmt.Errorf("failed to scan grade row: %w", err)
		}
		grades = append(grades, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grade rows: %w", err)
	}
	return grades, nil
}
