package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	IdentityRepository   *IdentityRepository
	UserRepository       *UserRepository
	AssignmentRepository *AssignmentRepository
	SubmissionRepository *SubmissionRepository
	TestRepository       *TestRepository
	GradeRepository      *GradeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		IdentityRepository:   NewIdentityRepository(db),
		UserRepository:       NewUserRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		SubmissionRepository: NewSubmissionRepository(db),
		TestRepository:       NewTestRepository(db),
		GradeRepository:      NewGradeRepository(db),
	}
}
