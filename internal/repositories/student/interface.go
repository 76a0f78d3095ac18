package student

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mgpereira/registro/internal/repositories/student Repository

import (
	"context"

	"github.com/mgpereira/registro/internal/models"
)

// Repository defines the interface for student data persistence
type Repository interface {
	// UpsertStudent creates a student keyed by registration number, or
	// updates name/group if the student already exists
	UpsertStudent(ctx context.Context, input *UpsertStudentInput) (*UpsertStudentOutput, error)

	// GetStudent retrieves a student by ID
	GetStudent(ctx context.Context, input *GetStudentInput) (*models.Student, error)

	// GetStudentByPront retrieves a student by registration number
	GetStudentByPront(ctx context.Context, input *GetStudentByProntInput) (*models.Student, error)

	// ListStudents retrieves all students
	ListStudents(ctx context.Context, input *ListStudentsInput) (*ListStudentsOutput, error)

	// ListStudentsByGroups retrieves all students belonging to any of
	// the given groups
	ListStudentsByGroups(ctx context.Context, input *ListStudentsByGroupsInput) (*ListStudentsByGroupsOutput, error)
}
