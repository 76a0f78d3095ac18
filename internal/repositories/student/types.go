package student

import "github.com/mgpereira/registro/internal/models"

type UpsertStudentInput struct {
	Pront string
	Name  string
	Group string
}

type UpsertStudentOutput struct {
	Student *models.Student

	// Created indicates a new student was inserted rather than updated
	Created bool
}

type GetStudentInput struct {
	StudentID string
}

type GetStudentByProntInput struct {
	Pront string
}

type ListStudentsInput struct {
}

type ListStudentsOutput struct {
	Students []*models.Student
}

type ListStudentsByGroupsInput struct {
	Groups []string
}

type ListStudentsByGroupsOutput struct {
	Students []*models.Student
}
