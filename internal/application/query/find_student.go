// Package query contains read operations following CQRS pattern.
// Queries never modify state - they only read and return data.
package query

import (
	"context"
	"fmt"

	"github.com/gradebook/grade-analyzer/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// FIND STUDENT QUERY
// ══════════════════════════════════════════════════════════════════════════════

// FindStudentQuery looks a student up by name, case-insensitively.
type FindStudentQuery struct {
	Name string
}

// StudentDTO is a read-only view of a student.
type StudentDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Grades     []int   `json:"grades"`
	Average    float64 `json:"average"`
	HasAverage bool    `json:"has_average"`
}

// FindStudentHandler handles FindStudentQuery.
type FindStudentHandler struct {
	studentRepo student.Repository
}

// NewFindStudentHandler creates a new FindStudentHandler.
func NewFindStudentHandler(studentRepo student.Repository) *FindStudentHandler {
	return &FindStudentHandler{studentRepo: studentRepo}
}

// Handle returns the first matching student or shared.ErrStudentNotFound.
func (h *FindStudentHandler) Handle(ctx context.Context, q FindStudentQuery) (*StudentDTO, error) {
	stud, err := h.studentRepo.FindByName(ctx, q.Name)
	if err != nil {
		return nil, fmt.Errorf("find_student: %w", err)
	}
	return toStudentDTO(stud), nil
}

func toStudentDTO(s *student.Student) *StudentDTO {
	grades := make([]int, len(s.Grades))
	for i, g := range s.Grades {
		grades[i] = int(g)
	}
	avg, ok := s.Average()
	return &StudentDTO{
		ID:         s.ID,
		Name:       s.Name,
		Grades:     grades,
		Average:    avg,
		HasAverage: ok,
	}
}
