// Package memory implements the in-process roster store.
// Students live only for the lifetime of the process; lookups are a linear
// scan over the ordered roster, which is fine at classroom scale.
package memory

import (
	"context"
	"fmt"

	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// StudentRepository implements student.Repository over an ordered slice.
// It is not safe for concurrent use.
type StudentRepository struct {
	students []*student.Student
}

var _ student.Repository = (*StudentRepository)(nil)

// NewStudentRepository creates an empty roster.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		students: make([]*student.Student, 0),
	}
}

// Create appends a student to the end of the roster.
func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.Name == "" {
		return shared.ErrEmptyName
	}

	if r.indexOf(s.Name) >= 0 {
		return duplicateError(s.Name)
	}

	r.students = append(r.students, s.Clone())
	return nil
}

// FindByName returns a copy of the first student whose name matches case-insensitively.
func (r *StudentRepository) FindByName(ctx context.Context, name string) (*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i := r.indexOf(name)
	if i < 0 {
		return nil, notFoundError(name)
	}
	return r.students[i].Clone(), nil
}

// AppendGrade appends a grade to the named student and returns the updated copy.
func (r *StudentRepository) AppendGrade(ctx context.Context, name string, grade student.Grade) (*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i := r.indexOf(name)
	if i < 0 {
		return nil, notFoundError(name)
	}

	if err := r.students[i].AddGrade(grade); err != nil {
		return nil, err
	}
	return r.students[i].Clone(), nil
}

// List returns copies of all students in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*student.Student, len(r.students))
	for i, s := range r.students {
		result[i] = s.Clone()
	}
	return result, nil
}

// Count returns the number of students in the roster.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.students), nil
}

func (r *StudentRepository) indexOf(name string) int {
	for i, s := range r.students {
		if student.SameName(s.Name, name) {
			return i
		}
	}
	return -1
}

func duplicateError(name string) error {
	return shared.WrapError("student", "Add", shared.ErrAlreadyExists,
		fmt.Sprintf("name %q is taken", name), shared.ErrDuplicateStudent)
}

func notFoundError(name string) error {
	return shared.WrapError("student", "Find", shared.ErrNotFound,
		fmt.Sprintf("no student named %q", name), shared.ErrStudentNotFound)
}
