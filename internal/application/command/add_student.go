// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
	"github.com/gradebook/grade-analyzer/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD STUDENT COMMAND
// Adds a student with an empty grade list to the end of the roster.
// ══════════════════════════════════════════════════════════════════════════════

// AddStudentCommand contains the data to add a student.
type AddStudentCommand struct {
	// Name is the display name; surrounding whitespace is dropped.
	Name string

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c AddStudentCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return shared.ErrEmptyName
	}
	return nil
}

// AddStudentResult contains the result of adding a student.
type AddStudentResult struct {
	StudentID string
	Name      string
	Total     int
}

// AddStudentHandler handles AddStudentCommand.
type AddStudentHandler struct {
	studentRepo student.Repository
	publisher   shared.EventPublisher
	log         *logger.Logger
}

// NewAddStudentHandler creates a new AddStudentHandler.
// publisher and log may be nil.
func NewAddStudentHandler(
	studentRepo student.Repository,
	publisher shared.EventPublisher,
	log *logger.Logger,
) *AddStudentHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AddStudentHandler{
		studentRepo: studentRepo,
		publisher:   publisher,
		log:         log.With(logger.Component("add_student")),
	}
}

// Handle executes the add student command.
func (h *AddStudentHandler) Handle(ctx context.Context, cmd AddStudentCommand) (*AddStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		h.log.Warn("rejected student", logger.StudentName(cmd.Name), logger.Err(err))
		return nil, fmt.Errorf("add_student: %w", err)
	}

	stud, err := student.NewStudent(cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("add_student: %w", err)
	}

	if err := h.studentRepo.Create(ctx, stud); err != nil {
		h.log.Warn("rejected student", logger.StudentName(stud.Name), logger.Err(err))
		return nil, fmt.Errorf("add_student: %w", err)
	}

	total, err := h.studentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("add_student: count: %w", err)
	}

	h.log.Info("student added",
		logger.StudentID(stud.ID),
		logger.StudentName(stud.Name),
		logger.Int("roster_size", total),
	)

	publish(h.publisher, h.log, student.NewStudentAddedEvent(stud), cmd.CorrelationID)

	return &AddStudentResult{
		StudentID: stud.ID,
		Name:      stud.Name,
		Total:     total,
	}, nil
}
