package command

import (
	"context"
	"fmt"

	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
	"github.com/gradebook/grade-analyzer/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD GRADE COMMAND
// Parses one raw grade token and appends it to a student's grades.
// The "done" sentinel belongs to the caller's input loop, not to this command.
// ══════════════════════════════════════════════════════════════════════════════

// AddGradeCommand contains the data to record one grade.
type AddGradeCommand struct {
	// Name identifies the student, case-insensitively.
	Name string

	// Token is the raw grade as typed, e.g. " 87 ".
	Token string

	// CorrelationID for tracing.
	CorrelationID string
}

// AddGradeResult contains the result of recording a grade.
type AddGradeResult struct {
	StudentID  string
	Name       string
	Grade      student.Grade
	GradeCount int
}

// AddGradeHandler handles AddGradeCommand.
type AddGradeHandler struct {
	studentRepo student.Repository
	publisher   shared.EventPublisher
	log         *logger.Logger
}

// NewAddGradeHandler creates a new AddGradeHandler.
// publisher and log may be nil.
func NewAddGradeHandler(
	studentRepo student.Repository,
	publisher shared.EventPublisher,
	log *logger.Logger,
) *AddGradeHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AddGradeHandler{
		studentRepo: studentRepo,
		publisher:   publisher,
		log:         log.With(logger.Component("add_grade")),
	}
}

// Handle executes the add grade command.
// Errors: shared.ErrStudentNotFound, shared.ErrInvalidGradeFormat, shared.ErrGradeOutOfRange.
// On any error the student's grades are unchanged.
func (h *AddGradeHandler) Handle(ctx context.Context, cmd AddGradeCommand) (*AddGradeResult, error) {
	stud, err := h.studentRepo.FindByName(ctx, cmd.Name)
	if err != nil {
		h.log.Warn("grade for unknown student", logger.StudentName(cmd.Name), logger.Err(err))
		return nil, fmt.Errorf("add_grade: %w", err)
	}

	grade, err := student.ParseGrade(cmd.Token)
	if err != nil {
		h.log.Warn("grade rejected",
			logger.StudentName(stud.Name),
			logger.GradeToken(cmd.Token),
			logger.Err(err),
		)
		publish(h.publisher, h.log, student.NewGradeRejectedEvent(stud, cmd.Token, err), cmd.CorrelationID)
		return nil, fmt.Errorf("add_grade: %w", err)
	}

	updated, err := h.studentRepo.AppendGrade(ctx, stud.Name, grade)
	if err != nil {
		return nil, fmt.Errorf("add_grade: %w", err)
	}

	h.log.Debug("grade recorded",
		logger.StudentID(updated.ID),
		logger.StudentName(updated.Name),
		logger.GradeValue(int(grade)),
		logger.Int("grade_count", len(updated.Grades)),
	)

	publish(h.publisher, h.log, student.NewGradeRecordedEvent(updated, grade), cmd.CorrelationID)

	return &AddGradeResult{
		StudentID:  updated.ID,
		Name:       updated.Name,
		Grade:      grade,
		GradeCount: len(updated.Grades),
	}, nil
}
