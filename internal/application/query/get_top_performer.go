package query

import (
	"context"
	"fmt"

	"github.com/gradebook/grade-analyzer/internal/domain/roster"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
	"github.com/gradebook/grade-analyzer/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET TOP PERFORMER QUERY
// ══════════════════════════════════════════════════════════════════════════════

// GetTopPerformerQuery has no parameters.
type GetTopPerformerQuery struct{}

// GetTopPerformerHandler handles GetTopPerformerQuery.
type GetTopPerformerHandler struct {
	studentRepo student.Repository
	log         *logger.Logger
}

// NewGetTopPerformerHandler creates a new GetTopPerformerHandler.
func NewGetTopPerformerHandler(studentRepo student.Repository, log *logger.Logger) *GetTopPerformerHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &GetTopPerformerHandler{
		studentRepo: studentRepo,
		log:         log.With(logger.Component("get_top_performer")),
	}
}

// Handle returns the top performer or shared.ErrNoGradesRecorded when
// no student has a grade (including the empty roster).
func (h *GetTopPerformerHandler) Handle(ctx context.Context, _ GetTopPerformerQuery) (*roster.TopPerformer, error) {
	students, err := h.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_top_performer: list students: %w", err)
	}

	top, err := roster.FindTopPerformer(students)
	if err != nil {
		return nil, fmt.Errorf("get_top_performer: %w", err)
	}

	h.log.Debug("top performer found", logger.StudentName(top.Name), logger.Average(top.Average))
	return &top, nil
}
