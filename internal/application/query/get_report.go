package query

import (
	"context"
	"fmt"

	"github.com/gradebook/grade-analyzer/internal/domain/roster"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
	"github.com/gradebook/grade-analyzer/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET REPORT QUERY
// Per-student averages in roster order plus max/min/overall over students
// that have at least one grade.
// ══════════════════════════════════════════════════════════════════════════════

// GetReportQuery has no parameters; it always covers the whole roster.
type GetReportQuery struct{}

// GetReportHandler handles GetReportQuery.
type GetReportHandler struct {
	studentRepo student.Repository
	log         *logger.Logger
}

// NewGetReportHandler creates a new GetReportHandler.
func NewGetReportHandler(studentRepo student.Repository, log *logger.Logger) *GetReportHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &GetReportHandler{
		studentRepo: studentRepo,
		log:         log.With(logger.Component("get_report")),
	}
}

// Handle builds the report. An empty roster yields shared.ErrEmptyRoster.
func (h *GetReportHandler) Handle(ctx context.Context, _ GetReportQuery) (*roster.Report, error) {
	students, err := h.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_report: list students: %w", err)
	}

	report, err := roster.BuildReport(students)
	if err != nil {
		return nil, fmt.Errorf("get_report: %w", err)
	}

	fields := []logger.Field{logger.Int("students", len(report.Students))}
	if report.HasSummary() {
		summary, _ := report.Summary()
		fields = append(fields,
			logger.Int("graded", summary.Counted),
			logger.Average(summary.Overall),
		)
	}
	h.log.Debug("report built", fields...)

	return report, nil
}
