package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
	"github.com/gradebook/grade-analyzer/internal/infrastructure/persistence/memory"
)

func seed(t *testing.T, roster map[string][]student.Grade, order ...string) *memory.StudentRepository {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewStudentRepository()
	for _, name := range order {
		s, err := student.NewStudent(name)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s))
		for _, g := range roster[name] {
			_, err := repo.AppendGrade(ctx, name, g)
			require.NoError(t, err)
		}
	}
	return repo
}

func TestFindStudent(t *testing.T) {
	repo := seed(t, map[string][]student.Grade{"Ann": {60, 80}}, "Ann")
	h := NewFindStudentHandler(repo)

	dto, err := h.Handle(context.Background(), FindStudentQuery{Name: "aNN"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", dto.Name)
	assert.Equal(t, []int{60, 80}, dto.Grades)
	assert.True(t, dto.HasAverage)
	assert.Equal(t, 70.0, dto.Average)

	_, err = h.Handle(context.Background(), FindStudentQuery{Name: "Bob"})
	assert.ErrorIs(t, err, shared.ErrStudentNotFound)
}

func TestFindStudent_NoGrades(t *testing.T) {
	repo := seed(t, nil, "Ann")
	dto, err := NewFindStudentHandler(repo).Handle(context.Background(), FindStudentQuery{Name: "Ann"})
	require.NoError(t, err)
	assert.False(t, dto.HasAverage)
	assert.Empty(t, dto.Grades)
}

func TestGetReport(t *testing.T) {
	repo := seed(t, map[string][]student.Grade{
		"A": {100},
		"C": {60, 80},
	}, "A", "B", "C")

	report, err := NewGetReportHandler(repo, nil).Handle(context.Background(), GetReportQuery{})
	require.NoError(t, err)
	require.Len(t, report.Students, 3)
	assert.False(t, report.Students[1].HasAverage)

	summary, err := report.Summary()
	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.Max)
	assert.Equal(t, 70.0, summary.Min)
	assert.Equal(t, 85.0, summary.Overall)
}

func TestGetReport_EmptyRoster(t *testing.T) {
	_, err := NewGetReportHandler(memory.NewStudentRepository(), nil).Handle(context.Background(), GetReportQuery{})
	assert.ErrorIs(t, err, shared.ErrEmptyRoster)
}

func TestGetTopPerformer(t *testing.T) {
	repo := seed(t, map[string][]student.Grade{
		"X": {90},
		"Y": {90},
	}, "X", "Y")

	top, err := NewGetTopPerformerHandler(repo, nil).Handle(context.Background(), GetTopPerformerQuery{})
	require.NoError(t, err)
	assert.Equal(t, "X", top.Name)
	assert.Equal(t, 90.0, top.Average)
}

func TestGetTopPerformer_NoGrades(t *testing.T) {
	h := NewGetTopPerformerHandler(memory.NewStudentRepository(), nil)
	_, err := h.Handle(context.Background(), GetTopPerformerQuery{})
	assert.ErrorIs(t, err, shared.ErrNoGradesRecorded)

	h = NewGetTopPerformerHandler(seed(t, nil, "A", "B"), nil)
	_, err = h.Handle(context.Background(), GetTopPerformerQuery{})
	assert.ErrorIs(t, err, shared.ErrNoGradesRecorded)
}
