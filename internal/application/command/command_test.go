package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
	"github.com/gradebook/grade-analyzer/internal/infrastructure/persistence/memory"
)

type recordingPublisher struct {
	events []shared.Event
}

func (p *recordingPublisher) Publish(e shared.Event) error {
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []shared.EventType {
	out := make([]shared.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

func TestAddStudent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepository()
	pub := &recordingPublisher{}
	h := NewAddStudentHandler(repo, pub, nil)

	res, err := h.Handle(ctx, AddStudentCommand{Name: "  Ann  ", CorrelationID: "c-1"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", res.Name)
	assert.Equal(t, 1, res.Total)
	assert.NotEmpty(t, res.StudentID)

	require.Len(t, pub.events, 1)
	added, ok := pub.events[0].(student.StudentAddedEvent)
	require.True(t, ok)
	assert.Equal(t, "Ann", added.Name)
	assert.Equal(t, "c-1", added.CorrelationID)
	assert.Equal(t, res.StudentID, added.AggregateID())
}

func TestAddStudent_Rejections(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepository()
	pub := &recordingPublisher{}
	h := NewAddStudentHandler(repo, pub, nil)

	_, err := h.Handle(ctx, AddStudentCommand{Name: "Ann"})
	require.NoError(t, err)

	_, err = h.Handle(ctx, AddStudentCommand{Name: "   "})
	assert.ErrorIs(t, err, shared.ErrEmptyName)

	_, err = h.Handle(ctx, AddStudentCommand{Name: "ANN"})
	assert.ErrorIs(t, err, shared.ErrDuplicateStudent)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, pub.events, 1, "failed adds publish nothing")
}

func TestAddStudent_NilPublisher(t *testing.T) {
	h := NewAddStudentHandler(memory.NewStudentRepository(), nil, nil)
	_, err := h.Handle(context.Background(), AddStudentCommand{Name: "Ann"})
	assert.NoError(t, err)
}

func TestAddGrade(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepository()
	pub := &recordingPublisher{}

	_, err := NewAddStudentHandler(repo, nil, nil).Handle(ctx, AddStudentCommand{Name: "Ann"})
	require.NoError(t, err)

	h := NewAddGradeHandler(repo, pub, nil)

	tests := []struct {
		token   string
		wantErr error
	}{
		{token: "0"},
		{token: " 100 "},
		{token: "101", wantErr: shared.ErrGradeOutOfRange},
		{token: "-1", wantErr: shared.ErrGradeOutOfRange},
		{token: "abc", wantErr: shared.ErrInvalidGradeFormat},
		{token: "", wantErr: shared.ErrInvalidGradeFormat},
		{token: "87.5", wantErr: shared.ErrInvalidGradeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, err := h.Handle(ctx, AddGradeCommand{Name: "ann", Token: tt.token})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	found, err := repo.FindByName(ctx, "Ann")
	require.NoError(t, err)
	assert.Equal(t, []student.Grade{0, 100}, found.Grades)

	assert.Equal(t, []shared.EventType{
		shared.EventGradeRecorded,
		shared.EventGradeRecorded,
		shared.EventGradeRejected,
		shared.EventGradeRejected,
		shared.EventGradeRejected,
		shared.EventGradeRejected,
		shared.EventGradeRejected,
	}, pub.types())
}

func TestAddGrade_ResultCountsGrades(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepository()
	_, err := NewAddStudentHandler(repo, nil, nil).Handle(ctx, AddStudentCommand{Name: "Ann"})
	require.NoError(t, err)

	h := NewAddGradeHandler(repo, nil, nil)
	_, err = h.Handle(ctx, AddGradeCommand{Name: "Ann", Token: "70"})
	require.NoError(t, err)
	res, err := h.Handle(ctx, AddGradeCommand{Name: "Ann", Token: "90"})
	require.NoError(t, err)

	assert.Equal(t, student.Grade(90), res.Grade)
	assert.Equal(t, 2, res.GradeCount)
}

func TestAddGrade_UnknownStudent(t *testing.T) {
	pub := &recordingPublisher{}
	h := NewAddGradeHandler(memory.NewStudentRepository(), pub, nil)

	_, err := h.Handle(context.Background(), AddGradeCommand{Name: "Ghost", Token: "50"})
	assert.ErrorIs(t, err, shared.ErrStudentNotFound)
	assert.False(t, shared.IsValidation(err))
	assert.Empty(t, pub.events)
}
