package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradebook/grade-analyzer/internal/domain/shared"
)

func TestAverage(t *testing.T) {
	avg, ok := Average(nil)
	assert.False(t, ok)
	assert.Zero(t, avg)

	avg, ok = Average([]Grade{})
	assert.False(t, ok)

	avg, ok = Average([]Grade{70, 80, 90})
	require.True(t, ok)
	assert.Equal(t, 80.0, avg)

	avg, ok = Average([]Grade{0})
	require.True(t, ok, "a zero grade is still a grade")
	assert.Equal(t, 0.0, avg)

	avg, _ = Average([]Grade{60, 81})
	assert.InDelta(t, 70.5, avg, 1e-9)
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		token string
		want  Grade
		err   error
	}{
		{"0", 0, nil},
		{"100", 100, nil},
		{" 42 ", 42, nil},
		{"+7", 7, nil},
		{"101", 0, shared.ErrGradeOutOfRange},
		{"-1", 0, shared.ErrGradeOutOfRange},
		{"99999999999999999999999", 0, shared.ErrGradeOutOfRange},
		{"abc", 0, shared.ErrInvalidGradeFormat},
		{"4.5", 0, shared.ErrInvalidGradeFormat},
		{"", 0, shared.ErrInvalidGradeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseGrade(tt.token)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewStudent(t *testing.T) {
	s, err := NewStudent("  Ann ")
	require.NoError(t, err)
	assert.Equal(t, "Ann", s.Name)
	assert.NotEmpty(t, s.ID)
	assert.Empty(t, s.Grades)
	assert.False(t, s.HasGrades())

	_, err = NewStudent(" \t ")
	assert.ErrorIs(t, err, shared.ErrEmptyName)
}

func TestStudentAddGrade(t *testing.T) {
	s, err := NewStudent("Ann")
	require.NoError(t, err)

	require.NoError(t, s.AddGrade(90))
	require.NoError(t, s.AddGrade(70))
	assert.ErrorIs(t, s.AddGrade(101), shared.ErrGradeOutOfRange)

	assert.Equal(t, []Grade{90, 70}, s.Grades)
	avg, ok := s.Average()
	require.True(t, ok)
	assert.Equal(t, 80.0, avg)
}

func TestStudentClone(t *testing.T) {
	s, err := NewStudent("Ann")
	require.NoError(t, err)
	require.NoError(t, s.AddGrade(50))

	c := s.Clone()
	require.NoError(t, c.AddGrade(60))

	assert.Len(t, s.Grades, 1)
	assert.Len(t, c.Grades, 2)
}

func TestSameName(t *testing.T) {
	assert.True(t, SameName("Ann", "ann"))
	assert.True(t, SameName(" ANN ", "ann"))
	assert.False(t, SameName("Ann", "Anna"))
}
