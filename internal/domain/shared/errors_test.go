package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorMatching(t *testing.T) {
	wrapped := fmt.Errorf("add_grade: %w", ErrStudentNotFound)

	assert.ErrorIs(t, wrapped, ErrStudentNotFound)
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.NotErrorIs(t, wrapped, ErrEmptyRoster)
	assert.NotErrorIs(t, ErrEmptyRoster, ErrNoGradesRecorded)
}

func TestWrapErrorKeepsSentinel(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError("student", "Find", ErrNotFound, "student not found", cause)

	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "student.Find: student not found: boom", err.Error())
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsValidation(ErrEmptyName))
	assert.True(t, IsValidation(ErrInvalidGradeFormat))
	assert.True(t, IsValidation(ErrGradeOutOfRange))
	assert.False(t, IsValidation(ErrStudentNotFound), "a missing student is not a validation failure")

	assert.True(t, IsNotFound(ErrStudentNotFound))
	assert.True(t, IsNotFound(ErrEmptyRoster))
	assert.True(t, IsAlreadyExists(ErrDuplicateStudent))
}
