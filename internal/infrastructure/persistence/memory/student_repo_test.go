package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
)

func mustCreate(t *testing.T, repo *StudentRepository, name string) *student.Student {
	t.Helper()
	s, err := student.NewStudent(name)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestCreate_CaseInsensitiveUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	mustCreate(t, repo, "Ann")

	dup, err := student.NewStudent("ann")
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, shared.ErrDuplicateStudent)
	assert.True(t, shared.IsAlreadyExists(err))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFindByName(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()
	created := mustCreate(t, repo, "Ann")

	found, err := repo.FindByName(ctx, "  ANN ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Ann", found.Name, "display name keeps its case")

	_, err = repo.FindByName(ctx, "Bob")
	assert.ErrorIs(t, err, shared.ErrStudentNotFound)
	assert.True(t, shared.IsNotFound(err))
	assert.Contains(t, err.Error(), `"Bob"`)
}

func TestAppendGrade(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()
	mustCreate(t, repo, "Ann")

	updated, err := repo.AppendGrade(ctx, "ann", 90)
	require.NoError(t, err)
	assert.Equal(t, []student.Grade{90}, updated.Grades)

	_, err = repo.AppendGrade(ctx, "ann", 101)
	assert.ErrorIs(t, err, shared.ErrGradeOutOfRange)

	_, err = repo.AppendGrade(ctx, "bob", 50)
	assert.ErrorIs(t, err, shared.ErrStudentNotFound)

	found, err := repo.FindByName(ctx, "Ann")
	require.NoError(t, err)
	assert.Equal(t, []student.Grade{90}, found.Grades)
}

func TestListPreservesOrderAndIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()
	for _, name := range []string{"Cid", "Ann", "Bob"} {
		mustCreate(t, repo, name)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Cid", list[0].Name)
	assert.Equal(t, "Ann", list[1].Name)
	assert.Equal(t, "Bob", list[2].Name)

	require.NoError(t, list[0].AddGrade(10))
	again, err := repo.FindByName(ctx, "Cid")
	require.NoError(t, err)
	assert.Empty(t, again.Grades, "callers receive copies")
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewStudentRepository()
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
