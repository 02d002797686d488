package roster

import (
	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
)

// TopPerformer - студент с наибольшим средним баллом.
type TopPerformer struct {
	StudentID string
	Name      string
	Average   float64
}

// FindTopPerformer выбирает студента со строго наибольшим средним баллом.
// Студенты без оценок не рассматриваются. При равенстве побеждает тот,
// кто раньше в журнале. Если оценок нет ни у кого (или журнал пуст),
// возвращает ErrNoGradesRecorded.
func FindTopPerformer(students []*student.Student) (TopPerformer, error) {
	var (
		best  TopPerformer
		found bool
	)

	for _, s := range students {
		if !s.HasGrades() {
			continue
		}
		avg, _ := s.Average()
		if !found || avg > best.Average {
			best = TopPerformer{
				StudentID: s.ID,
				Name:      s.Name,
				Average:   avg,
			}
			found = true
		}
	}

	if !found {
		return TopPerformer{}, shared.ErrNoGradesRecorded
	}
	return best, nil
}
