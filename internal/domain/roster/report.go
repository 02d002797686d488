// Package roster содержит расчёты по всему журналу: отчёт со средними баллами
// и поиск лучшего студента. Журнал - упорядоченный список студентов,
// порядок добавления сохраняется во всех результатах.
package roster

import (
	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPORT
// ══════════════════════════════════════════════════════════════════════════════

// StudentAverage - строка отчёта по одному студенту.
type StudentAverage struct {
	StudentID  string
	Name       string
	Average    float64
	HasAverage bool // false, если оценок нет (в отчёте "N/A")
	GradeCount int
}

// Summary - сводная статистика по средним баллам студентов с оценками.
type Summary struct {
	Max     float64
	Min     float64
	Overall float64 // среднее средних, а не среднее всех оценок
	Counted int
}

// Report - отчёт по всему журналу.
type Report struct {
	Students []StudentAverage

	// summary == nil, если ни у кого нет оценок.
	summary *Summary
}

// Summary возвращает сводку или ErrNoGradesRecorded.
func (r *Report) Summary() (Summary, error) {
	if r.summary == nil {
		return Summary{}, shared.ErrNoGradesRecorded
	}
	return *r.summary, nil
}

// HasSummary возвращает true, если хотя бы у одного студента есть оценки.
func (r *Report) HasSummary() bool {
	return r.summary != nil
}

// BuildReport строит отчёт по журналу в порядке добавления студентов.
// Пустой журнал даёт ErrEmptyRoster; студенты без оценок попадают в отчёт,
// но не участвуют в сводке.
func BuildReport(students []*student.Student) (*Report, error) {
	if len(students) == 0 {
		return nil, shared.ErrEmptyRoster
	}

	report := &Report{
		Students: make([]StudentAverage, 0, len(students)),
	}

	averages := make([]float64, 0, len(students))
	for _, s := range students {
		avg, ok := s.Average()
		report.Students = append(report.Students, StudentAverage{
			StudentID:  s.ID,
			Name:       s.Name,
			Average:    avg,
			HasAverage: ok,
			GradeCount: len(s.Grades),
		})
		if ok {
			averages = append(averages, avg)
		}
	}

	if len(averages) == 0 {
		return report, nil
	}

	summary := &Summary{
		Max:     averages[0],
		Min:     averages[0],
		Counted: len(averages),
	}
	sum := 0.0
	for _, avg := range averages {
		if avg > summary.Max {
			summary.Max = avg
		}
		if avg < summary.Min {
			summary.Min = avg
		}
		sum += avg
	}
	summary.Overall = sum / float64(len(averages))
	report.summary = summary

	return report, nil
}
