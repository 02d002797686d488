// Package student содержит доменную модель студента.
// Это ядро бизнес-логики - здесь нет внешних зависимостей, кроме генерации UUID.
package student

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gradebook/grade-analyzer/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Границы допустимой оценки (включительно).
const (
	MinGrade Grade = 0
	MaxGrade Grade = 100
)

// Grade представляет одну целочисленную оценку студента.
type Grade int

// IsValid проверяет, что оценка лежит в диапазоне [0, 100].
func (g Grade) IsValid() bool {
	return g >= MinGrade && g <= MaxGrade
}

// ParseGrade разбирает сырой токен оценки.
// Возвращает ErrInvalidGradeFormat, если токен не целое число,
// и ErrGradeOutOfRange, если число вне диапазона [0, 100].
func ParseGrade(token string) (Grade, error) {
	token = strings.TrimSpace(token)
	n, err := strconv.Atoi(token)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, shared.ErrGradeOutOfRange
		}
		return 0, shared.ErrInvalidGradeFormat
	}

	g := Grade(n)
	if !g.IsValid() {
		return 0, shared.ErrGradeOutOfRange
	}
	return g, nil
}

// NormalizeName приводит имя к ключу для сравнения без учёта регистра.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameName сравнивает два имени без учёта регистра.
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// Average вычисляет среднее арифметическое оценок.
// Второе значение false, если оценок нет: "нет оценок" не то же самое, что средний балл 0.
func Average(grades []Grade) (float64, bool) {
	if len(grades) == 0 {
		return 0, false
	}

	sum := 0
	for _, g := range grades {
		sum += int(g)
	}
	return float64(sum) / float64(len(grades)), true
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - студент в журнале оценок.
type Student struct {
	// ID - внутренний уникальный идентификатор (UUID в строковом формате).
	ID string

	// Name - отображаемое имя с сохранением регистра.
	Name string

	// Grades - оценки в порядке ввода. Только добавление.
	Grades []Grade

	// CreatedAt - время создания записи.
	CreatedAt time.Time
}

// NewStudent создаёт студента с пустым списком оценок.
// Имя обрезается по краям; пустое имя даёт ErrEmptyName.
func NewStudent(name string) (*Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrEmptyName
	}

	return &Student{
		ID:        uuid.New().String(),
		Name:      name,
		Grades:    []Grade{},
		CreatedAt: time.Now().UTC(),
	}, nil
}

// AddGrade добавляет оценку в конец списка.
func (s *Student) AddGrade(g Grade) error {
	if !g.IsValid() {
		return shared.ErrGradeOutOfRange
	}
	s.Grades = append(s.Grades, g)
	return nil
}

// HasGrades возвращает true, если у студента есть хотя бы одна оценка.
func (s *Student) HasGrades() bool {
	return len(s.Grades) > 0
}

// Average возвращает средний балл студента.
func (s *Student) Average() (float64, bool) {
	return Average(s.Grades)
}

// Clone возвращает независимую копию студента.
func (s *Student) Clone() *Student {
	c := *s
	c.Grades = make([]Grade, len(s.Grades))
	copy(c.Grades, s.Grades)
	return &c
}
