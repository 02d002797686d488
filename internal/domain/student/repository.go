package student

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Контракт хранилища студентов. Реализация находится в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции над упорядоченным списком студентов.
type Repository interface {
	// Create добавляет студента в конец списка.
	// Возвращает ErrDuplicateStudent, если имя уже занято (без учёта регистра).
	Create(ctx context.Context, student *Student) error

	// FindByName возвращает первого студента с совпадающим именем.
	// Возвращает ErrStudentNotFound, если студент не найден.
	FindByName(ctx context.Context, name string) (*Student, error)

	// AppendGrade добавляет оценку студенту.
	// Возвращает ErrStudentNotFound, если студент не найден.
	AppendGrade(ctx context.Context, name string, grade Grade) (*Student, error)

	// List возвращает всех студентов в порядке добавления.
	List(ctx context.Context) ([]*Student, error)

	// Count возвращает количество студентов.
	Count(ctx context.Context) (int, error)
}
