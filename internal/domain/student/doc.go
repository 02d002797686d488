// Package student содержит доменную модель студента журнала оценок.
//
// Пакет определяет:
//
//   - Сущность Student: имя с сохранением регистра и список оценок
//   - Value Object Grade: целая оценка в диапазоне [0, 100]
//   - Доменные события: StudentAdded, GradeRecorded, GradeRejected
//   - Интерфейс хранилища Repository
//
// # Имена
//
// Имя хранится как введено (после обрезки пробелов), но уникальность и
// поиск работают без учёта регистра: "Ann" и "ann" - один и тот же студент.
//
//	s, err := NewStudent("  Ann ")
//	// s.Name == "Ann"
//	SameName("Ann", "ANN") // true
//
// # Средний балл
//
// Average возвращает признак наличия значения. Пустой список оценок
// не превращается в ноль:
//
//	avg, ok := Average(nil)           // 0, false
//	avg, ok = Average([]Grade{70, 80, 90}) // 80, true
//
// # Разбор оценок
//
//	g, err := ParseGrade(" 42 ") // 42, nil
//	_, err = ParseGrade("abc")   // shared.ErrInvalidGradeFormat
//	_, err = ParseGrade("101")   // shared.ErrGradeOutOfRange
package student
