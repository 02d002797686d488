package student

import "github.com/gradebook/grade-analyzer/internal/domain/shared"

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN EVENTS
// События домена студентов. На них подписываются логирование и статистика.
// ══════════════════════════════════════════════════════════════════════════════

// StudentAddedEvent - студент добавлен в журнал.
type StudentAddedEvent struct {
	shared.BaseEvent
	Name string `json:"name"`
}

// Payload реализует shared.Event.
func (e StudentAddedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name": e.Name,
	}
}

// NewStudentAddedEvent создаёт событие добавления студента.
func NewStudentAddedEvent(s *Student) StudentAddedEvent {
	return StudentAddedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventStudentAdded, s.ID),
		Name:      s.Name,
	}
}

// GradeRecordedEvent - студенту добавлена оценка.
type GradeRecordedEvent struct {
	shared.BaseEvent
	Name       string `json:"name"`
	Grade      Grade  `json:"grade"`
	GradeCount int    `json:"grade_count"`
}

// Payload реализует shared.Event.
func (e GradeRecordedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":        e.Name,
		"grade":       int(e.Grade),
		"grade_count": e.GradeCount,
	}
}

// NewGradeRecordedEvent создаёт событие записи оценки.
func NewGradeRecordedEvent(s *Student, g Grade) GradeRecordedEvent {
	return GradeRecordedEvent{
		BaseEvent:  shared.NewBaseEvent(shared.EventGradeRecorded, s.ID),
		Name:       s.Name,
		Grade:      g,
		GradeCount: len(s.Grades),
	}
}

// GradeRejectedEvent - токен оценки отклонён при валидации.
type GradeRejectedEvent struct {
	shared.BaseEvent
	Name   string `json:"name"`
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

// Payload реализует shared.Event.
func (e GradeRejectedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":   e.Name,
		"token":  e.Token,
		"reason": e.Reason,
	}
}

// NewGradeRejectedEvent создаёт событие отклонённой оценки.
func NewGradeRejectedEvent(s *Student, token string, reason error) GradeRejectedEvent {
	return GradeRejectedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventGradeRejected, s.ID),
		Name:      s.Name,
		Token:     token,
		Reason:    reason.Error(),
	}
}
