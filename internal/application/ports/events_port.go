package ports

import (
	"context"
	"time"
)

// Tipos de evento de asistencia.
const (
	EventCheckedIn  = "attendance.checked_in"
	EventCheckedOut = "attendance.checked_out"
)

// AttendanceEvent mensaje publicado tras cada transición de asistencia.
type AttendanceEvent struct {
	Type       string    `json:"type"`
	SessionID  string    `json:"session_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Role       string    `json:"role"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AttendanceEventPublisher puerto de salida hacia el broker de mensajes.
// Es best effort: el llamador registra el error pero no lo propaga al usuario.
type AttendanceEventPublisher interface {
	PublishAttendance(ctx context.Context, ev AttendanceEvent) error
	Close() error
}
