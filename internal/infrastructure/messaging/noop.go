package messaging

import (
	"context"

	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/pkg/logger"
)

var _ ports.AttendanceEventPublisher = (*LogPublisher)(nil)

// LogPublisher reemplazo sin broker: solo deja el evento en el log (nivel debug).
type LogPublisher struct {
	log *logger.Logger
}

// NewLogPublisher construye el publicador. log puede ser nil.
func NewLogPublisher(log *logger.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishAttendance(_ context.Context, ev ports.AttendanceEvent) error {
	if p.log != nil {
		p.log.Debug().Str("event", ev.Type).Str("user_id", ev.UserID).Str("status", ev.Status).Msg("evento de asistencia (sin broker)")
	}
	return nil
}

func (p *LogPublisher) Close() error { return nil }
