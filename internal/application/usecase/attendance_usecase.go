package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/application/panel"
	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/application/session"
	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/attendance"
	"github.com/jhoicas/graha-hub/pkg/logger"
)

// publishTimeout límite para entregar un evento al broker.
const publishTimeout = 3 * time.Second

// AttendanceUseCase check-in/check-out, historial y exportación.
type AttendanceUseCase struct {
	publisher ports.AttendanceEventPublisher
	exporters map[string]ports.HistoryExporter
	metrics   ports.MetricsRecorder
	log       *logger.Logger
}

// NewAttendanceUseCase construye el caso de uso. Los exportadores se indexan por extensión.
func NewAttendanceUseCase(publisher ports.AttendanceEventPublisher, metrics ports.MetricsRecorder, log *logger.Logger, exporters ...ports.HistoryExporter) *AttendanceUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	byExt := make(map[string]ports.HistoryExporter, len(exporters))
	for _, e := range exporters {
		byExt[e.Extension()] = e
	}
	return &AttendanceUseCase{publisher: publisher, exporters: byExt, metrics: metrics, log: log}
}

// Status estado de asistencia del día.
func (uc *AttendanceUseCase) Status(s *session.Session) (*dto.AttendanceResponse, error) {
	if s.User() == nil {
		return nil, domain.ErrUnauthorized
	}
	a := panel.AttendanceView(s.Attendance(), s.Now())
	return &a, nil
}

// CheckIn registra la entrada y publica el evento.
func (uc *AttendanceUseCase) CheckIn(ctx context.Context, s *session.Session) (*dto.AttendanceResponse, error) {
	snap, err := s.CheckIn()
	if err != nil {
		return nil, err
	}
	uc.metrics.AttendanceRecorded("check_in", string(snap.Status))
	uc.publish(ctx, s, ports.EventCheckedIn, snap, *snap.CheckInTime)
	a := panel.AttendanceView(snap, s.Now())
	return &a, nil
}

// CheckOut registra la salida conservando el estado de entrada.
func (uc *AttendanceUseCase) CheckOut(ctx context.Context, s *session.Session) (*dto.AttendanceResponse, error) {
	snap, err := s.CheckOut()
	if err != nil {
		return nil, err
	}
	uc.metrics.AttendanceRecorded("check_out", string(snap.Status))
	uc.publish(ctx, s, ports.EventCheckedOut, snap, *snap.CheckOutTime)
	a := panel.AttendanceView(snap, s.Now())
	return &a, nil
}

// History historial visible para la identidad.
func (uc *AttendanceUseCase) History(s *session.Session) (*dto.HistoryResponse, error) {
	recs, err := s.History()
	if err != nil {
		return nil, err
	}
	rows := panel.Records(recs)
	return &dto.HistoryResponse{Records: rows, Total: len(rows)}, nil
}

// ExportResult documento generado listo para descargar.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Export genera el historial visible en el formato pedido ("pdf" o "xlsx").
func (uc *AttendanceUseCase) Export(ctx context.Context, s *session.Session, format string) (*ExportResult, error) {
	exp, ok := uc.exporters[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, format)
	}
	u := s.User()
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	recs, err := s.History()
	if err != nil {
		return nil, err
	}
	now := s.Now().In(s.Location())
	content, err := exp.Export(ctx, ports.HistoryReport{
		Title:       "Riwayat Absensi",
		GeneratedBy: u.FullName,
		GeneratedAt: now.Format("2006-01-02 15:04"),
		Records:     recs,
	})
	if err != nil {
		return nil, fmt.Errorf("attendance: exportar %s: %w", exp.Extension(), err)
	}
	return &ExportResult{
		Content:     content,
		ContentType: exp.ContentType(),
		Filename:    fmt.Sprintf("riwayat-absensi-%s.%s", now.Format("20060102"), exp.Extension()),
	}, nil
}

// publish entrega el evento en best effort: el fallo se registra y no llega al usuario.
func (uc *AttendanceUseCase) publish(ctx context.Context, s *session.Session, kind string, snap attendance.Snapshot, at string) {
	if uc.publisher == nil {
		return
	}
	u := s.User()
	if u == nil {
		return
	}
	ev := ports.AttendanceEvent{
		Type:       kind,
		SessionID:  s.ID,
		UserID:     u.ID,
		UserName:   u.FullName,
		Role:       string(u.Role),
		Date:       snap.Date,
		Time:       at,
		Status:     string(snap.Status),
		OccurredAt: time.Now().UTC(),
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := uc.publisher.PublishAttendance(pctx, ev); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("event", kind).Str("session_id", s.ID).Msg("no se pudo publicar el evento de asistencia")
	}
}
