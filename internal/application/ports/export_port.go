package ports

import (
	"context"

	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

// HistoryReport datos de entrada para exportar el historial visible.
type HistoryReport struct {
	Title       string
	GeneratedBy string
	GeneratedAt string
	Records     []entity.AttendanceRecord
}

// HistoryExporter genera un documento descargable del historial de asistencia.
type HistoryExporter interface {
	Export(ctx context.Context, report HistoryReport) ([]byte, error)
	// ContentType MIME del documento generado.
	ContentType() string
	// Extension sin punto ("pdf", "xlsx").
	Extension() string
}
