// Package xlsx genera el historial de asistencia como hoja de cálculo.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/domain/attendance"
)

// SheetName nombre de la hoja con los registros.
const SheetName = "Absensi"

var header = []interface{}{"Nama", "Jabatan", "Tanggal", "In", "Out", "Status"}

var _ ports.HistoryExporter = (*HistoryExporter)(nil)

// HistoryExporter implementa ports.HistoryExporter con excelize.
type HistoryExporter struct{}

// NewHistoryExporter construye el exportador.
func NewHistoryExporter() *HistoryExporter { return &HistoryExporter{} }

func (e *HistoryExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *HistoryExporter) Extension() string { return "xlsx" }

// Export escribe una fila de encabezado y una fila por registro visible.
func (e *HistoryExporter) Export(_ context.Context, report ports.HistoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "166534"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCFCE7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "F1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	for i, r := range report.Records {
		clockOut := "--:--"
		if r.ClockOut != nil {
			clockOut = *r.ClockOut
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{r.UserName, r.Role.Label(), r.Date, r.ClockIn, clockOut, attendance.Label(r.Status)}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "B", 28)
	_ = f.SetColWidth(SheetName, "C", "F", 14)
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   report.Title,
		Creator: report.GeneratedBy,
	}); err != nil {
		return nil, fmt.Errorf("xlsx: propiedades: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
