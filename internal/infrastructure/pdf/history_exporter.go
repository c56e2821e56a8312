// Package pdf genera el historial de asistencia en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Graha Indonesia Organik │ Título + fecha de corte   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nama | Jabatan | Tanggal | In | Out | Status         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros + quién lo generó                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/internal/domain/attendance"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

const company = "Graha Indonesia Organik"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorLate    = &props.Color{Red: 180, Green: 83, Blue: 9}
)

var _ ports.HistoryExporter = (*HistoryExporter)(nil)

// HistoryExporter implementa ports.HistoryExporter usando Maroto v2.
type HistoryExporter struct{}

// NewHistoryExporter construye el exportador.
func NewHistoryExporter() *HistoryExporter { return &HistoryExporter{} }

func (e *HistoryExporter) ContentType() string { return "application/pdf" }
func (e *HistoryExporter) Extension() string   { return "pdf" }

// Export genera el PDF y devuelve sus bytes.
func (e *HistoryExporter) Export(_ context.Context, report ports.HistoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(recordRows(report.Records)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r ports.HistoryReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(company, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Elite Hub • Sistem Internal", props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(r.Title, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1}),
			text.New("Per: "+r.GeneratedAt, props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nama", 3, align.Left),
		h("Jabatan", 3, align.Left),
		h("Tanggal", 2, align.Center),
		h("In", 1, align.Center),
		h("Out", 1, align.Center),
		h("Status", 2, align.Right),
	)
}

func recordRows(recs []entity.AttendanceRecord) []core.Row {
	if len(recs) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Belum ada data absensi.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		))}
	}
	out := make([]core.Row, 0, len(recs))
	for _, r := range recs {
		clockOut := "--:--"
		if r.ClockOut != nil {
			clockOut = *r.ClockOut
		}
		status := props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1}
		if r.Status == entity.AttendanceLate {
			status.Color = colorLate
		}
		out = append(out, row.New(7).Add(
			col.New(3).Add(text.New(r.UserName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(r.Role.Label(), props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(r.Date, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(r.ClockIn, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(clockOut, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(attendance.Label(r.Status), status)),
		))
	}
	return out
}

func footerRow(r ports.HistoryReport) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Total: %d catatan", len(r.Records)), props.Text{Size: 8, Top: 2, Color: colorGray})),
		col.New(6).Add(text.New("Dibuat oleh "+r.GeneratedBy, props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray})),
	)
}
