// Package panel construye el contenido del área principal del dashboard a partir de
// la identidad, la pestaña activa ya guardada y el estado de asistencia.
package panel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/graha-hub/internal/application/dto"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

const (
	subheading         = "Status operasional Graha dalam satu genggaman."
	attendanceCardName = "Kehadiran Hari Ini"
	placeholderTitle   = "Modul Dalam Pengembangan"
	placeholderMessage = "Terima kasih telah menunggu. Modul ini sedang dioptimasi untuk versi Elite."
)

// superAdminPlaceholders títulos de las vistas SUPERADMIN que aún no tienen contenido.
var superAdminPlaceholders = map[entity.ViewID]string{
	entity.ViewInventory: "Inventaris Stok Global",
	entity.ViewTeam:      "Manajemen Tim Internal",
	entity.ViewReports:   "Laporan Keuangan Strategis",
	entity.ViewSettings:  "Konfigurasi Sistem",
}

// Input datos necesarios para renderizar un panel.
type Input struct {
	User       *entity.User
	View       entity.ViewID
	Attendance dto.AttendanceResponse
	History    []dto.AttendanceRecordResponse
}

// Builder renderiza paneles. Es puro: no guarda estado entre llamadas.
type Builder struct {
	f *Formatter
}

// NewBuilder construye el renderizador.
func NewBuilder() *Builder {
	return &Builder{f: NewFormatter()}
}

// Build arma el panel de la vista. User no puede ser nil y View debe venir ya
// validada por la guarda de pestañas.
func (b *Builder) Build(in Input) dto.PanelResponse {
	p := dto.PanelResponse{
		View:       string(in.View),
		Heading:    in.View.Label(),
		Department: department(in.User.Role),
	}

	if in.View == entity.ViewAttendance {
		att := in.Attendance
		p.Kind = dto.PanelKindAttendance
		p.Attendance = &att
		p.History = in.History
		if p.History == nil {
			p.History = []dto.AttendanceRecordResponse{}
		}
		return p
	}

	p.AttendanceCard = attendanceCard(in.Attendance)

	if in.View == entity.ViewOverview {
		p.Kind = dto.PanelKindOverview
		p.Subheading = subheading
		b.overview(&p, in.User.Role)
		return p
	}

	p.Kind = dto.PanelKindPlaceholder
	p.Title = placeholderTitle
	p.Message = placeholderMessage
	if in.User.Role == entity.RoleSuperAdmin {
		if t, ok := superAdminPlaceholders[in.View]; ok {
			p.Title = t
		}
	}
	return p
}

// department segundo segmento del rol, o "ADMIN" si no existe.
func department(r entity.Role) string {
	d := r.Department()
	if d == "MASTER" {
		return "ADMIN"
	}
	return d
}

func attendanceCard(a dto.AttendanceResponse) *dto.AttendanceCard {
	return &dto.AttendanceCard{
		Title:            attendanceCardName,
		Status:           a.Status,
		Label:            a.Label,
		Color:            a.Color,
		CheckInTime:      a.CheckInTime,
		PromptAttendance: !a.CheckedIn,
	}
}

func (b *Builder) overview(p *dto.PanelResponse, role entity.Role) {
	switch role {
	case entity.RoleSuperAdmin:
		p.Stats = []dto.StatCard{
			{Label: "Omzet Bulanan", Value: b.f.Rupiah(decimal.New(248, 9)), Unit: "+18%", Up: true, Color: "emerald", IsPrivate: true},
			{Label: "Total Produk", Value: b.f.Count(1240), Unit: "SKU", Growth: "+12", Color: "blue"},
			{Label: "Staff Aktif", Value: b.f.Count(48), Unit: "Orang", Growth: "Stabil", Color: "amber"},
			{Label: "Market Share", Value: "42%", Unit: "Global", Growth: "+2.4%", Up: true, Color: "rose", IsPrivate: true},
		}
		p.Alerts = []dto.AlertItem{
			{Label: "Login Superadmin Baru", Time: "5 menit lalu", Level: "LOW"},
			{Label: "Export Laporan Keuangan", Time: "1 jam lalu", Level: "MID"},
			{Label: "Perubahan Role Tim #902", Time: "3 jam lalu", Level: "HIGH"},
		}
		p.Sections = []dto.PanelSection{{Title: "Performa Keuangan", Badge: "Visualisasi Grafik Master", Items: []dto.PanelItem{}}}

	case entity.RoleAdminPacking:
		p.Stats = []dto.StatCard{
			{Label: "Antrean Packing", Value: b.f.Count(142), Unit: "Pesanan", Growth: "Prioritas", Color: "rose"},
			{Label: "Stok Lakban/Box", Value: "82%", Unit: "Kapasitas", Growth: "Aman", Color: "blue"},
			{Label: "Rata-rata Packing", Value: "1.5", Unit: "Min/Box", Growth: "+0.2", Color: "emerald"},
		}
		batches := make([]dto.PanelItem, 0, 3)
		for i := 1; i <= 3; i++ {
			batches = append(batches, dto.PanelItem{
				Title:    fmt.Sprintf("ORDER #BATCH-%03d", i),
				Subtitle: "45 Resi • J&T / Sicepat",
				Status:   "75% SELESAI",
				Progress: 75,
			})
		}
		p.Sections = []dto.PanelSection{{Title: "Batch Packing Hari Ini", Badge: "Shift Pagi", Items: batches}}

	case entity.RoleAdminKonten:
		p.Stats = []dto.StatCard{
			{Label: "Post Terjadwal", Value: b.f.Count(12), Unit: "Konten", Growth: "+3 Hari", Color: "blue"},
			{Label: "Engagement", Value: "4.8%", Unit: "IG/TikTok", Up: true, Color: "emerald"},
			{Label: "Request Review", Value: b.f.Count(8), Unit: "Produk", Growth: "Urgent", Color: "amber"},
		}
		assets := make([]dto.PanelItem, 0, 5)
		for i := 1; i <= 5; i++ {
			assets = append(assets, dto.PanelItem{Title: fmt.Sprintf("Katalog Baru #%d", i), Status: "SIAP UPLOAD"})
		}
		p.Sections = []dto.PanelSection{{Title: "Aset Katalog", Items: assets}}

	case entity.RoleAdminMarketplace:
		p.Stats = []dto.StatCard{
			{Label: "Shopee Sales", Value: b.f.Rupiah(decimal.New(82, 6)), Unit: "Hari ini", Up: true, Color: "orange", IsPrivate: true},
			{Label: "Tokopedia", Value: b.f.Rupiah(decimal.New(45, 6)), Unit: "Hari ini", Up: true, Color: "emerald", IsPrivate: true},
			{Label: "Rating Toko", Value: "4.9", Unit: "/ 5.0", Color: "amber"},
			{Label: "Pending Chat", Value: b.f.Count(28), Unit: "Baru", Growth: "+5", Color: "rose"},
		}
		p.Sections = []dto.PanelSection{{
			Title: "Integrasi Live Market",
			Items: []dto.PanelItem{
				{Title: "Shopee Mall", Status: "Live", Value: b.f.Count(42)},
				{Title: "Tokopedia Official", Status: "Online", Value: b.f.Count(15)},
			},
		}}
	}
}
