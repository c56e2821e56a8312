package dto

// Tipos de panel.
const (
	PanelKindOverview    = "overview"
	PanelKindAttendance  = "attendance"
	PanelKindPlaceholder = "placeholder"
)

// StatCard tarjeta de indicador. Las privadas se muestran enmascaradas hasta que el usuario las revela.
type StatCard struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Unit      string `json:"unit"`
	Growth    string `json:"growth,omitempty"`
	Up        bool   `json:"up"`
	Color     string `json:"color"`
	IsPrivate bool   `json:"is_private"`
}

// AlertItem entrada del log de seguridad.
type AlertItem struct {
	Label string `json:"label"`
	Time  string `json:"time"`
	Level string `json:"level"`
}

// PanelItem fila genérica de lista (batches, assets, tiendas).
type PanelItem struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Status   string `json:"status,omitempty"`
	Value    string `json:"value,omitempty"`
	Progress int    `json:"progress,omitempty"`
}

// PanelSection bloque con título y filas.
type PanelSection struct {
	Title string      `json:"title"`
	Badge string      `json:"badge,omitempty"`
	Items []PanelItem `json:"items"`
}

// AttendanceCard resumen de asistencia presente en todo panel que no es Absensi.
type AttendanceCard struct {
	Title            string  `json:"title"`
	Status           string  `json:"status"`
	Label            string  `json:"label"`
	Color            string  `json:"color"`
	CheckInTime      *string `json:"check_in_time"`
	PromptAttendance bool    `json:"prompt_attendance"`
}

// PanelResponse contenido del área principal para la pestaña activa.
type PanelResponse struct {
	View           string                     `json:"view"`
	Kind           string                     `json:"kind"`
	Heading        string                     `json:"heading"`
	Department     string                     `json:"department"`
	Subheading     string                     `json:"subheading,omitempty"`
	Title          string                     `json:"title,omitempty"`
	Message        string                     `json:"message,omitempty"`
	Stats          []StatCard                 `json:"stats,omitempty"`
	Alerts         []AlertItem                `json:"alerts,omitempty"`
	Sections       []PanelSection             `json:"sections,omitempty"`
	AttendanceCard *AttendanceCard            `json:"attendance_card,omitempty"`
	Attendance     *AttendanceResponse        `json:"attendance,omitempty"`
	History        []AttendanceRecordResponse `json:"history,omitempty"`
}
