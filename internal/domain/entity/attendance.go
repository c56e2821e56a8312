package entity

// AttendanceStatus estado de asistencia persistible (más el centinela de UI NotCheckedIn).
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "HADIR"
	AttendanceLate    AttendanceStatus = "TERLAMBAT"
	AttendanceAbsent  AttendanceStatus = "ALFA"
	AttendanceLeave   AttendanceStatus = "IZIN/CUTI"
	// AttendanceNotCheckedIn solo existe en la UI: "sin check-in hoy". Nunca se guarda en un registro.
	AttendanceNotCheckedIn AttendanceStatus = "BELUM_ABSEN"
)

// AttendanceStatuses los cinco estados que la presentación debe cubrir.
func AttendanceStatuses() []AttendanceStatus {
	return []AttendanceStatus{
		AttendanceNotCheckedIn, AttendancePresent, AttendanceLate, AttendanceAbsent, AttendanceLeave,
	}
}

// AttendanceRecord una entrada diaria de entrada/salida de una identidad.
type AttendanceRecord struct {
	ID       string
	UserID   string
	UserName string
	Role     Role
	Date     string  // YYYY-MM-DD
	ClockIn  string  // HH:MM
	ClockOut *string // nil hasta el "Absen Pulang"
	Status   AttendanceStatus
	Note     *string
}
