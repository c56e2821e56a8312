package attendance

import "github.com/jhoicas/graha-hub/internal/domain/entity"

// Label etiqueta visible del estado. Total sobre los cinco estados.
func Label(s entity.AttendanceStatus) string {
	switch s {
	case entity.AttendancePresent, entity.AttendanceLate, entity.AttendanceAbsent, entity.AttendanceLeave:
		return string(s)
	default:
		return "Belum Absen"
	}
}

// Color token de color del indicador (badge del header y punto del sidebar).
func Color(s entity.AttendanceStatus) string {
	switch s {
	case entity.AttendancePresent:
		return "emerald"
	case entity.AttendanceLate:
		return "amber"
	case entity.AttendanceLeave:
		return "blue"
	case entity.AttendanceAbsent:
		return "rose"
	default:
		return "slate"
	}
}
