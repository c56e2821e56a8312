// Package attendance implementa la máquina de estados diaria de asistencia,
// la regla de tardanza y el filtro de historial por rol.
package attendance

import "time"

// Horario laboral mostrado en el panel de asistencia.
const (
	ScheduleStartHour   = 8
	ScheduleStartMinute = 0
	ToleranceMinutes    = 30
	ScheduleLabel       = "08:00 WIB"
	ToleranceLabel      = "30 Menit"

	// ClockFormat formato hora:minuto de los registros.
	ClockFormat = "15:04"
	// DateFormat formato de fecha de los registros.
	DateFormat = "2006-01-02"
)

// IsLate aplica la regla de tardanza sobre la hora local de t.
// 08:30 exacto NO es tarde: se requieren minutos > 30 dentro de la hora 8, o cualquier hora >= 9.
func IsLate(t time.Time) bool {
	h, m := t.Hour(), t.Minute()
	return h > ScheduleStartHour || (h == ScheduleStartHour && m > ScheduleStartMinute+ToleranceMinutes)
}
