package attendance

import (
	"time"

	"github.com/jhoicas/graha-hub/internal/domain"
	"github.com/jhoicas/graha-hub/internal/domain/entity"
)

// Snapshot vista inmutable del estado de asistencia en un instante.
type Snapshot struct {
	Status       entity.AttendanceStatus
	Date         string
	CheckInTime  *string
	CheckOutTime *string
}

// CheckedIn informa si ya hubo check-in en el día del snapshot.
func (s Snapshot) CheckedIn() bool {
	return s.Status != entity.AttendanceNotCheckedIn
}

// Tracker ciclo de un día de asistencia para una identidad.
//
// Transiciones:
//
//	NOT_CHECKED_IN --CheckIn--> PRESENT | LATE
//	PRESENT | LATE --CheckOut--> (mismo estado, con hora de salida)
//
// ABSENT y LEAVE solo los asigna administración; CheckIn nunca los produce.
// Un día calendario posterior al del check-in vuelve a NOT_CHECKED_IN.
type Tracker struct {
	loc      *time.Location
	date     string
	status   entity.AttendanceStatus
	checkIn  string
	checkOut string
}

// NewTracker crea el tracker en la zona horaria de la oficina (nil = UTC).
func NewTracker(loc *time.Location) *Tracker {
	if loc == nil {
		loc = time.UTC
	}
	return &Tracker{loc: loc, status: entity.AttendanceNotCheckedIn}
}

// Location zona horaria usada para fechas y horas.
func (t *Tracker) Location() *time.Location { return t.loc }

// CheckIn registra la entrada. Devuelve ErrAlreadyCheckedIn si ya hubo check-in ese día.
func (t *Tracker) CheckIn(now time.Time) (Snapshot, error) {
	local := now.In(t.loc)
	day := local.Format(DateFormat)
	if t.date == day && t.status != entity.AttendanceNotCheckedIn {
		return t.snapshot(day), domain.ErrAlreadyCheckedIn
	}

	status := entity.AttendancePresent
	if IsLate(local) {
		status = entity.AttendanceLate
	}
	t.date = day
	t.status = status
	t.checkIn = local.Format(ClockFormat)
	t.checkOut = ""
	return t.snapshot(day), nil
}

// CheckOut registra la hora de salida y conserva el estado de entrada.
func (t *Tracker) CheckOut(now time.Time) (Snapshot, error) {
	local := now.In(t.loc)
	day := local.Format(DateFormat)
	if t.date != day || t.status == entity.AttendanceNotCheckedIn {
		return t.snapshot(day), domain.ErrNotCheckedIn
	}
	if t.checkOut != "" {
		return t.snapshot(day), domain.ErrAlreadyCheckedOut
	}
	t.checkOut = local.Format(ClockFormat)
	return t.snapshot(day), nil
}

// Snapshot estado visible en el instante now.
func (t *Tracker) Snapshot(now time.Time) Snapshot {
	return t.snapshot(now.In(t.loc).Format(DateFormat))
}

// Reset descarta el día registrado (logout).
func (t *Tracker) Reset() {
	t.date, t.checkIn, t.checkOut = "", "", ""
	t.status = entity.AttendanceNotCheckedIn
}

func (t *Tracker) snapshot(day string) Snapshot {
	if t.date != day || t.status == entity.AttendanceNotCheckedIn {
		return Snapshot{Status: entity.AttendanceNotCheckedIn, Date: day}
	}
	s := Snapshot{Status: t.status, Date: t.date}
	in := t.checkIn
	s.CheckInTime = &in
	if t.checkOut != "" {
		out := t.checkOut
		s.CheckOutTime = &out
	}
	return s
}
